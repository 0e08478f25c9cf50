package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchNameTool(t *testing.T) {
	names := []string{"Button/Primary", "Icon/Close", "button/ghost", "Badge[NEW]"}

	tests := []struct {
		name  string
		input matchNameInput
		want  []string
	}{
		{name: "empty query", input: matchNameInput{}, want: names},
		{name: "substring insensitive", input: matchNameInput{Query: "button"}, want: []string{"Button/Primary", "button/ghost"}},
		{name: "substring sensitive", input: matchNameInput{Query: "Button", CaseSensitive: true}, want: []string{"Button/Primary"}},
		{name: "regex", input: matchNameInput{Query: "^icon/", Regex: true}, want: []string{"Icon/Close"}},
		{name: "malformed regex falls back to substring", input: matchNameInput{Query: "[new", Regex: true}, want: []string{"Badge[NEW]"}},
		{name: "no match", input: matchNameInput{Query: "toggle"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.Names = names
			result, output, err := handleMatchName(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, len(names), output.Total)
			assert.Equal(t, tt.want, output.Matches)
			assert.Equal(t, len(tt.want), output.Matched)
		})
	}
}
