package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "namekit-test", Version: "test"},
		nil,
	)
	registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	// Start server in background; it blocks until the connection closes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Tools, 5)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
	for _, name := range []string{"convert_case", "replace_text", "match_name", "preview", "apply"} {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}
}

func TestIntegration_CallTool_ConvertCase(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "convert_case",
		Arguments: map[string]any{
			"names":  []string{"iconButton", "icon_button"},
			"format": "pascal",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "PascalCase", structured["format"])
	names, ok := structured["names"].([]any)
	require.True(t, ok)
	require.Len(t, names, 2)
	for _, n := range names {
		assert.Equal(t, "IconButton", n.(map[string]any)["converted"])
	}
}

func TestIntegration_CallTool_Preview(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "preview",
		Arguments: map[string]any{
			"document": map[string]any{"content": designDoc},
			"rule": map[string]any{
				"category": "STYLE",
				"formats":  map[string]any{"colorStyle": "kebab"},
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "STYLE", structured["category"])
	assert.Equal(t, float64(2), structured["total"])
	assert.Equal(t, float64(1), structured["changed"])
	entries, ok := structured["entries"].([]any)
	require.True(t, ok)
	assert.Equal(t, "brand-primary", entries[0].(map[string]any)["processed"])
}

func TestIntegration_CallTool_ApplyDryRun(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "apply",
		Arguments: map[string]any{
			"document": map[string]any{"content": designDoc},
			"rule":     map[string]any{"category": "VARIABLE"},
			"dry_run":  true,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, true, structured["dry_run"])
	assert.Equal(t, float64(0), structured["renamed"])
	changes, ok := structured["changes"].([]any)
	require.True(t, ok)
	require.Len(t, changes, 1, "only the colorVar target is selected by default")
	assert.Equal(t, "brandBg", changes[0].(map[string]any)["to"])
}

func TestIntegration_CallTool_Error_MissingDocument(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "preview",
		Arguments: map[string]any{
			"document": map[string]any{},
			"rule":     map[string]any{"category": "COMPONENT"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	// Prefer structured content if available.
	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	// Fall back to parsing text content.
	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}
