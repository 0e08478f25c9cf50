package preview

import (
	"testing"

	"github.com/erraggy/namekit/casing"
	"github.com/erraggy/namekit/element"
	"github.com/erraggy/namekit/nkerrors"
	"github.com/erraggy/namekit/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Apply(t *testing.T) {
	cfg := DefaultConfig(element.Component)
	require.NoError(t, cfg.Apply(Overrides{}))
	assert.Equal(t, DefaultConfig(element.Component), cfg, "empty overrides change nothing")

	err := cfg.Apply(Overrides{
		Mode:           "replace",
		Query:          "^btn",
		Filter:         pattern.Options{UseRegex: true},
		Formats:        map[string]string{"propName": "kebab-case", " propValue ": "upper"},
		FormatTargets:  []string{"propName", "nodeName"},
		ReplaceFrom:    "btn",
		ReplaceTo:      "button",
		Replace:        pattern.Options{CaseSensitive: true},
		ReplaceTargets: []string{"propValue"},
	})
	require.NoError(t, err)

	assert.Equal(t, ModeReplace, cfg.Mode)
	assert.Equal(t, "^btn", cfg.Query)
	assert.True(t, cfg.Filter.UseRegex)
	assert.Equal(t, casing.Kebab, cfg.FormatFor(element.PropName))
	assert.Equal(t, casing.UpperSnake, cfg.FormatFor(element.PropValue))
	assert.Equal(t, casing.Camel, cfg.FormatFor(element.NodeName))
	assert.Equal(t, TargetSet{element.NodeName, element.PropName}, cfg.FormatTargets)
	assert.Equal(t, "btn", cfg.ReplaceFrom)
	assert.Equal(t, "button", cfg.ReplaceTo)
	assert.True(t, cfg.Replace.CaseSensitive)
	assert.Equal(t, TargetSet{element.PropValue}, cfg.ReplaceTargets)
}

func TestConfig_Apply_Errors(t *testing.T) {
	tests := []struct {
		name string
		o    Overrides
	}{
		{name: "mode", o: Overrides{Mode: "shout"}},
		{name: "format target", o: Overrides{Formats: map[string]string{"frameName": "snake"}}},
		{name: "format", o: Overrides{Formats: map[string]string{"nodeName": "loud"}}},
		{name: "format targets", o: Overrides{FormatTargets: []string{"nodeName", "x"}}},
		{name: "replace targets", o: Overrides{ReplaceTargets: []string{"y"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig(element.Style)
			assert.ErrorIs(t, cfg.Apply(tt.o), nkerrors.ErrConfig)
		})
	}
}

func TestParseTargets(t *testing.T) {
	set, err := ParseTargets([]string{"colorVar", " nodeName", "colorVar"})
	require.NoError(t, err)
	assert.Equal(t, TargetSet{element.NodeName, element.ColorVar}, set)

	set, err = ParseTargets(nil)
	require.NoError(t, err)
	assert.Nil(t, set)
}
