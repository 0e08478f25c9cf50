package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Identity(t *testing.T) {
	inputs := []string{"", "userProfileName", "HTTP server", "  spaced  ", "日本語", "123"}
	for _, in := range inputs {
		assert.Equal(t, in, Convert(in, None), "Convert(%q, None)", in)
	}
	for _, f := range Formats() {
		assert.Equal(t, "", Convert("", f), "Convert(\"\", %s)", f)
	}
	assert.Equal(t, "keepMe", Convert("keepMe", Format(42)), "unknown format is identity")
}

func TestConvert_Examples(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		want   string
	}{
		{name: "camel to pascal", input: "userProfileName", format: Pascal, want: "UserProfileName"},
		{name: "pascal to snake", input: "UserProfileName", format: Snake, want: "user_profile_name"},
		{name: "acronym to kebab", input: "HTTPServerError", format: Kebab, want: "http-server-error"},
		{name: "words to title", input: "hello world", format: Title, want: "Hello World"},
		{name: "words to upper", input: "primary color", format: UpperSnake, want: "PRIMARY_COLOR"},
		{name: "snake to camel", input: "icon_button", format: Camel, want: "iconButton"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.input, tt.format))
		})
	}
}

func TestToSnake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Case transitions
		{name: "camelCase", input: "userProfileName", want: "user_profile_name"},
		{name: "PascalCase", input: "UserProfileName", want: "user_profile_name"},
		{name: "already snake", input: "user_profile_name", want: "user_profile_name"},
		{name: "kebab", input: "user-profile-name", want: "user_profile_name"},
		{name: "spaces", input: "hello world", want: "hello_world"},
		{name: "slash path", input: "Button/Primary", want: "button_primary"},

		// Acronyms
		{name: "leading acronym", input: "HTTPServer", want: "http_server"},
		{name: "acronym chain", input: "HTTPServerError", want: "http_server_error"},
		{name: "trailing acronym", input: "iOS", want: "i_os"},
		{name: "whole acronym", input: "ABC", want: "abc"},
		{name: "upper snake", input: "PRIMARY_COLOR", want: "primary_color"},
		{name: "embedded acronym with digits", input: "getHTTPResponse2xx", want: "get_http_response2_xx"},
		{name: "acronym before digit splits letters", input: "ABC1", want: "a_b_c_1"},

		// Digits
		{name: "trailing digits stick to word", input: "item2", want: "item2"},
		{name: "leading digits", input: "2fast", want: "2_fast"},
		{name: "digits only", input: "123", want: "123"},
		{name: "digit groups", input: "12 34", want: "12_34"},

		// Degenerate input
		{name: "punctuation only", input: "!!!", want: "!!!"},
		{name: "non-ascii only", input: "日本語", want: "日本語"},
		{name: "non-ascii separates", input: "caféBar", want: "caf_bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnake(tt.input), "ToSnake(%q)", tt.input)
		})
	}
}

func TestToKebab(t *testing.T) {
	assert.Equal(t, "http-server-error", ToKebab("HTTPServerError"))
	assert.Equal(t, "icon-button", ToKebab("icon_button"))
	assert.Equal(t, "icon-button", ToKebab("IconButton"))
	assert.Equal(t, "---", ToKebab("---"))
}

func TestToSnake_Stable(t *testing.T) {
	inputs := []string{
		"userProfileName", "HTTPServerError", "ABC1", "hello world", "iOS",
		"getHTTPResponse2xx", "2fast", "Button/Primary", "a1b2c3", "X",
	}
	for _, in := range inputs {
		once := Convert(in, Snake)
		assert.Equal(t, once, Convert(once, Snake), "snake of %q is not stable", in)
	}
}

func TestToPascal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "camelCase", input: "userProfileName", want: "UserProfileName"},
		{name: "snake", input: "icon_button", want: "IconButton"},
		{name: "kebab", input: "icon-button", want: "IconButton"},
		{name: "spaces", input: "hello world", want: "HelloWorld"},
		{name: "already pascal", input: "IconButton", want: "IconButton"},
		{name: "slash kept", input: "button/primary", want: "Button/Primary"},
		{name: "digits do not start words", input: "version2beta", want: "Version2beta"},
		{name: "digits only", input: "42", want: "42"},
		{name: "unicode letters", input: "über_user", want: "ÜberUser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascal(tt.input), "ToPascal(%q)", tt.input)
		})
	}
}

func TestToCamel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "spaces", input: "user profile name", want: "userProfileName"},
		{name: "pascal", input: "UserProfileName", want: "userProfileName"},
		{name: "snake", input: "icon_button", want: "iconButton"},
		{name: "slash kept", input: "Button/Primary", want: "button/Primary"},
		{name: "leading digits", input: "123 abc", want: "123Abc"},
		{name: "acronym keeps inner capitals", input: "HTTPServer", want: "hTTPServer"},
		{name: "whitespace only", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCamel(tt.input), "ToCamel(%q)", tt.input)
		})
	}
}

// Camel/pascal and snake/kebab split words differently on digits.
func TestWordHeuristicsDiffer(t *testing.T) {
	assert.Equal(t, "Version2beta", Convert("version2beta", Pascal))
	assert.Equal(t, "version2_beta", Convert("version2beta", Snake))
}

func TestToTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "words", input: "hello world", want: "Hello World"},
		{name: "camel", input: "userProfileName", want: "User Profile Name"},
		{name: "pascal", input: "UserProfileName", want: "User Profile Name"},
		{name: "already title", input: "Hello World", want: "Hello World"},
		{name: "trimmed", input: "  padded  ", want: "Padded"},
		{name: "acronym letters split", input: "HTTP", want: "H T T P"},
		{name: "hyphen starts a word", input: "hello-world", want: "Hello-World"},
		{name: "dot between letters does not", input: "hello.world", want: "Hello.world"},
		{name: "invalid byte kept", input: "ab \xff", want: "Ab \xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToTitle(tt.input), "ToTitle(%q)", tt.input)
		})
	}
}

func TestToUpperSnake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "words", input: "primary color", want: "PRIMARY_COLOR"},
		{name: "mixed whitespace collapses", input: "a  b\tc", want: "A_B_C"},
		{name: "edges become underscores", input: " x ", want: "_X_"},
		{name: "camel is not split", input: "userName", want: "USERNAME"},
		{name: "special casing", input: "straße", want: "STRASSE"},
		{name: "invalid byte kept", input: "a\xff b", want: "A\xff_B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToUpperSnake(tt.input), "ToUpperSnake(%q)", tt.input)
		})
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"HTTP", "Server", "Error"}, Words("HTTPServerError"))
	assert.Equal(t, []string{"get", "HTTP", "Response2", "xx"}, Words("getHTTPResponse2xx"))
	assert.Nil(t, Words("--"))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"camelCase", Camel},
		{"camel", Camel},
		{"SNAKE_CASE", Snake},
		{"kebab-case", Kebab},
		{"Title Case", Title},
		{"pascal", Pascal},
		{"UPPER_CASE", UpperSnake},
		{"upper-snake", UpperSnake},
		{" none ", None},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		require.NoError(t, err, "ParseFormat(%q)", tt.input)
		assert.Equal(t, tt.want, got, "ParseFormat(%q)", tt.input)
	}

	_, err := ParseFormat("shouting")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown case format")
}

func TestFormat_Text(t *testing.T) {
	for _, f := range append(Formats(), None) {
		text, err := f.MarshalText()
		require.NoError(t, err)

		var back Format
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, f, back)
	}

	_, err := Format(99).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Format(99)", Format(99).String())
}

func TestConvert_InvalidUTF8(t *testing.T) {
	assert.Equal(t, "\xffab", Convert("\xffAb", Camel))
	assert.Equal(t, "\xffAb", Convert("\xffab", Pascal))
	assert.Equal(t, "a\xffB", Convert("a\xff b", Camel))
}
