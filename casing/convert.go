package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Convert converts name to the given format.
// Empty names, None and unknown formats return name unchanged.
func Convert(name string, f Format) string {
	if name == "" {
		return name
	}
	switch f {
	case Camel:
		return ToCamel(name)
	case Snake:
		return ToSnake(name)
	case Kebab:
		return ToKebab(name)
	case Title:
		return ToTitle(name)
	case Pascal:
		return ToPascal(name)
	case UpperSnake:
		return ToUpperSnake(name)
	default:
		return name
	}
}

// ToSnake converts a name to snake_case using the word tokenizer.
// Names without any ASCII letter or digit are returned unchanged.
// Example: "HTTPServerError" -> "http_server_error"
func ToSnake(s string) string {
	return joinWords(s, "_")
}

// ToKebab converts a name to kebab-case using the word tokenizer.
// Example: "HTTPServerError" -> "http-server-error"
func ToKebab(s string) string {
	return joinWords(s, "-")
}

func joinWords(s, sep string) string {
	words := Words(s)
	if len(words) == 0 {
		return s
	}
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

// ToCamel converts a name to camelCase.
// The first word start is lowercased, every other one uppercased, then
// whitespace, underscores and hyphens are removed.
// Example: "icon_button" -> "iconButton"
func ToCamel(s string) string {
	return capitalizeWordStarts(s, true)
}

// ToPascal converts a name to PascalCase.
// Example: "icon_button" -> "IconButton"
func ToPascal(s string) string {
	return capitalizeWordStarts(s, false)
}

// capitalizeWordStarts is the camel/pascal heuristic. A letter or digit
// starts a word when it is uppercase or does not follow another letter or digit.
func capitalizeWordStarts(s string, lowerFirst bool) string {
	var b strings.Builder
	b.Grow(len(s))

	first := true
	prevAlnum := false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
			prevAlnum = false
			i++
			continue
		}
		i += size

		alnum := isAlnum(r)
		if alnum && (!prevAlnum || unicode.IsUpper(r)) {
			if first && lowerFirst {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			first = false
		}
		prevAlnum = alnum
		if isJoinSeparator(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToTitle converts a name to Title Case.
// A space is inserted before every uppercase letter that does not already
// follow whitespace, each word gets an uppercase initial, and the result is
// trimmed. Letters after the initial keep their case.
// Example: "userProfileName" -> "User Profile Name"
func ToTitle(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	prevSpace := true
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
			prevSpace = false
			i++
			continue
		}
		i += size

		if unicode.IsUpper(r) && !prevSpace {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prevSpace = unicode.IsSpace(r)
	}

	// Casers are stateful; one per call keeps Convert safe for concurrent use.
	caser := cases.Title(language.Und, cases.NoLower)
	return strings.TrimSpace(caser.String(b.String()))
}

// ToUpperSnake uppercases a name and replaces each run of whitespace with a
// single underscore. Leading and trailing whitespace also become underscores.
// Example: "primary color" -> "PRIMARY_COLOR"
func ToUpperSnake(s string) string {
	upper := cases.Upper(language.Und).String(s)

	var b strings.Builder
	b.Grow(len(upper))

	inSpace := false
	for i := 0; i < len(upper); {
		r, size := utf8.DecodeRuneInString(upper[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(upper[i])
			inSpace = false
			i++
			continue
		}
		i += size

		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isJoinSeparator reports runes dropped when words are joined in camel and
// pascal case. Path-like separators such as '/' and '.' are kept.
func isJoinSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}
