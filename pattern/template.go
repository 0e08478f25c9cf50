package pattern

import (
	"regexp"
	"strings"
)

// replaceAll substitutes every match of re in input with the expanded template.
func replaceAll(re *regexp.Regexp, input, tmpl string) string {
	matches := re.FindAllStringSubmatchIndex(input, -1)
	if matches == nil {
		return input
	}

	var b strings.Builder
	b.Grow(len(input))

	last := 0
	for _, m := range matches {
		b.WriteString(input[last:m[0]])
		expand(&b, re, input, tmpl, m)
		last = m[1]
	}
	b.WriteString(input[last:])
	return b.String()
}

// expand writes tmpl for a single match. Supported references:
//
//	$$       a literal "$"
//	$&       the whole match
//	$`       the text before the match
//	$'       the text after the match
//	$n, $nn  capture group n (1-99); the two-digit form wins when that group exists
//	$<name>  named capture group
//
// A reference that does not resolve is written as-is.
func expand(b *strings.Builder, re *regexp.Regexp, input, tmpl string, m []int) {
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c != '$' || i+1 >= len(tmpl) {
			b.WriteByte(c)
			continue
		}

		switch next := tmpl[i+1]; {
		case next == '$':
			b.WriteByte('$')
			i++
		case next == '&':
			b.WriteString(input[m[0]:m[1]])
			i++
		case next == '`':
			b.WriteString(input[:m[0]])
			i++
		case next == '\'':
			b.WriteString(input[m[1]:])
			i++
		case next >= '0' && next <= '9':
			n, width := groupRef(tmpl[i+1:], re.NumSubexp())
			if width == 0 {
				b.WriteByte(c)
				continue
			}
			writeGroup(b, input, m, n)
			i += width
		case next == '<':
			end := strings.IndexByte(tmpl[i+2:], '>')
			if end < 0 {
				b.WriteByte(c)
				continue
			}
			n := re.SubexpIndex(tmpl[i+2 : i+2+end])
			if n < 0 {
				b.WriteByte(c)
				continue
			}
			writeGroup(b, input, m, n)
			i += end + 2
		default:
			b.WriteByte(c)
		}
	}
}

// groupRef parses the digits after a '$'. It returns the group number and
// how many digits were consumed, or a zero width when no group matches.
func groupRef(s string, groups int) (n, width int) {
	if len(s) >= 2 && s[1] >= '0' && s[1] <= '9' {
		if nn := int(s[0]-'0')*10 + int(s[1]-'0'); nn >= 1 && nn <= groups {
			return nn, 2
		}
	}
	if d := int(s[0] - '0'); d >= 1 && d <= groups {
		return d, 1
	}
	return 0, 0
}

// writeGroup writes capture group n; groups that did not participate write nothing.
func writeGroup(b *strings.Builder, input string, m []int, n int) {
	if start := m[2*n]; start >= 0 {
		b.WriteString(input[start:m[2*n+1]])
	}
}
