package casing

// Words splits a name into the words used by snake_case and kebab-case.
//
// The name is scanned left to right. At each position the first rule that
// matches wins:
//
//  1. a run of two or more uppercase letters followed by a capitalized word
//     or by a word boundary ("HTTPServer" yields "HTTP")
//  2. an optional uppercase letter, lowercase letters, then trailing digits
//     ("Server", "item2")
//  3. a single uppercase letter
//  4. a run of digits
//
// Bytes matching no rule (spaces, punctuation, non-ASCII) separate words and
// are dropped. Words keep their original case.
func Words(s string) []string {
	var words []string
	for i := 0; i < len(s); {
		n := matchAcronym(s, i)
		if n == 0 {
			n = matchWord(s, i)
		}
		if n == 0 && isUpperByte(s[i]) {
			n = 1
		}
		if n == 0 {
			n = matchDigits(s, i)
		}
		if n == 0 {
			i++
			continue
		}
		words = append(words, s[i:i+n])
		i += n
	}
	return words
}

// matchAcronym returns the length of the longest uppercase run (at least two)
// starting at i that is followed by "[A-Z][a-z]" or by a word boundary.
func matchAcronym(s string, i int) int {
	run := 0
	for i+run < len(s) && isUpperByte(s[i+run]) {
		run++
	}
	for n := run; n >= 2; n-- {
		end := i + n
		if startsCapitalized(s, end) || !continuesWord(s, end) {
			return n
		}
	}
	return 0
}

// matchWord matches "[A-Z]?[a-z]+[0-9]*" at i.
func matchWord(s string, i int) int {
	j := i
	if isUpperByte(s[j]) && j+1 < len(s) && isLowerByte(s[j+1]) {
		j++
	}
	k := j
	for k < len(s) && isLowerByte(s[k]) {
		k++
	}
	if k == j {
		return 0
	}
	for k < len(s) && isDigitByte(s[k]) {
		k++
	}
	return k - i
}

func matchDigits(s string, i int) int {
	j := i
	for j < len(s) && isDigitByte(s[j]) {
		j++
	}
	return j - i
}

// startsCapitalized reports whether s[i:] begins with an uppercase letter
// followed by a lowercase one.
func startsCapitalized(s string, i int) bool {
	return i+1 < len(s) && isUpperByte(s[i]) && isLowerByte(s[i+1])
}

// continuesWord reports whether s[i] is an ASCII letter or digit. Called only
// after an uppercase run, so a false result is a word boundary. Underscores
// count as boundaries so "PRIMARY_COLOR" keeps both acronym runs whole.
func continuesWord(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	c := s[i]
	return isUpperByte(c) || isLowerByte(c) || isDigitByte(c)
}

func isUpperByte(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLowerByte(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }
