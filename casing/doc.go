// Package casing converts identifier-like names between naming conventions.
//
// Import path: github.com/erraggy/namekit/casing
//
// [Convert] maps a raw name and a target [Format] to the formatted name. It
// never fails: empty input and [None] return the input unchanged.
//
// Two word-detection heuristics are used, and they are deliberately not the
// same:
//
//   - snake_case and kebab-case tokenize the name into words, splitting
//     lowercase-to-uppercase transitions, acronym runs ("HTTPServer" becomes
//     "HTTP" and "Server") and digit runs. Anything that is not an ASCII
//     letter or digit separates words.
//   - camelCase and PascalCase only look at word starts: the first letter,
//     any uppercase letter, and any letter or digit that follows a
//     non-alphanumeric character. Digits after a letter never start a word,
//     so "version2beta" stays a single word.
//
// Title Case splits before embedded uppercase letters and capitalizes each
// word; UPPER_CASE uppercases everything and turns whitespace runs into
// underscores.
//
// # Example
//
//	casing.Convert("userProfileName", casing.Pascal)   // "UserProfileName"
//	casing.Convert("UserProfileName", casing.Snake)    // "user_profile_name"
//	casing.Convert("HTTPServerError", casing.Kebab)    // "http-server-error"
//	casing.Convert("hello world", casing.Title)        // "Hello World"
package casing
