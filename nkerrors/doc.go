// Package nkerrors provides structured error types for namekit.
//
// Import path: github.com/erraggy/namekit/nkerrors
//
// The name-transformation functions in [github.com/erraggy/namekit/casing] and
// [github.com/erraggy/namekit/pattern] never return errors: malformed patterns
// fall back to a documented value instead. The types in this package are used
// by the lower-level helpers (pattern.Compile) and by the boundary layer that
// talks to a host (document loading, renaming, configuration).
//
// # Error Types
//
//   - [PatternError]: a search term that could not be compiled
//   - [ParseError]: a design document or config file that could not be decoded
//   - [ConfigError]: an invalid option value
//   - [HostError]: a failed round-trip to the item source or commit sink
//   - [NotFoundError]: an element id the host does not know about
//
// # Sentinel Errors
//
// Each error type matches its sentinel through errors.Is():
//
//   - [ErrPattern]: Matches any [PatternError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrHost]: Matches any [HostError]
//   - [ErrNotFound]: Matches any [NotFoundError]
//
// # Usage
//
//	re, err := pattern.Compile(term, pattern.Options{UseRegex: true})
//	if errors.Is(err, nkerrors.ErrPattern) {
//	    // show the raw term as invalid, keep the previous preview
//	}
//
//	var hostErr *nkerrors.HostError
//	if errors.As(err, &hostErr) {
//	    log.Printf("%s failed: %v", hostErr.Op, hostErr.Cause)
//	}
package nkerrors
