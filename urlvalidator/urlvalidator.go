// Package urlvalidator checks that a URL or bare host name is syntactically
// acceptable, optionally restricting its top-level domain to a whitelist.
//
// A URL is accepted when the whole string has the shape
//
//	[scheme://]host.tld[/anything | #anything]
//
// where scheme is one or more ASCII letters or digits, host is one or more
// ASCII letters, digits, dots or hyphens, and tld is a dot followed by ASCII
// letters and dots, at least three characters long and ending in a letter.
// Nothing is fetched or resolved.
//
// With a whitelist, the tld must equal one of its entries exactly and
// case-sensitively. Entries are compared as literal strings.
package urlvalidator

import (
	"regexp"
	"strings"
)

var (
	schemePattern = regexp.MustCompile(`^[[:alnum:]]+$`)
	hostPattern   = regexp.MustCompile(`^[[:alnum:].-]+$`)
	tldPattern    = regexp.MustCompile(`^\.[[:alpha:].]+[[:alpha:]]$`)
)

const schemeSeparator = "://"

// IsTopLevelDomain reports whether s, as a whole, satisfies the generic
// top-level domain grammar, e.g. ".com", ".ch.com" or "..a".
func IsTopLevelDomain(s string) bool {
	return tldPattern.MatchString(s)
}

// ValidateURL reports whether raw is well formed under the generic
// top-level domain grammar.
func ValidateURL(raw string) bool {
	authority, ok := splitAuthority(raw)
	if !ok {
		return false
	}

	// The host must keep at least one character, so the tld starts at index 1 or later.
	for i := 1; i < len(authority); i++ {
		if authority[i] == '.' && IsTopLevelDomain(authority[i:]) {
			return true
		}
	}
	return false
}

// ValidateURLWithWhitelist checks raw against a whitelist of top-level
// domains. The whitelist is validated first: an empty list returns
// ErrEmptyWhitelist and a malformed entry returns a *WhitelistError, in
// both cases before raw is looked at.
func ValidateURLWithWhitelist(raw string, whitelist []string) (bool, error) {
	w, err := NewWhitelist(whitelist...)
	if err != nil {
		return false, err
	}
	return w.Validate(raw), nil
}

// splitAuthority strips the optional scheme and the trailing fragment from
// raw and returns what is left, provided it only holds host characters.
func splitAuthority(raw string) (string, bool) {
	rest := raw
	if i := strings.Index(raw, schemeSeparator); i >= 0 && schemePattern.MatchString(raw[:i]) {
		rest = raw[i+len(schemeSeparator):]
	}

	if j := strings.IndexAny(rest, "/#"); j >= 0 {
		if strings.ContainsRune(rest[j:], '\n') {
			return "", false
		}
		rest = rest[:j]
	}

	if !hostPattern.MatchString(rest) {
		return "", false
	}
	return rest, true
}
