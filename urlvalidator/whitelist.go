package urlvalidator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyWhitelist is returned when a whitelist has no entries
	ErrEmptyWhitelist = errors.New("whitelist is empty")

	// ErrInvalidWhitelistEntry is wrapped by every *WhitelistError
	ErrInvalidWhitelistEntry = errors.New("invalid top level domain in whitelist")
)

// WhitelistError reports the first whitelist entry that is not a valid
// top-level domain.
type WhitelistError struct {
	Index int
	Entry string
}

// Error implements the error interface
func (e *WhitelistError) Error() string {
	return fmt.Sprintf("%v: entry %d %q", ErrInvalidWhitelistEntry, e.Index, e.Entry)
}

// Unwrap returns ErrInvalidWhitelistEntry
func (e *WhitelistError) Unwrap() error {
	return ErrInvalidWhitelistEntry
}

// Whitelist is an ordered, validated set of top-level domains.
// It is immutable and safe for concurrent use.
type Whitelist struct {
	entries []string
}

// NewWhitelist validates entries and returns a Whitelist holding a copy of them.
func NewWhitelist(entries ...string) (*Whitelist, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyWhitelist
	}

	for i, entry := range entries {
		if !IsTopLevelDomain(entry) {
			return nil, &WhitelistError{Index: i, Entry: entry}
		}
	}

	return &Whitelist{entries: append([]string(nil), entries...)}, nil
}

// ParseWhitelist splits a comma-separated list, trimming blanks around
// entries. An empty or blank string yields ErrEmptyWhitelist.
func ParseWhitelist(list string) (*Whitelist, error) {
	if strings.TrimSpace(list) == "" {
		return nil, ErrEmptyWhitelist
	}

	parts := strings.Split(list, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return NewWhitelist(parts...)
}

// Entries returns a copy of the whitelisted top-level domains in order.
func (w *Whitelist) Entries() []string {
	return append([]string(nil), w.entries...)
}

// Contains reports whether tld is whitelisted, comparing case-sensitively.
func (w *Whitelist) Contains(tld string) bool {
	for _, entry := range w.entries {
		if entry == tld {
			return true
		}
	}
	return false
}

// Validate reports whether raw is well formed and its top-level domain is
// exactly one of the whitelisted entries.
func (w *Whitelist) Validate(raw string) bool {
	authority, ok := splitAuthority(raw)
	if !ok {
		return false
	}

	for _, entry := range w.entries {
		// The host must keep at least one character in front of the entry.
		if len(authority) > len(entry) && strings.HasSuffix(authority, entry) {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer
func (w *Whitelist) String() string {
	return strings.Join(w.entries, ",")
}
