// Package uuidvalidator checks version-5 UUID strings and binds such
// identifiers to the bytes they were derived from.
package uuidvalidator

import (
	"errors"

	"github.com/google/uuid"
)

// canonicalLen is the length of the hyphenated 8-4-4-4-12 form
const canonicalLen = 36

// ErrInvalidUUID is returned by ParseUUID for anything but a canonical
// version-5, variant-1 UUID.
var ErrInvalidUUID = errors.New("invalid version 5 uuid")

// ValidateUUID reports whether s is a canonical hyphenated UUID whose version
// is 5 and whose variant is RFC 4122. Hex digits may be in either case.
// Braced, URN and unhyphenated forms are rejected.
func ValidateUUID(s string) bool {
	if len(s) != canonicalLen {
		return false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}

	return id.Version() == 5 && id.Variant() == uuid.RFC4122
}

// ParseUUID validates s like ValidateUUID and returns the parsed value.
func ParseUUID(s string) (uuid.UUID, error) {
	if !ValidateUUID(s) {
		return uuid.Nil, ErrInvalidUUID
	}
	return uuid.MustParse(s), nil
}

// Derive returns the version-5 UUID of content within namespace. The same
// namespace and content always produce the same UUID.
func Derive(namespace uuid.UUID, content []byte) uuid.UUID {
	return uuid.NewSHA1(namespace, content)
}

// ValidateFileUUID reports whether candidate is exactly the version-5 UUID
// derived from namespace and content.
func ValidateFileUUID(namespace uuid.UUID, content []byte, candidate uuid.UUID) bool {
	return Derive(namespace, content) == candidate
}
