package uuidvalidator

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

var fileContent = []byte("laCryptoCRigolo")

func TestValidateUUID(t *testing.T) {
	tests := []struct {
		name     string
		uuid     string
		expected bool
	}{
		{name: "lower case", uuid: "c70dc454-1c7d-5c59-8fed-3a321e6a4a49", expected: true},
		{name: "upper case", uuid: "C70DC454-1C7D-5C59-8FED-3A321E6A4A49", expected: true},
		{name: "mixed case", uuid: "C70DC454-1C7D-5C59-8fED-3A321E6A4A49", expected: true},
		{name: "variant 9", uuid: "c70dc454-1c7d-5c59-9fed-3a321e6a4a49", expected: true},
		{name: "variant a", uuid: "c70dc454-1c7d-5c59-afed-3a321e6a4a49", expected: true},
		{name: "variant B", uuid: "c70dc454-1c7d-5c59-Bfed-3a321e6a4a49", expected: true},

		{name: "empty", uuid: "", expected: false},
		{name: "short first group", uuid: "70dc454-1c7d-5c59-8fed-3a321e6a4a49", expected: false},
		{name: "short second group", uuid: "c70dc454-c7d-5c59-8fed-3a321e6a4a49", expected: false},
		{name: "short third group", uuid: "c70dc454-1c7d-5c5-8fed-3a321e6a4a49", expected: false},
		{name: "short fourth group", uuid: "c70dc454-1c7d-5c59-8fd-3a321e6a4a49", expected: false},
		{name: "short last group", uuid: "c70dc454-1c7d-5c59-8fed-3a321e6a4a4", expected: false},

		{name: "version 1", uuid: "c70dc454-1c7d-1c59-8fed-3a321e6a4a49", expected: false},
		{name: "version 2", uuid: "c70dc454-1c7d-2c59-8fed-3a321e6a4a49", expected: false},
		{name: "version 3", uuid: "c70dc454-1c7d-3c59-8fed-3a321e6a4a49", expected: false},
		{name: "version 4", uuid: "c70dc454-1c7d-4c59-8fed-3a321e6a4a49", expected: false},

		{name: "variant 0", uuid: "c70dc454-1c7d-5c59-0fed-3a321e6a4a49", expected: false},
		{name: "variant c", uuid: "c70dc454-1c7d-5c59-cfed-3a321e6a4a49", expected: false},
		{name: "variant f", uuid: "c70dc454-1c7d-5c59-ffed-3a321e6a4a49", expected: false},

		{name: "non hex characters", uuid: "c70xz454-1c7d-5c59-8fed-3a321e6a4a49", expected: false},
		{name: "dots instead of hyphens", uuid: "c70dc454.1c7d.5c59.8fed.3a321e6a4a49", expected: false},
		{name: "urn form", uuid: "urn:uuid:c70dc454-1c7d-5c59-8fed-3a321e6a4a49", expected: false},
		{name: "braced form", uuid: "{c70dc454-1c7d-5c59-8fed-3a321e6a4a49}", expected: false},
		{name: "no hyphens", uuid: "c70dc4541c7d5c598fed3a321e6a4a49", expected: false},
		{name: "trailing newline", uuid: "c70dc454-1c7d-5c59-8fed-3a321e6a4a4\n", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateUUID(tt.uuid); got != tt.expected {
				t.Errorf("ValidateUUID(%q) = %v, want %v", tt.uuid, got, tt.expected)
			}
		})
	}
}

func TestValidateUUID_DerivedValuesAreValid(t *testing.T) {
	for _, ns := range []uuid.UUID{uuid.NameSpaceOID, uuid.NameSpaceDNS, uuid.NameSpaceURL} {
		id := Derive(ns, fileContent)
		if !ValidateUUID(id.String()) {
			t.Errorf("ValidateUUID(%s) = false for a derived v5 uuid", id)
		}
		if !ValidateUUID(strings.ToUpper(id.String())) {
			t.Errorf("ValidateUUID(%s) = false for the upper case form", strings.ToUpper(id.String()))
		}
	}

	if ValidateUUID(uuid.New().String()) {
		t.Errorf("a random v4 uuid must not validate")
	}
}

func TestParseUUID(t *testing.T) {
	id, err := ParseUUID("C70DC454-1C7D-5C59-8FED-3A321E6A4A49")
	if err != nil {
		t.Fatalf("ParseUUID() error = %v", err)
	}
	if id.String() != "c70dc454-1c7d-5c59-8fed-3a321e6a4a49" {
		t.Errorf("ParseUUID() = %s", id)
	}

	if _, err := ParseUUID("c70dc454-1c7d-4c59-8fed-3a321e6a4a49"); !errors.Is(err, ErrInvalidUUID) {
		t.Errorf("ParseUUID(v4) error = %v, want ErrInvalidUUID", err)
	}
}

func TestValidateFileUUID(t *testing.T) {
	custom := uuid.MustParse("c7bb890c-a4a8-4d68-85b7-1e1cfe909249")

	tests := []struct {
		name      string
		namespace uuid.UUID
		content   []byte
		candidate uuid.UUID
		expected  bool
	}{
		{
			name:      "oid namespace",
			namespace: uuid.NameSpaceOID,
			content:   fileContent,
			candidate: Derive(uuid.NameSpaceOID, fileContent),
			expected:  true,
		},
		{
			name:      "custom namespace",
			namespace: custom,
			content:   fileContent,
			candidate: Derive(custom, fileContent),
			expected:  true,
		},
		{
			name:      "empty content",
			namespace: custom,
			content:   nil,
			candidate: Derive(custom, []byte{}),
			expected:  true,
		},
		{
			name:      "content differs",
			namespace: uuid.NameSpaceOID,
			content:   []byte("laCryptoCPasRigolo"),
			candidate: Derive(uuid.NameSpaceOID, fileContent),
			expected:  false,
		},
		{
			name:      "namespace differs",
			namespace: uuid.NameSpaceOID,
			content:   fileContent,
			candidate: Derive(uuid.NameSpaceDNS, fileContent),
			expected:  false,
		},
		{
			name:      "nil candidate",
			namespace: uuid.NameSpaceOID,
			content:   fileContent,
			candidate: uuid.Nil,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateFileUUID(tt.namespace, tt.content, tt.candidate); got != tt.expected {
				t.Errorf("ValidateFileUUID() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestValidateFileUUID_SingleByteChange(t *testing.T) {
	ns := uuid.NameSpaceURL
	content := []byte("abc")
	id := Derive(ns, content)

	if !ValidateFileUUID(ns, []byte("abc"), id) {
		t.Fatalf("ValidateFileUUID(abc) = false")
	}
	if ValidateFileUUID(ns, []byte("abd"), id) {
		t.Errorf("ValidateFileUUID(abd) = true, want false")
	}

	for i := range content {
		changed := append([]byte(nil), content...)
		changed[i] ^= 0x01
		if ValidateFileUUID(ns, changed, id) {
			t.Errorf("flipping byte %d did not change the derived uuid", i)
		}
	}
}

func TestDerive_KnownVector(t *testing.T) {
	// RFC 4122 appendix-style vector: v5 of "www.example.com" in the DNS namespace.
	got := Derive(uuid.NameSpaceDNS, []byte("www.example.com"))
	if got.String() != "2ed6657d-e927-568b-95e1-2665a8aea6a2" {
		t.Errorf("Derive() = %s", got)
	}
	if got.Version() != 5 || got.Variant() != uuid.RFC4122 {
		t.Errorf("Derive() version=%d variant=%s", got.Version(), got.Variant())
	}
}
