package inputkit

import (
	"fmt"
	"strings"

	"github.com/gobeaver/beaver-kit/config"
	"github.com/gobeaver/inputkit/filevalidator"
	"github.com/gobeaver/inputkit/urlvalidator"
	"github.com/gobeaver/inputkit/uuidvalidator"
	"github.com/google/uuid"
)

// Toolkit bundles the validators with the settings an application chose for
// them. It is immutable and safe for concurrent use.
type Toolkit struct {
	cfg       Config
	namespace uuid.UUID
	whitelist *urlvalidator.Whitelist
}

// Builder provides a way to create Toolkit instances with custom prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// New creates a new Toolkit using the builder's prefix
func (b *Builder) New() (*Toolkit, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg)
}

// New creates a Toolkit from cfg. A nil cfg loads the configuration from
// the environment.
func New(cfg *Config) (*Toolkit, error) {
	if cfg == nil {
		var err error
		if cfg, err = GetConfig(); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	ns := cfg.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	namespace, err := uuid.Parse(ns)
	if err != nil {
		return nil, fmt.Errorf("invalid config: namespace %q: %w", ns, err)
	}

	t := &Toolkit{cfg: *cfg, namespace: namespace}
	if strings.TrimSpace(cfg.TLDWhitelist) != "" {
		t.whitelist, err = urlvalidator.ParseWhitelist(cfg.TLDWhitelist)
		if err != nil {
			return nil, fmt.Errorf("invalid config: tld whitelist: %w", err)
		}
	}

	return t, nil
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg.MaxFileSize < 0 {
		return fmt.Errorf("max file size must not be negative, got %d", cfg.MaxFileSize)
	}
	if cfg.URLBase != "" && !urlvalidator.ValidateURL(cfg.URLBase) {
		return fmt.Errorf("url base %q is not a valid url", cfg.URLBase)
	}
	return nil
}

// Config returns a copy of the configuration the toolkit was built from
func (t *Toolkit) Config() Config {
	return t.cfg
}

// Namespace returns the namespace used for UUID derivation
func (t *Toolkit) Namespace() uuid.UUID {
	return t.namespace
}

// CheckExtension reports whether file validation cross-checks extensions
func (t *Toolkit) CheckExtension() bool {
	return t.cfg.CheckExtension
}

// Whitelist returns the configured top-level domain whitelist, or nil
func (t *Toolkit) Whitelist() *urlvalidator.Whitelist {
	return t.whitelist
}

// ValidateFile classifies the file at path using the configured extension policy
func (t *Toolkit) ValidateFile(path string) (filevalidator.Classification, error) {
	return filevalidator.ValidateFile(path, t.cfg.CheckExtension)
}

// ValidateURL checks raw against the configured whitelist, or against the
// generic top-level domain grammar when none is configured.
func (t *Toolkit) ValidateURL(raw string) bool {
	if t.whitelist != nil {
		return t.whitelist.Validate(raw)
	}
	return urlvalidator.ValidateURL(raw)
}

// ValidateUUID reports whether s is a canonical version-5 UUID
func (t *Toolkit) ValidateUUID(s string) bool {
	return uuidvalidator.ValidateUUID(s)
}

// Derive returns the version-5 UUID of content in the toolkit's namespace
func (t *Toolkit) Derive(content []byte) uuid.UUID {
	return uuidvalidator.Derive(t.namespace, content)
}

// ValidateFileUUID reports whether candidate was derived from content in the
// toolkit's namespace
func (t *Toolkit) ValidateFileUUID(content []byte, candidate uuid.UUID) bool {
	return uuidvalidator.ValidateFileUUID(t.namespace, content, candidate)
}
