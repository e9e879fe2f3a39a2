package inputkit

import (
	"github.com/gobeaver/beaver-kit/config"
)

// DefaultNamespace scopes UUID derivation when no namespace is configured
const DefaultNamespace = "c7bb890c-a4a8-4d68-85b7-1e1cfe909249"

type Config struct {
	// Namespace used for version-5 UUID derivation
	Namespace string `env:"INPUTKIT_NAMESPACE,default:c7bb890c-a4a8-4d68-85b7-1e1cfe909249"`

	// Top-level domain whitelist for URL validation, comma-separated.
	// Empty disables the whitelist.
	TLDWhitelist string `env:"INPUTKIT_TLD_WHITELIST"`

	// Require file names to carry the canonical extension of their content
	CheckExtension bool `env:"INPUTKIT_CHECK_EXTENSION,default:true"`

	// Upload limit in bytes; 0 means unlimited
	MaxFileSize int64 `env:"INPUTKIT_MAX_FILE_SIZE,default:104857600"` // 100MB default

	// Host used when building links to uploaded files
	URLBase string `env:"INPUTKIT_URL_BASE,default:sec.upload"`

	// Environment selects the log format (development, production)
	Environment string `env:"INPUTKIT_ENVIRONMENT,default:development"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
