package inputkit

import (
	"os"
	"testing"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want: Config{
				Namespace:      DefaultNamespace,
				CheckExtension: true,
				MaxFileSize:    104857600,
				URLBase:        "sec.upload",
				Environment:    "development",
			},
		},
		{
			name: "url whitelist configuration",
			envVars: map[string]string{
				"BEAVER_INPUTKIT_TLD_WHITELIST": ".com,.ch",
				"BEAVER_INPUTKIT_URL_BASE":      "files.example.com",
			},
			want: Config{
				Namespace:      DefaultNamespace,
				TLDWhitelist:   ".com,.ch",
				CheckExtension: true,
				MaxFileSize:    104857600,
				URLBase:        "files.example.com",
				Environment:    "development",
			},
		},
		{
			name: "file configuration",
			envVars: map[string]string{
				"BEAVER_INPUTKIT_NAMESPACE":       "6ba7b812-9dad-11d1-80b4-00c04fd430c8",
				"BEAVER_INPUTKIT_CHECK_EXTENSION": "false",
				"BEAVER_INPUTKIT_MAX_FILE_SIZE":   "5242880",
				"BEAVER_INPUTKIT_ENVIRONMENT":     "production",
			},
			want: Config{
				Namespace:      "6ba7b812-9dad-11d1-80b4-00c04fd430c8",
				CheckExtension: false,
				MaxFileSize:    5242880,
				URLBase:        "sec.upload",
				Environment:    "production",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set environment variables
			for k, v := range tt.envVars {
				k := k // capture for closure
				os.Setenv(k, v)
				t.Cleanup(func() { os.Unsetenv(k) })
			}

			cfg, err := GetConfig()
			if err != nil {
				t.Fatalf("GetConfig() error = %v", err)
			}

			if *cfg != tt.want {
				t.Errorf("GetConfig() = %+v, want %+v", *cfg, tt.want)
			}
		})
	}
}
