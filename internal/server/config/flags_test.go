package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret",
				"-t", "15", "-k", "12", "-w", "3", "-m=false", "-l", "warn",
			},
			expected: &Config{
				EndpointAddrHTTP:            "127.0.0.1:9090",
				DatabaseDSN:                 "db",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 15 * time.Minute,
				BcryptCost:                  12,
				ShutdownTimeout:             3 * time.Second,
				MigrateOnStart:              false,
				LogLevel:                    "warn",
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "cfg.json", "-x", "1", "-a", ":1"},
			expected: func() *Config {
				c := defaults()
				c.EndpointAddrHTTP = ":1"
				return c
			}(),
		},
		{
			name:    "bad int",
			args:    []string{"-t", "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaults()

			err := parseFlags(config, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
