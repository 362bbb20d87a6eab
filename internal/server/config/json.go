package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/printdesk/internal/flagx"
	"github.com/dmitrijs2005/printdesk/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Duration fields
// accept "90s"-style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	BcryptCost                  int            `json:"bcrypt_cost"`
	ShutdownTimeout             timex.Duration `json:"shutdown_timeout"`
	MigrateOnStart              bool           `json:"migrate_on_start"`
	LogLevel                    string         `json:"log_level"`
}

// parseJSON overlays values from the JSON file named by -c/-config (or the
// PRINTDESK_CONFIG environment variable). Keys absent from the file keep
// their current values.
func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigFilePath(args)

	// nothing to load
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{
		EndpointAddrHTTP:            config.EndpointAddrHTTP,
		DatabaseDSN:                 config.DatabaseDSN,
		SecretKey:                   config.SecretKey,
		AccessTokenValidityDuration: timex.Duration{Duration: config.AccessTokenValidityDuration},
		BcryptCost:                  config.BcryptCost,
		ShutdownTimeout:             timex.Duration{Duration: config.ShutdownTimeout},
		MigrateOnStart:              config.MigrateOnStart,
		LogLevel:                    config.LogLevel,
	}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	config.BcryptCost = c.BcryptCost
	config.ShutdownTimeout = c.ShutdownTimeout.Duration
	config.MigrateOnStart = c.MigrateOnStart
	config.LogLevel = c.LogLevel
	return nil
}
