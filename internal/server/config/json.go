package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/earntrack/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling, non-empty fields are copied
// into the runtime Config struct.
type JsonConfig struct {
	EndpointAddr string `json:"endpoint_addr"`
	DatabaseDSN  string `json:"database_dsn"`
	SecretKey    string `json:"secret_key"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path is taken from the -c or -config command-line flags.
// If neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults, environment
// variables, and command-line flags as part of the full configuration
// process.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
}
