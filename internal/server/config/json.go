package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/flagx"
	"github.com/dmitrijs2005/studytrack/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON config
// files. It uses timex.Duration for interval fields, which parses both
// string values such as "168h" and integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
}

// parseJson loads configuration from the JSON file named by the -c or
// -config command-line flags. When neither flag is set, nothing is loaded.
// An unreadable or invalid file panics: a half-applied config file is
// worse than a crash at startup.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
}
