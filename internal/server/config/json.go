package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/autoblog/internal/flagx"
	"github.com/dmitrijs2005/autoblog/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "30s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrHTTP  string         `json:"endpoint_addr_http"`
	DatabaseDSN       string         `json:"database_dsn"`
	GenerationBaseURL string         `json:"generation_base_url"`
	PublishingBaseURL string         `json:"publishing_base_url"`
	HTTPClientTimeout timex.Duration `json:"http_client_timeout"`
	SchedulerCatchUp  bool           `json:"scheduler_catch_up"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
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

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.GenerationBaseURL = c.GenerationBaseURL
	config.PublishingBaseURL = c.PublishingBaseURL
	config.HTTPClientTimeout = time.Duration(c.HTTPClientTimeout.Duration)
	config.SchedulerCatchUp = c.SchedulerCatchUp
}
