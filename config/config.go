package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v8"
	"github.com/semafind/distcalc/httpapi"
	"github.com/semafind/distcalc/session"
	"gopkg.in/yaml.v3"
)

// ---------------------------

const DISTCALC_CONFIG = "DISTCALC_CONFIG"

type ConfigMap struct {
	// Global debug flag
	Debug bool `yaml:"debug"`
	// Pretty log output
	PrettyLogOutput bool `yaml:"prettyLogOutput"`
	// Run the fixed distance cases before accepting input
	SelfTest bool `yaml:"selfTest"`
	// Number of random point pairs checked for symmetry and identity at
	// startup, zero disables the sweep
	PropertyChecks int `yaml:"propertyChecks"`
	// Serve the HTTP API instead of the interactive session
	Serve bool `yaml:"serve"`
	// Console session parameters
	Session session.SessionConfig `yaml:"session" envPrefix:"SESSION_"`
	// HTTP Parameters
	HttpApi httpapi.HttpApiConfig `yaml:"httpApi" envPrefix:"HTTP_"`
}

func DefaultConfig() ConfigMap {
	return ConfigMap{
		PrettyLogOutput: true,
		SelfTest:        true,
		Session: session.SessionConfig{
			QuitToken: "q",
		},
		HttpApi: httpapi.HttpApiConfig{
			HttpHost:        "localhost",
			HttpPort:        8081,
			MetricsHttpPort: 8091,
		},
	}
}

// LoadConfig starts from the defaults, applies the YAML file named by
// DISTCALC_CONFIG if it is set and finally any DISTCALC_ environment variables.
func LoadConfig() (ConfigMap, error) {
	configMap := DefaultConfig()
	if cFilePath, ok := os.LookupEnv(DISTCALC_CONFIG); ok {
		cFile, err := os.Open(cFilePath)
		if err != nil {
			return configMap, fmt.Errorf("failed to open config file %s: %w", cFilePath, err)
		}
		defer cFile.Close()
		decoder := yaml.NewDecoder(cFile)
		if err := decoder.Decode(&configMap); err != nil {
			return configMap, fmt.Errorf("failed to parse config file %s: %w", cFilePath, err)
		}
	}
	// ---------------------------
	opts := env.Options{Prefix: "DISTCALC_", UseFieldNameByDefault: true}
	if err := env.ParseWithOptions(&configMap, opts); err != nil {
		return configMap, fmt.Errorf("failed to parse env: %w", err)
	}
	return configMap, nil
}
