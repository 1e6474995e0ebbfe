// Package config loads talon's optional startup configuration. Nothing
// here touches search or move-generation semantics — spec.md names no
// configuration surface beyond the protocol itself — it only supplies
// identity strings and the log location.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is talon's optional startup configuration, read from a
// talon.yaml in the working directory (talon/main.go passes the
// relative path "talon.yaml").
type Config struct {
	EngineName string `yaml:"engine_name"`
	Author     string `yaml:"author"`
	LogDir     string `yaml:"log_dir"`
}

// Default returns the compiled-in configuration used when no talon.yaml
// is present.
func Default() Config {
	return Config{
		EngineName: "talon",
		Author:     "The talon authors",
		LogDir:     ".",
	}
}

// Load reads path and overlays it onto Default(); a missing file is not
// an error, and fields the file omits keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
