// Config loading for the knots CLI.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/katalvlaran/knots/knot"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	defaultDBName  = "knots.db"
	envPrefix      = "KNOTS"

	// Config keys.
	cfgKeyOutDir  = "out_dir"
	cfgKeyDBPath  = "db_path"
	cfgKeySamples = "samples"
	cfgKeyFormat  = "format"
)

// loadConfig reads config.yaml from configDir. A missing file is not an
// error; KNOTS_* environment variables override file values and flags
// override both.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyOutDir, ".")
	v.SetDefault(cfgKeyDBPath, filepath.Join(configDir, defaultDBName))
	v.SetDefault(cfgKeySamples, knot.DefaultSamples)
	v.SetDefault(cfgKeyFormat, "")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
