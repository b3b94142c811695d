package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Read parses the config file at configPath.
func Read(configPath string) (Config, error) {
	var c Config
	if !fileExist(configPath) {
		return c, fmt.Errorf("config file not exist, configPath=%v", configPath)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 100)
	if err := v.ReadInConfig(); err != nil {
		return c, fmt.Errorf("read config %q: %w", configPath, err)
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unmarshal config %q: %w", configPath, err)
	}
	return c, nil
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
