package config

import (
	"fmt"
	"os"
	"path/filepath"

	"depctl/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/depctl"
	projectConfigDir = ".depctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the depctl configuration by layering default, user, and
// project settings. A missing config file is not an error; a broken one is.
func LoadConfig() (Config, error) {
	// 1. Start with the default configuration
	config := DefaultConfig()

	// 2. Determine user-specific configuration path
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// Log this error but don't fail; user config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Determine project-specific configuration path
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		// Log this error but don't fail; project config is optional
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. A key the overlay
// file does not set keeps the base value; a key set to an empty list clears
// it.
func mergeConfigs(base, overlay Config) Config {
	mergedConfig := base

	if overlay.Manifest != "" {
		mergedConfig.Manifest = overlay.Manifest
	}
	if overlay.CorePackages != nil {
		mergedConfig.CorePackages = overlay.CorePackages
	}
	if overlay.ProjectPackages != nil {
		mergedConfig.ProjectPackages = overlay.ProjectPackages
	}

	return mergedConfig
}
