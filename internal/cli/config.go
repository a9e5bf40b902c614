package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/navstore/internal/bridge"
	"github.com/mesh-intelligence/navstore/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeyAppID    = "app_id"
	cfgKeyLogLevel = "log_level"

	envPrefix = "NAVSTORE"

	defaultLogLevel = "info"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend  string `yaml:"backend"`
	DataDir  string `yaml:"data_dir,omitempty"`
	AppID    string `yaml:"app_id"`
	LogLevel string `yaml:"log_level"`
}

// defaultConfig is the content of a freshly written config.yaml.
var defaultConfig = configFile{
	Backend:  types.BackendSQLite,
	AppID:    bridge.DefaultAppID,
	LogLevel: defaultLogLevel,
}

// loadConfig reads config.yaml from configDir using Viper. It creates the
// directory and a default config.yaml on first run. NAVSTORE_APP_ID and
// NAVSTORE_LOG_LEVEL override the file.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt)); err != nil {
		return nil, fmt.Errorf("write default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultConfig.Backend)
	v.SetDefault(cfgKeyAppID, defaultConfig.AppID)
	v.SetDefault(cfgKeyLogLevel, defaultConfig.LogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	// data_dir has no env binding; NAVSTORE_DATA_DIR ranks below the file
	// and is resolved by paths.ResolveDataDir.
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyAppID, cfgKeyLogLevel} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	header := []byte("# navstore configuration\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}
