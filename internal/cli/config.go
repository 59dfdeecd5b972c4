package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/madang/internal/bookstore"
	"github.com/mesh-intelligence/madang/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir   = "data_dir"
	cfgKeyDatabase  = "database"
	cfgKeyPriceMin  = "price.min"
	cfgKeyPriceStep = "price.step"
	cfgKeyLogLevel  = "log.level"
	cfgKeyLogFormat = "log.format"
	cfgKeyLogFile   = "log.file"

	// Debug and info records need --verbose or log.level.
	defaultLogLevel = "warn"
)

// Environment overrides bound by loadConfig. The data directory is resolved
// separately by paths.ResolveDataDir.
var configEnv = map[string]string{
	cfgKeyDatabase:  "MADANG_DATABASE",
	cfgKeyLogLevel:  "MADANG_LOG_LEVEL",
	cfgKeyLogFormat: "MADANG_LOG_FORMAT",
	cfgKeyLogFile:   "MADANG_LOG_FILE",
}

// configFile is the structure written to config.yaml by init.
type configFile struct {
	DataDir  string       `yaml:"data_dir,omitempty"`
	Database string       `yaml:"database"`
	Price    priceSection `yaml:"price"`
	Log      logSection   `yaml:"log"`
}

type priceSection struct {
	Min  int64 `yaml:"min"`
	Step int64 `yaml:"step"`
}

type logSection struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// defaultConfigFile returns the values init writes on first run.
func defaultConfigFile(dataDir string) configFile {
	return configFile{
		DataDir:  dataDir,
		Database: types.DefaultDatabaseFile,
		Price: priceSection{
			Min:  bookstore.DefaultPricing.Min,
			Step: bookstore.DefaultPricing.Step,
		},
		Log: logSection{Level: defaultLogLevel, Format: "text"},
	}
}

// settings is the decoded configuration.
type settings struct {
	ConfigDir string
	DataDir   string
	Database  string
	PriceMin  int64
	PriceStep int64
	LogLevel  string
	LogFormat string
	LogFile   string
}

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDatabase, types.DefaultDatabaseFile)
	v.SetDefault(cfgKeyPriceMin, bookstore.DefaultPricing.Min)
	v.SetDefault(cfgKeyPriceStep, bookstore.DefaultPricing.Step)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, "text")
	for key, env := range configEnv {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// settingsFrom decodes v. Non-positive price values fall back to defaults.
func settingsFrom(v *viper.Viper) settings {
	s := settings{
		DataDir:   v.GetString(cfgKeyDataDir),
		Database:  v.GetString(cfgKeyDatabase),
		PriceMin:  v.GetInt64(cfgKeyPriceMin),
		PriceStep: v.GetInt64(cfgKeyPriceStep),
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
		LogFile:   v.GetString(cfgKeyLogFile),
	}
	if s.PriceMin < 1 {
		s.PriceMin = bookstore.DefaultPricing.Min
	}
	if s.PriceStep < 1 {
		s.PriceStep = bookstore.DefaultPricing.Step
	}
	return s
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// writeConfigIfMissing creates config.yaml with default values. An existing
// file is left untouched and reported as not written.
func writeConfigIfMissing(configDir, dataDir string) (bool, error) {
	path := filepath.Join(configDir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := defaultConfigFile(dataDir)
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# Madang configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
