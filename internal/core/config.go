package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// How many parent directories to traverse before giving up on finding a
// configuration file
const maxDepth = 10

// ConfigFilename is searched in the working directory and its parents.
const ConfigFilename = ".nt-publish.toml"

// Default configuration when no file is found
const DefaultConfig = `
[core]
extensions = ["md", "markdown"]

[medias]
base_url = ""
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      sync.Once
	configSingleton *Config
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Core   ConfigCore
	Medias ConfigMedias
}
type ConfigCore struct {
	Extensions []string
}
type ConfigMedias struct {
	// BaseURL is the public uploads URL under which embedded medias are
	// resolved. Embeds are left untouched when empty.
	BaseURL string `toml:"base_url"`
}

// SupportExtension checks if the given file extension must be considered.
func (f *ConfigFile) SupportExtension(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".") // ".md" => "md"
	for _, extension := range f.Core.Extensions {
		if strings.EqualFold(extension, ext) { // case-insensitive
			return true
		}
	}
	return false
}

type Config struct {
	// RootDirectory is the directory containing the configuration file
	// (or the working directory when none was found).
	RootDirectory string

	// ConfigFile contains the parsed configuration
	ConfigFile ConfigFile
}

func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfigFromDirectory(currentHome())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
	})
	return configSingleton
}

// SetVerboseLevel overrides the default verbose level
func (c *Config) SetVerboseLevel(level VerboseLevel) *Config {
	CurrentLogger().SetVerboseLevel(level)
	return c
}

func currentHome() string {
	// Supports overriding the root directory mainly for testing purposes.
	if path, ok := os.LookupEnv("NT_PUBLISH_HOME"); ok {
		abspath, err := filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to evaluate $NT_PUBLISH_HOME")
			os.Exit(1)
		}
		return abspath
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine current directory: %v\n", err)
		os.Exit(1)
	}
	return cwd
}

// ReadConfigFromDirectory loads the configuration by searching for a
// .nt-publish.toml file in the given directory or any parent directory.
// The default configuration is returned when no file exists.
func ReadConfigFromDirectory(path string) (*Config, error) {
	rootPath := path
	i := 0 // Safeguard to not go up too far
	for {
		i++
		if i > maxDepth {
			return defaultConfig(path)
		}
		configPath := filepath.Join(rootPath, ConfigFilename)
		_, err := os.Stat(configPath)
		if os.IsNotExist(err) {
			if len(strings.Split(rootPath, string(os.PathSeparator))) <= 2 {
				// Root directory detected
				return defaultConfig(path)
			}
			rootPath = filepath.Clean(filepath.Join(rootPath, ".."))
		} else if err != nil {
			return nil, fmt.Errorf("error while searching for configuration file: %v", err)
		} else {
			break
		}
	}

	content, err := os.ReadFile(filepath.Join(rootPath, ConfigFilename))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s file: %v", ConfigFilename, err)
	}
	configFile, err := parseConfigFile(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s file: %v", ConfigFilename, err)
	}

	return &Config{
		RootDirectory: rootPath,
		ConfigFile:    *configFile,
	}, nil
}

func defaultConfig(path string) (*Config, error) {
	configFile, err := parseConfigFile(DefaultConfig)
	if err != nil {
		return nil, fmt.Errorf("default configuration is broken: %v", err)
	}
	return &Config{
		RootDirectory: path,
		ConfigFile:    *configFile,
	}, nil
}

func parseConfigFile(content string) (*ConfigFile, error) {
	var configFile ConfigFile
	if err := toml.Unmarshal([]byte(content), &configFile); err != nil {
		return nil, err
	}
	return &configFile, nil
}
