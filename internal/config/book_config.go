// Package config reads book project configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dvogt23/book-summary/internal/book"
)

const (
	// MdBookConfigFileName is the mdBook project configuration file.
	MdBookConfigFileName = "book.toml"
	// GitBookConfigFileName is the GitBook project configuration file.
	GitBookConfigFileName = "book.json"
	// GitBookLegacyConfigFileName is the legacy GitBook configuration file,
	// consulted when book.json is absent. Its content is plain JSON.
	GitBookLegacyConfigFileName = "book.js"

	jsonConfigType = "json"

	mdBookTitleKey   = "book.title"
	mdBookSourceKey  = "book.src"
	gitBookTitleKey  = "title"
	gitBookSourceKey = "root"
)

// BookConfiguration carries the values a project configuration file may
// provide. Empty fields mean the file did not set them; flag and default
// precedence is resolved by the caller.
type BookConfiguration struct {
	Title  string
	Source string
}

// LoadBookConfiguration reads the configuration file of the dialect's
// documentation generator from the project directory. A missing file yields an
// empty configuration; an unreadable or unparsable file is an error.
func LoadBookConfiguration(projectDirectory string, dialect book.Dialect) (BookConfiguration, error) {
	if dialect == book.DialectGitBook {
		configuration, found, loadError := loadConfigurationFile(filepath.Join(projectDirectory, GitBookConfigFileName), jsonConfigType, gitBookTitleKey, gitBookSourceKey)
		if loadError != nil || found {
			return configuration, loadError
		}
		configuration, _, loadError = loadConfigurationFile(filepath.Join(projectDirectory, GitBookLegacyConfigFileName), jsonConfigType, gitBookTitleKey, gitBookSourceKey)
		return configuration, loadError
	}
	configuration, _, loadError := loadConfigurationFile(filepath.Join(projectDirectory, MdBookConfigFileName), "", mdBookTitleKey, mdBookSourceKey)
	return configuration, loadError
}

// loadConfigurationFile reads one configuration file through viper. The
// configType override lets book.js be parsed as JSON despite its extension.
func loadConfigurationFile(configPath string, configType string, titleKey string, sourceKey string) (BookConfiguration, bool, error) {
	fileInformation, statError := os.Stat(configPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return BookConfiguration{}, false, nil
		}
		return BookConfiguration{}, false, fmt.Errorf("stat configuration %s: %w", configPath, statError)
	}
	if fileInformation.IsDir() {
		return BookConfiguration{}, false, fmt.Errorf("configuration path %s is a directory", configPath)
	}

	reader := viper.New()
	reader.SetConfigFile(configPath)
	if configType != "" {
		reader.SetConfigType(configType)
	}
	if readError := reader.ReadInConfig(); readError != nil {
		return BookConfiguration{}, false, fmt.Errorf("read configuration from %s: %w", configPath, readError)
	}

	return BookConfiguration{
		Title:  reader.GetString(titleKey),
		Source: reader.GetString(sourceKey),
	}, true, nil
}
