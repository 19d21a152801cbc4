package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigPath is a path relative to the configuration home.
type ConfigPath string

func (p ConfigPath) String() string {
	return string(p)
}

var (
	// WalletConfigHome is the folder containing the configuration of the
	// wallet service.
	WalletConfigHome = ConfigPath("rgbwallet")

	// WalletConfigFile is the main configuration file.
	WalletConfigFile = JoinConfigPath(WalletConfigHome, "config.toml")
)

// JoinConfigPath joins any number of path elements with a root ConfigPath
// into a single path, separating them with an OS specific Separator.
func JoinConfigPath(p ConfigPath, elem ...string) ConfigPath {
	return ConfigPath(filepath.Join(append([]string{string(p)}, elem...)...))
}

// DefaultPaths resolves the paths under the XDG base directories.
type DefaultPaths struct{}

// CreateConfigPathFor builds the default path for configuration files and
// creates the parent directories, if needed.
func (p *DefaultPaths) CreateConfigPathFor(relFilePath ConfigPath) (string, error) {
	path, err := xdg.ConfigFile(relFilePath.String())
	if err != nil {
		return "", fmt.Errorf("couldn't create the configuration path for %q: %w", relFilePath, err)
	}
	return path, nil
}

// CreateConfigDirFor builds the default path for a configuration folder and
// creates it, if needed.
func (p *DefaultPaths) CreateConfigDirFor(relDirPath ConfigPath) (string, error) {
	return createDir(p.ConfigPathFor(relDirPath))
}

func (p *DefaultPaths) ConfigPathFor(relFilePath ConfigPath) string {
	return filepath.Join(xdg.ConfigHome, relFilePath.String())
}

// CustomPaths resolves the paths under a home chosen by the user.
type CustomPaths struct {
	CustomHome string
}

func (p *CustomPaths) CreateConfigPathFor(relFilePath ConfigPath) (string, error) {
	path := p.ConfigPathFor(relFilePath)
	if _, err := createDir(filepath.Dir(path)); err != nil {
		return "", err
	}
	return path, nil
}

func (p *CustomPaths) CreateConfigDirFor(relDirPath ConfigPath) (string, error) {
	return createDir(p.ConfigPathFor(relDirPath))
}

func (p *CustomPaths) ConfigPathFor(relFilePath ConfigPath) string {
	return filepath.Join(p.CustomHome, "config", relFilePath.String())
}

func createDir(path string) (string, error) {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return "", fmt.Errorf("couldn't create directory %q: %w", path, err)
	}
	return path, nil
}
