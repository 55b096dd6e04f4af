// Package host implements the engine's host contract against an application
// configuration directory on disk: the active theme is read from
// appearance.json, the background is sampled from the theme stylesheet and
// the result is written as a CSS snippet.
package host

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/darkslide/internal/logging"
	"github.com/jmylchreest/darkslide/internal/security"
)

// DefaultConfigDir is the configuration directory name inside a vault.
const DefaultConfigDir = ".obsidian"

// File names relative to the configuration directory.
const (
	AppearanceFile = "appearance.json"
	SnippetFile    = "darkslide.css"
	PluginID       = "darkslide"
)

// appearance is the subset of appearance.json the host reads.
type appearance struct {
	CSSTheme string `json:"cssTheme"`
}

// Vault locates the files of one vault.
type Vault struct {
	Root      string
	ConfigDir string

	// Background, when set, replaces sampling the theme stylesheet.
	Background string

	logger hclog.Logger
}

// NewVault returns a vault rooted at root. An empty configDir selects
// DefaultConfigDir.
func NewVault(root, configDir string, logger hclog.Logger) *Vault {
	if configDir == "" {
		configDir = DefaultConfigDir
	}
	return &Vault{
		Root:      root,
		ConfigDir: configDir,
		logger:    logging.OrNull(logger).Named("vault"),
	}
}

// ConfigPath returns the absolute configuration directory.
func (v *Vault) ConfigPath() string {
	return filepath.Join(v.Root, v.ConfigDir)
}

// AppearancePath returns the path of appearance.json.
func (v *Vault) AppearancePath() string {
	return filepath.Join(v.ConfigPath(), AppearanceFile)
}

// SettingsPath returns the path of the persisted plugin settings.
func (v *Vault) SettingsPath() string {
	return filepath.Join(v.ConfigPath(), "plugins", PluginID, "data.json")
}

// SnippetPath returns the path of the generated CSS snippet.
func (v *Vault) SnippetPath() string {
	return filepath.Join(v.ConfigPath(), "snippets", SnippetFile)
}

// ThemeStylesheetPath returns the stylesheet for a community theme.
func (v *Vault) ThemeStylesheetPath(id string) (string, error) {
	if err := security.ValidateThemeID(id); err != nil {
		return "", err
	}
	rel := filepath.Join("themes", id, "theme.css")
	if err := security.ValidateFilePath(rel, v.ConfigPath()); err != nil {
		return "", err
	}
	return filepath.Join(v.ConfigPath(), rel), nil
}

// ActiveThemeID reads cssTheme from appearance.json. A missing or unreadable
// file means the built-in theme ("").
func (v *Vault) ActiveThemeID() string {
	data, err := os.ReadFile(v.AppearancePath())
	if err != nil {
		if !os.IsNotExist(err) {
			v.logger.Warn("failed to read appearance", "path", v.AppearancePath(), "error", err)
		}
		return ""
	}

	var a appearance
	if err := json.Unmarshal(data, &a); err != nil {
		v.logger.Warn("failed to parse appearance", "path", v.AppearancePath(), "error", err)
		return ""
	}
	return a.CSSTheme
}
