// Package config persists the drn credential file in the user's home directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the config file name inside the home directory.
const FileName = ".drnrc"

// KeyAPIKey is the JSON key holding the credential.
const KeyAPIKey = "apiKey"

// Path returns the absolute path of the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// Load reads the whole config file. A missing or unparsable file yields an
// empty map, never an error; callers treat absent keys as "not set".
func Load() map[string]any {
	path, err := Path()
	if err != nil {
		return map[string]any{}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return map[string]any{}
	}
	var cfg map[string]any
	if err := json.Unmarshal(b, &cfg); err != nil || cfg == nil {
		return map[string]any{}
	}
	return cfg
}

// Save serializes cfg as indented JSON and overwrites the config file in full.
// Last writer wins; there is no locking and the write is not atomic.
func Save(cfg map[string]any) error {
	path, err := Path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// APIKey returns the stored credential, or "" when not logged in.
func APIKey() string {
	key, _ := Load()[KeyAPIKey].(string)
	return key
}
