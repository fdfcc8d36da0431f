package boardconfig

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mjl-/mox/mlog"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a board profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("boardconfig: read %s: %w", path, err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("boardconfig: parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadOrDefault loads path, falling back to Default (and logging why) on
// any error, so a missing or malformed profile never stops a board from
// booting.
func LoadOrDefault(log mlog.Log, path string) *Profile {
	p, err := Load(path)
	if err != nil {
		log.Debug("boardconfig: falling back to default profile", slog.Any("err", err))
		return Default()
	}
	return p
}

// Save validates and writes p to path atomically, adapted from the
// teacher's src/core/config/loader.go save routine.
func Save(p *Profile, path string) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("boardconfig: refusing to save an invalid profile: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("boardconfig: marshal: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("boardconfig: mkdir %s: %w", dir, err)
		}
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("boardconfig: write temp %s: %w", tempPath, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("boardconfig: rename %s: %w", tempPath, err)
	}
	return nil
}
