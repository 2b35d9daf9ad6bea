package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// ResolveAppName picks the display name for the demo: the configured
// app.name if set, else the last segment of the enclosing module path,
// else the executable name.
func ResolveAppName(cfg *Config, dir string) string {
	if cfg != nil {
		if name := strings.TrimSpace(cfg.App.Name); name != "" {
			return name
		}
	}

	if dir != "" {
		if path, err := modulePath(dir); err == nil {
			return defaultAppName(path, dir)
		}
	}

	return executableName()
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" {
		return "pressdemo"
	}
	return base
}

func executableName() string {
	executable, err := os.Executable()
	if err != nil {
		return "pressdemo"
	}
	return filepath.Base(executable)
}
