package gateways

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ochairo/chauffeur/internal/domain/entities"
)

// DriverFinder provides utilities for locating extracted driver executables
type DriverFinder struct{}

// NewDriverFinder creates a new driver finder
func NewDriverFinder() *DriverFinder {
	return &DriverFinder{}
}

// FindExecutable walks extractDir depth-first and returns the path of the
// first file whose base name starts with driverName. Archives ship license
// files named LICENSE.chromedriver next to the binary; prefix matching on
// the base name is what tells them apart. Returns "" when no file matches.
func (f *DriverFinder) FindExecutable(extractDir, driverName string) (string, error) {
	if _, err := os.Stat(extractDir); os.IsNotExist(err) {
		return "", fmt.Errorf("extraction directory does not exist: %s", extractDir)
	}

	var found string
	err := filepath.Walk(extractDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || found != "" {
			return nil
		}
		if strings.HasPrefix(filepath.Base(path), driverName) {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to walk extraction directory: %w", err)
	}

	return found, nil
}

// ListProvisioned scans outputDir for retained extraction directories and
// returns the drivers found in them, one per version directory.
func (f *DriverFinder) ListProvisioned(outputDir, driverName string) ([]*entities.ProvisionedDriver, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	prefix := driverName + "_"
	drivers := make([]*entities.ProvisionedDriver, 0)
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}

		dir := filepath.Join(outputDir, entry.Name())
		path, err := f.FindExecutable(dir, driverName)
		if err != nil || path == "" {
			// Directory without an executable is stale; still report it
			path = ""
		}

		drivers = append(drivers, &entities.ProvisionedDriver{
			Name:    driverName,
			Version: strings.TrimPrefix(entry.Name(), prefix),
			Path:    path,
			Dir:     dir,
		})
	}

	return drivers, nil
}

// CleanProvisioned removes extraction directories and stray archives for
// driverName under outputDir, keeping keepVersion when non-empty. Returns
// the paths it removed.
func (f *DriverFinder) CleanProvisioned(outputDir, driverName, keepVersion string) ([]string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	prefix := driverName + "_"
	var removed []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}

		version := strings.TrimPrefix(name, prefix)
		version = strings.TrimSuffix(version, ".zip")
		if keepVersion != "" && version == keepVersion {
			continue
		}

		path := filepath.Join(outputDir, name)
		if err := os.RemoveAll(path); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		removed = append(removed, path)
	}

	return removed, nil
}
