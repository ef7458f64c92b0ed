package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ochairo/chauffeur/internal/domain/entities"
	"github.com/ochairo/chauffeur/internal/domain/services"
)

// ManifestFetcher retrieves the known-good-versions feed and resolves a
// driver download out of it
type ManifestFetcher struct {
	httpClient *http.Client
}

// NewManifestFetcher creates a new manifest fetcher
func NewManifestFetcher() *ManifestFetcher {
	return &ManifestFetcher{
		httpClient: &http.Client{
			Timeout: 30 * time.Second, // Manifest is a few MB of JSON
		},
	}
}

// Fetch downloads and decodes the version manifest from url
func (mf *ManifestFetcher) Fetch(ctx context.Context, url string) (*entities.VersionManifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "chauffeur/1.0")

	resp, err := mf.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("manifest request failed: %w", err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var manifest entities.VersionManifest
	if err := json.NewDecoder(resp.Body).Decode(&manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &manifest, nil
}

// Resolve scans the manifest in feed order and returns the first entry whose
// version starts with prefix and which carries a download for the given
// driver whose platform string contains tag. Feed order is authoritative;
// no numeric version comparison is performed. Returns nil when nothing
// matches.
func (mf *ManifestFetcher) Resolve(manifest *entities.VersionManifest, driverName, prefix string, tag services.Platform) *entities.ResolvedDriver {
	for _, entry := range manifest.Versions {
		if !strings.HasPrefix(entry.Version, prefix) {
			continue
		}
		for _, download := range entry.Downloads[driverName] {
			if strings.Contains(download.Platform, string(tag)) {
				return &entities.ResolvedDriver{
					URL:     download.URL,
					Version: entry.Version,
				}
			}
		}
	}
	return nil
}

// FetchAndResolve combines Fetch and Resolve
func (mf *ManifestFetcher) FetchAndResolve(ctx context.Context, url, driverName, prefix string, tag services.Platform) (*entities.ResolvedDriver, error) {
	manifest, err := mf.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return mf.Resolve(manifest, driverName, prefix, tag), nil
}
