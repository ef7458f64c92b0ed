// Package entities defines core domain models and data structures.
package entities

// VersionManifest represents the known-good-versions feed published for
// Chrome for Testing. Entry order is the order the feed was served in.
type VersionManifest struct {
	Versions []VersionEntry `json:"versions"`
}

// VersionEntry is a single browser version and its driver downloads,
// keyed by driver name (e.g. "chromedriver").
type VersionEntry struct {
	Version   string                      `json:"version"`
	Downloads map[string][]DriverDownload `json:"downloads"`
}

// DriverDownload is one per-platform download descriptor.
type DriverDownload struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// ResolvedDriver is the outcome of a manifest lookup: the archive URL for
// the host platform and the exact version it belongs to.
type ResolvedDriver struct {
	URL     string
	Version string
}
