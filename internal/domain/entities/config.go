package entities

// Default values applied when chauffeur.yml is absent or leaves fields empty.
const (
	DefaultManifestURL   = "https://googlechromelabs.github.io/chrome-for-testing/known-good-versions-with-downloads.json"
	DefaultDriverName    = "chromedriver"
	DefaultVersionPrefix = "128"
	DefaultOutputDir     = "."
)

// Config represents tool configuration loaded from chauffeur.yml
type Config struct {
	ManifestURL   string
	DriverName    string
	VersionPrefix string
	OutputDir     string
}

// DefaultConfig returns a Config populated with the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		ManifestURL:   DefaultManifestURL,
		DriverName:    DefaultDriverName,
		VersionPrefix: DefaultVersionPrefix,
		OutputDir:     DefaultOutputDir,
	}
}
