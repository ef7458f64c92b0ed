package yaml

import (
	"testing"
)

// FuzzConfigParser tests the YAML parser against random/malformed inputs
// to detect crashes, panics, or unexpected behavior.
//
// Run with: go test -fuzz=FuzzConfigParser -fuzztime=30s
func FuzzConfigParser(f *testing.F) {
	// Seed corpus with valid YAML examples
	f.Add([]byte(`manifest_url: https://googlechromelabs.github.io/chrome-for-testing/known-good-versions-with-downloads.json
driver: chromedriver
default_prefix: "128"
output_dir: .drivers
`))

	f.Add([]byte(`driver: chromedriver
default_prefix: "127.0"
`))

	// Seed with edge cases
	f.Add([]byte(``))                              // Empty input
	f.Add([]byte(`driver: ""` + "\n"))             // Empty driver name
	f.Add([]byte(`{}`))                            // Empty JSON-style YAML
	f.Add([]byte(`[]`))                            // Array instead of object
	f.Add([]byte(`driver: test\n  bad`))           // Invalid indentation
	f.Add([]byte(`driver: test\ndriver: again`))   // Duplicate keys
	f.Add([]byte(`default_prefix: [not, a, str]`)) // Wrong field type

	parser := NewConfigParser()

	f.Fuzz(func(_ *testing.T, data []byte) {
		// The parser should handle any input without crashing
		// We don't care if it returns an error - just that it doesn't panic
		_, _ = parser.Parse(data)
	})
}
