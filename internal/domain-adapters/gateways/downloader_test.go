package gateways

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ochairo/chauffeur/internal/domain/entities"
)

// buildZip assembles an in-memory zip archive from name -> content pairs
func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("failed to create zip entry %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write zip entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to finalize zip: %v", err)
	}
	return buf.Bytes()
}

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	if err := os.WriteFile(path, buildZip(t, files), 0600); err != nil {
		t.Fatalf("failed to write zip file: %v", err)
	}
}

func TestArchivePath(t *testing.T) {
	got := ArchivePath("/work", "chromedriver", "128.0.6613.137")
	want := filepath.Join("/work", "chromedriver_128.0.6613.137.zip")
	if got != want {
		t.Errorf("ArchivePath() = %q, want %q", got, want)
	}
}

func TestExtractDir(t *testing.T) {
	got := ExtractDir("/work", "chromedriver", "128.0.6613.137")
	want := filepath.Join("/work", "chromedriver_128.0.6613.137")
	if got != want {
		t.Errorf("ExtractDir() = %q, want %q", got, want)
	}
}

func TestDownloader_DownloadArchive(t *testing.T) {
	archive := buildZip(t, map[string]string{"chromedriver": "binary-bytes"})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		//nolint:errcheck // Test server write
		w.Write(archive)
	}))
	defer server.Close()

	d := NewDownloader()
	outputDir := t.TempDir()
	resolved := &entities.ResolvedDriver{URL: server.URL, Version: "128.0.1"}

	zipPath, err := d.DownloadArchive(context.Background(), resolved, "chromedriver", outputDir)
	if err != nil {
		t.Fatalf("DownloadArchive() failed: %v", err)
	}

	want := filepath.Join(outputDir, "chromedriver_128.0.1.zip")
	if zipPath != want {
		t.Errorf("DownloadArchive() path = %q, want %q", zipPath, want)
	}

	data, err := os.ReadFile(zipPath)
	if err != nil {
		t.Fatalf("failed to read downloaded archive: %v", err)
	}
	if !bytes.Equal(data, archive) {
		t.Error("downloaded archive does not match served bytes")
	}
}

func TestDownloader_DownloadArchive_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	d := NewDownloader()
	resolved := &entities.ResolvedDriver{URL: server.URL, Version: "128.0.1"}

	if _, err := d.DownloadArchive(context.Background(), resolved, "chromedriver", t.TempDir()); err == nil {
		t.Error("DownloadArchive() should fail on HTTP error")
	}
}

func TestDownloader_ExtractZip(t *testing.T) {
	d := NewDownloader()
	tmpDir := t.TempDir()
	zipPath := filepath.Join(tmpDir, "chromedriver_128.0.1.zip")
	writeZip(t, zipPath, map[string]string{
		"chromedriver-linux64/LICENSE.chromedriver": "license text",
		"chromedriver-linux64/chromedriver":         "binary-bytes",
	})

	destDir := filepath.Join(tmpDir, "chromedriver_128.0.1")
	if err := d.ExtractZip(zipPath, destDir); err != nil {
		t.Fatalf("ExtractZip() failed: %v", err)
	}

	binary := filepath.Join(destDir, "chromedriver-linux64", "chromedriver")
	data, err := os.ReadFile(binary)
	if err != nil {
		t.Fatalf("extracted binary missing: %v", err)
	}
	if string(data) != "binary-bytes" {
		t.Errorf("extracted binary content = %q, want binary-bytes", data)
	}
}

func TestDownloader_ExtractZip_CorruptArchive(t *testing.T) {
	d := NewDownloader()
	tmpDir := t.TempDir()
	zipPath := filepath.Join(tmpDir, "bad.zip")
	if err := os.WriteFile(zipPath, []byte("this is not a zip"), 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	if err := d.ExtractZip(zipPath, filepath.Join(tmpDir, "out")); err == nil {
		t.Error("ExtractZip() should fail on a corrupt archive")
	}
}

func TestDownloader_ExtractZip_MissingArchive(t *testing.T) {
	d := NewDownloader()
	if err := d.ExtractZip("/nonexistent.zip", t.TempDir()); err == nil {
		t.Error("ExtractZip() should fail for nonexistent file")
	}
}

func TestDownloader_ExtractZip_PathTraversal(t *testing.T) {
	d := NewDownloader()
	tmpDir := t.TempDir()

	// Hand-build an archive whose entry escapes the destination
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("../escape.txt")
	if err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	if _, err := f.Write([]byte("escaped")); err != nil {
		t.Fatalf("failed to write zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to finalize zip: %v", err)
	}

	zipPath := filepath.Join(tmpDir, "evil.zip")
	if err := os.WriteFile(zipPath, buf.Bytes(), 0600); err != nil {
		t.Fatalf("failed to write zip: %v", err)
	}

	destDir := filepath.Join(tmpDir, "dest")
	if err := d.ExtractZip(zipPath, destDir); err == nil {
		t.Error("ExtractZip() should reject entries escaping the destination")
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "escape.txt")); err == nil {
		t.Error("path traversal entry was written outside the destination")
	}
}
