package gateways

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ochairo/chauffeur/internal/domain/entities"
)

// Downloader fetches driver archives and unpacks them
type Downloader struct {
	httpClient *http.Client
}

// NewDownloader creates a new downloader
func NewDownloader() *Downloader {
	return &Downloader{
		httpClient: &http.Client{
			Timeout: 5 * time.Minute, // Long timeout for large downloads
		},
	}
}

// ArchivePath returns the transient zip location for a resolved version
func ArchivePath(outputDir, driverName, version string) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s_%s.zip", driverName, version))
}

// ExtractDir returns the retained extraction directory for a resolved version
func ExtractDir(outputDir, driverName, version string) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s_%s", driverName, version))
}

// DownloadArchive downloads the resolved driver archive into outputDir and
// returns the path of the written zip. Paths are derived deterministically
// from the version string, so two runs for the same version share them.
func (d *Downloader) DownloadArchive(ctx context.Context, resolved *entities.ResolvedDriver, driverName, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	zipPath := ArchivePath(outputDir, driverName, resolved.Version)
	if err := d.downloadFile(ctx, resolved.URL, zipPath); err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}

	return zipPath, nil
}

// downloadFile downloads a file from URL to destination
func (d *Downloader) downloadFile(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "chauffeur/1.0")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	// Create destination file
	//nolint:gosec // G304: File path dest is function parameter for download destination
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	//nolint:errcheck // Defer close on file being written
	defer out.Close()

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Downloaded %s (%d bytes)\n", filepath.Base(dest), written)

	return nil
}

// ExtractZip extracts a zip archive to destination directory
func (d *Downloader) ExtractZip(zipPath, destDir string) error {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("failed to open zip: %w", err)
	}
	//nolint:errcheck // Defer close on zip reader
	defer reader.Close()

	if err := os.MkdirAll(destDir, 0750); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	for _, file := range reader.File {
		//nolint:gosec // G305: Path traversal validated by HasPrefix check below
		target := filepath.Join(destDir, file.Name)

		// Ensure target is within destDir (security check)
		if !strings.HasPrefix(filepath.Clean(target), filepath.Clean(destDir)) {
			return fmt.Errorf("invalid file path in archive: %s", file.Name)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0750); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
			continue
		}

		if err := d.extractZipFile(file, target); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "Extracted to %s\n", destDir)
	return nil
}

func (d *Downloader) extractZipFile(file *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry: %w", err)
	}
	//nolint:errcheck // Defer close on archive entry reader
	defer src.Close()

	outFile, err := os.OpenFile(target, os.O_CREATE|os.O_RDWR|os.O_TRUNC, file.Mode())
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	// Copy with size limit (1GB max to prevent decompression bombs)
	if _, err := io.Copy(outFile, io.LimitReader(src, 1<<30)); err != nil {
		_ = outFile.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := outFile.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}
