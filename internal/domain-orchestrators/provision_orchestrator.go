// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ochairo/chauffeur/internal/domain/entities"
	"github.com/ochairo/chauffeur/internal/domain/interfaces"
	"github.com/ochairo/chauffeur/internal/domain/services"
)

// ManifestResolver interface for manifest fetch and lookup
type ManifestResolver interface {
	FetchAndResolve(ctx context.Context, url, driverName, prefix string, tag services.Platform) (*entities.ResolvedDriver, error)
}

// ArchiveDownloader interface for fetching and unpacking driver archives
type ArchiveDownloader interface {
	DownloadArchive(ctx context.Context, resolved *entities.ResolvedDriver, driverName, outputDir string) (string, error)
	ExtractZip(zipPath, destDir string) error
}

// ExecutableFinder interface for locating the extracted executable
type ExecutableFinder interface {
	FindExecutable(extractDir, driverName string) (string, error)
}

// ProvisionOrchestrator coordinates the complete driver provisioning workflow
type ProvisionOrchestrator struct {
	resolver    ManifestResolver
	downloader  ArchiveDownloader
	finder      ExecutableFinder
	logger      interfaces.Logger
	manifestURL string
	driverName  string
	outputDir   string
}

// ProvisionOrchestratorConfig holds configuration for the orchestrator
type ProvisionOrchestratorConfig struct {
	ManifestURL string
	DriverName  string
	OutputDir   string
}

// NewProvisionOrchestrator creates a new provision orchestrator
func NewProvisionOrchestrator(
	resolver ManifestResolver,
	downloader ArchiveDownloader,
	finder ExecutableFinder,
	logger interfaces.Logger,
	config ProvisionOrchestratorConfig,
) *ProvisionOrchestrator {
	manifestURL := config.ManifestURL
	if manifestURL == "" {
		manifestURL = entities.DefaultManifestURL
	}
	driverName := config.DriverName
	if driverName == "" {
		driverName = entities.DefaultDriverName
	}
	outputDir := config.OutputDir
	if outputDir == "" {
		outputDir = entities.DefaultOutputDir
	}
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &ProvisionOrchestrator{
		resolver:    resolver,
		downloader:  downloader,
		finder:      finder,
		logger:      logger,
		manifestURL: manifestURL,
		driverName:  driverName,
		outputDir:   outputDir,
	}
}

// ProvisionResult contains the result of a provisioning operation
type ProvisionResult struct {
	Platform         services.Platform
	Resolved         *entities.ResolvedDriver
	Driver           *entities.ProvisionedDriver
	DownloadDuration time.Duration
	ExtractDuration  time.Duration
	TotalDuration    time.Duration
	Success          bool
	Err              error
}

// Path returns the executable path, or "" when provisioning failed
func (r *ProvisionResult) Path() string {
	if r.Driver == nil {
		return ""
	}
	return r.Driver.Path
}

// Provision executes the complete provisioning workflow for a version prefix.
// Only platform detection failure is returned as an error; every other
// failure class (network, malformed manifest, no match, corrupt archive,
// missing executable) is reported through the logger and captured in the
// result, leaving Path() empty.
func (o *ProvisionOrchestrator) Provision(ctx context.Context, prefix string) (*ProvisionResult, error) {
	startTime := time.Now()
	result := &ProvisionResult{}

	if prefix == "" {
		prefix = entities.DefaultVersionPrefix
	}

	// Step 1: Resolve the host platform tag (fatal on unsupported OS)
	tag, err := services.ResolvePlatform()
	if err != nil {
		return nil, err
	}
	result.Platform = tag
	o.logger.Info("resolved platform", interfaces.F("host", services.HostDescription(ctx, tag)))

	// Step 2: Fetch the manifest and resolve the first matching entry
	resolved, err := o.resolver.FetchAndResolve(ctx, o.manifestURL, o.driverName, prefix, tag)
	if err != nil {
		return o.fail(result, startTime, fmt.Errorf("manifest lookup failed: %w", err)), nil
	}
	if resolved == nil {
		o.logger.Warn("no matching driver found",
			interfaces.F("prefix", prefix),
			interfaces.F("platform", tag))
		result.TotalDuration = time.Since(startTime)
		return result, nil
	}
	result.Resolved = resolved
	o.logger.Info("found matching driver",
		interfaces.F("version", resolved.Version),
		interfaces.F("url", resolved.URL))

	// Step 3: Download the archive
	downloadStart := time.Now()
	zipPath, err := o.downloader.DownloadArchive(ctx, resolved, o.driverName, o.outputDir)
	if err != nil {
		return o.fail(result, startTime, fmt.Errorf("failed to download archive: %w", err)), nil
	}
	result.DownloadDuration = time.Since(downloadStart)

	// Step 4: Extract next to the archive and locate the executable
	extractStart := time.Now()
	extractDir := strings.TrimSuffix(zipPath, ".zip")
	if err := o.downloader.ExtractZip(zipPath, extractDir); err != nil {
		return o.fail(result, startTime, fmt.Errorf("failed to extract archive: %w", err)), nil
	}
	result.ExtractDuration = time.Since(extractStart)

	execPath, err := o.finder.FindExecutable(extractDir, o.driverName)
	if err != nil {
		return o.fail(result, startTime, fmt.Errorf("failed to scan extraction directory: %w", err)), nil
	}
	if execPath == "" {
		// The archive is left on disk here: only a located executable
		// proves the download was usable.
		return o.fail(result, startTime, fmt.Errorf("no %s executable found in %s", o.driverName, extractDir)), nil
	}

	// Step 5: Drop the transient archive, keep the extraction directory
	if err := os.Remove(zipPath); err != nil {
		o.logger.Warn("failed to remove archive", interfaces.F("path", zipPath), interfaces.F("error", err))
	}

	result.Driver = &entities.ProvisionedDriver{
		Name:     o.driverName,
		Version:  resolved.Version,
		Platform: string(tag),
		Path:     execPath,
		Dir:      extractDir,
	}
	result.Success = true
	result.TotalDuration = time.Since(startTime)
	o.logger.Info("driver ready", interfaces.F("path", execPath))
	return result, nil
}

func (o *ProvisionOrchestrator) fail(result *ProvisionResult, startTime time.Time, err error) *ProvisionResult {
	o.logger.Error(err.Error())
	result.Err = err
	result.TotalDuration = time.Since(startTime)
	return result
}

// Summary returns a human-readable summary of the provisioning run
func (r *ProvisionResult) Summary() string {
	if !r.Success {
		if r.Err != nil {
			return fmt.Sprintf("Provisioning failed: %v", r.Err)
		}
		return "Provisioning failed: no matching driver"
	}

	return fmt.Sprintf(`Driver ready!
Version: %s
Platform: %s
Path: %s
Download: %v
Extract: %v
Total: %v`,
		r.Driver.Version,
		r.Driver.Platform,
		r.Driver.Path,
		r.DownloadDuration,
		r.ExtractDuration,
		r.TotalDuration,
	)
}
