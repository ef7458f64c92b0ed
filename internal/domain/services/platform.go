// Package services contains pure domain logic with no I/O dependencies.
package services

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// Platform is a manifest platform tag for an OS/architecture combination
type Platform string

// Platform tags used by the chromedriver download manifest
const (
	PlatformWin32    Platform = "win32"
	PlatformMacARM64 Platform = "mac-arm64"
	PlatformLinux64  Platform = "linux64"
)

// ErrUnsupportedPlatform is returned when the host OS is not one of the
// recognized families. It is the only fatal error class in the tool.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// ResolvePlatform maps the host OS family to its manifest platform tag.
// Deterministic for the process lifetime; call once and pass the result down.
func ResolvePlatform() (Platform, error) {
	return resolvePlatform(runtime.GOOS)
}

func resolvePlatform(goos string) (Platform, error) {
	switch goos {
	case "windows":
		return PlatformWin32, nil
	case "darwin":
		return PlatformMacARM64, nil
	case "linux":
		return PlatformLinux64, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// ExecutableName returns the driver executable filename for a platform tag.
func ExecutableName(driverName string, tag Platform) string {
	if tag == PlatformWin32 {
		return driverName + ".exe"
	}
	return driverName
}

// HostDescription returns a human-readable description of the host for
// progress reporting, e.g. "linux64 (ubuntu 24.04)". Distribution details
// come from gopsutil and are Linux-only; any detection failure falls back
// to the bare tag rather than erroring out.
func HostDescription(ctx context.Context, tag Platform) string {
	if tag != PlatformLinux64 {
		return fmt.Sprintf("%s (%s/%s)", tag, runtime.GOOS, runtime.GOARCH)
	}

	platform, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil || platform == "" {
		return fmt.Sprintf("%s (%s/%s)", tag, runtime.GOOS, runtime.GOARCH)
	}
	if version == "" {
		return fmt.Sprintf("%s (%s)", tag, platform)
	}
	return fmt.Sprintf("%s (%s %s)", tag, platform, version)
}
