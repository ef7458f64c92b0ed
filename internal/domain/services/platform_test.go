package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestResolvePlatform(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		want    Platform
		wantErr bool
	}{
		{name: "windows maps to win32", goos: "windows", want: PlatformWin32},
		{name: "darwin maps to mac-arm64", goos: "darwin", want: PlatformMacARM64},
		{name: "linux maps to linux64", goos: "linux", want: PlatformLinux64},
		{name: "plan9 unsupported", goos: "plan9", wantErr: true},
		{name: "freebsd unsupported", goos: "freebsd", wantErr: true},
		{name: "empty unsupported", goos: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolvePlatform(tt.goos)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("resolvePlatform(%q) expected error, got %q", tt.goos, got)
				}
				if !errors.Is(err, ErrUnsupportedPlatform) {
					t.Errorf("resolvePlatform(%q) error = %v, want ErrUnsupportedPlatform", tt.goos, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolvePlatform(%q) unexpected error: %v", tt.goos, err)
			}
			if got != tt.want {
				t.Errorf("resolvePlatform(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestResolvePlatform_Host(t *testing.T) {
	// The test host is always one of the three supported families
	tag, err := ResolvePlatform()
	if err != nil {
		t.Fatalf("ResolvePlatform() failed on test host: %v", err)
	}
	switch tag {
	case PlatformWin32, PlatformMacARM64, PlatformLinux64:
	default:
		t.Errorf("ResolvePlatform() = %q, not a known tag", tag)
	}
}

func TestExecutableName(t *testing.T) {
	if got := ExecutableName("chromedriver", PlatformWin32); got != "chromedriver.exe" {
		t.Errorf("ExecutableName(win32) = %q, want chromedriver.exe", got)
	}
	if got := ExecutableName("chromedriver", PlatformLinux64); got != "chromedriver" {
		t.Errorf("ExecutableName(linux64) = %q, want chromedriver", got)
	}
	if got := ExecutableName("chromedriver", PlatformMacARM64); got != "chromedriver" {
		t.Errorf("ExecutableName(mac-arm64) = %q, want chromedriver", got)
	}
}

func TestHostDescription(t *testing.T) {
	tag, err := ResolvePlatform()
	if err != nil {
		t.Fatalf("ResolvePlatform() failed: %v", err)
	}

	desc := HostDescription(context.Background(), tag)
	if !strings.HasPrefix(desc, string(tag)) {
		t.Errorf("HostDescription() = %q, want prefix %q", desc, tag)
	}
}
