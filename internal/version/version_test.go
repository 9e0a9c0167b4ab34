package version

import (
	"strings"
	"testing"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// цветовые коды не должны съедать сами цифры
	for _, part := range []string{"0", "2"} {
		if !strings.Contains(Version, part) {
			t.Errorf("Version %q lost digit %q", Version, part)
		}
	}
}

func TestVersionOverride(t *testing.T) {
	// имитация -ldflags "-X ...version.Version=1.2.3"
	origVersion := Version
	origCommit := GitCommit
	origDate := BuildDate
	defer func() {
		Version = origVersion
		GitCommit = origCommit
		BuildDate = origDate
	}()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2026-08-23T10:30:00Z"

	if Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", Version)
	}
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want abc123def456", GitCommit)
	}
	if BuildDate != "2026-08-23T10:30:00Z" {
		t.Errorf("BuildDate = %q, want 2026-08-23T10:30:00Z", BuildDate)
	}
}
