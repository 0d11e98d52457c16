package version

import (
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	if info.Version == "" {
		t.Error("version should never be empty")
	}
	if info.GoVersion == "" {
		t.Error("go version should be populated")
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("platform should be os/arch, got %q", info.Platform)
	}
}

func TestString(t *testing.T) {
	info := Info{
		Version:   "1.2.3",
		Commit:    "0123456789abcdef",
		Date:      "2026-03-01",
		GoVersion: "go1.24",
		Platform:  "linux/amd64",
	}

	s := info.String()
	if !strings.Contains(s, "payctl 1.2.3") {
		t.Errorf("expected version in string, got %q", s)
	}
	if !strings.Contains(s, "01234567") || strings.Contains(s, "0123456789abcdef") {
		t.Errorf("expected shortened commit, got %q", s)
	}
}

func TestShort(t *testing.T) {
	if got := (Info{Version: "1.2.3"}).Short(); got != "1.2.3" {
		t.Errorf("Short() = %q, want 1.2.3", got)
	}
}
