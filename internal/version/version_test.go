package version

import (
	"strings"
	"testing"
)

func TestVersionMetadata(t *testing.T) {
	if Number == "" {
		t.Error("Number should have a default value")
	}
	if Version == "" {
		t.Error("Version should render non-empty")
	}

	// GitCommit and BuildDate can be empty (optional)
	_ = GitCommit
	_ = BuildDate
}

func TestRenderIncludesCommit(t *testing.T) {
	origCommit := GitCommit

	// Simulate build-time ldflags
	GitCommit = "abc123def456"
	got := render()
	if !strings.Contains(got, "(abc123def456)") {
		t.Errorf("render() = %q, want it to carry the commit hash", got)
	}

	GitCommit = ""
	if got := render(); strings.Contains(got, "(") {
		t.Errorf("render() = %q, want no commit suffix without a recorded hash", got)
	}
	GitCommit = origCommit
}
