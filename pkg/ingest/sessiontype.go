package ingest

import (
	"os"
	"path/filepath"
)

// Session types surfaced to the context builder at session start.
const (
	SessionTypeCode           = "code"
	SessionTypeConversational = "conversational"
)

// manifestFiles mark a working directory as a code project.
var manifestFiles = []string{
	"pyproject.toml",
	"package.json",
	"Cargo.toml",
	"go.mod",
	"pom.xml",
	"Gemfile",
	"composer.json",
	"CMakeLists.txt",
}

// DetectSessionType classifies a starting session. Chat mediums are
// always conversational; otherwise the working directory decides: a
// .git directory or a recognized build manifest means a code session.
func DetectSessionType(medium, workingDir string) string {
	if medium == "discord" || medium == "telegram" {
		return SessionTypeConversational
	}
	if workingDir == "" {
		return SessionTypeConversational
	}

	if info, err := os.Stat(filepath.Join(workingDir, ".git")); err == nil && info.IsDir() {
		return SessionTypeCode
	}
	for _, manifest := range manifestFiles {
		if _, err := os.Stat(filepath.Join(workingDir, manifest)); err == nil {
			return SessionTypeCode
		}
	}
	return SessionTypeConversational
}
