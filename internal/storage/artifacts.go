// ABOUTME: Output directory for the generated plan files.
// ABOUTME: Writes are atomic; Stat reports whether a plan exists and how large it is.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/fitcoach/internal/models"
)

// ArtifactDir writes named plan files into Dir.
type ArtifactDir struct {
	Dir string
}

// NewArtifactDir returns an ArtifactDir rooted at dir. An empty dir means the working directory.
func NewArtifactDir(dir string) *ArtifactDir {
	if dir == "" {
		dir = "."
	}
	return &ArtifactDir{Dir: dir}
}

// Path returns where name is written.
func (a *ArtifactDir) Path(name string) string {
	return filepath.Join(a.Dir, filepath.Base(name))
}

// WriteArtifact atomically replaces the named file with content.
func (a *ArtifactDir) WriteArtifact(name, content string) (models.Artifact, error) {
	path := a.Path(name)
	if err := atomicWrite(path, []byte(content)); err != nil {
		return models.Artifact{}, fmt.Errorf("write artifact %s: %w", name, err)
	}
	return a.stat(name, path)
}

// Stat reports the named file. The bool is false when it does not exist.
func (a *ArtifactDir) Stat(name string) (models.Artifact, bool, error) {
	path := a.Path(name)
	art, err := a.stat(name, path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Artifact{}, false, nil
		}
		return models.Artifact{}, false, err
	}
	return art, true, nil
}

func (a *ArtifactDir) stat(name, path string) (models.Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.Artifact{}, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return models.Artifact{Name: filepath.Base(name), Path: abs, Bytes: info.Size()}, nil
}
