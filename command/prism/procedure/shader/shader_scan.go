package shader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type Source struct {
	Name       string
	Directory  string
	Path       string
	Stage      Stage
	Output     string
	OutputPath string
}

type Artifact struct {
	Name string
	Path string
	Size int64
}

// Scan lists shader sources directly inside directory, sorted by name.
// Subdirectories are neither matched nor descended into.
func Scan(directory string) ([]*Source, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader directory: %w", err)
	}

	sources := make([]*Source, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		stage, ok := StageOf(name)
		if !ok {
			continue
		}

		output, err := OutputName(name)
		if err != nil {
			return nil, err
		}

		sources = append(sources, &Source{
			Name:       name,
			Directory:  directory,
			Path:       filepath.Join(directory, name),
			Stage:      stage,
			Output:     output,
			OutputPath: filepath.Join(directory, output),
		})
	}

	// * sort for a stable compile order
	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Name < sources[j].Name
	})

	return sources, nil
}

// ScanArtifacts lists compiled ".spv" files directly inside directory.
func ScanArtifacts(directory string) ([]*Artifact, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader directory: %w", err)
	}

	artifacts := make([]*Artifact, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ArtifactExtension) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat artifact %s: %w", entry.Name(), err)
		}

		artifacts = append(artifacts, &Artifact{
			Name: entry.Name(),
			Path: filepath.Join(directory, entry.Name()),
			Size: info.Size(),
		})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Name < artifacts[j].Name
	})

	return artifacts, nil
}
