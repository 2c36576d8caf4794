package adapter

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "runnergen.dev/pkg/runnergen/internal/model"
)

const manifestVersion = 1

// ResultStore persists the results of a generation run as a manifest that
// build systems can read back.
type ResultStore interface {
	SaveResults(path m.Path, results []m.Result) error
	LoadResults(path m.Path) ([]m.Result, error)
}

type manifest struct {
	Version int        `yaml:"version"`
	Results []m.Result `yaml:"results"`
}

type yamlResultStore struct {
	fs SourceFSAdapter
}

// NewResultStore returns a ResultStore that writes YAML manifests through fsAdapter.
func NewResultStore(fsAdapter SourceFSAdapter) ResultStore {
	return &yamlResultStore{fs: fsAdapter}
}

func (s *yamlResultStore) SaveResults(path m.Path, results []m.Result) error {
	if results == nil {
		results = []m.Result{}
	}

	content, err := yaml.Marshal(manifest{Version: manifestVersion, Results: results})
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := s.fs.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}

	return nil
}

// LoadResults returns the stored results, or none when the manifest does not exist.
func (s *yamlResultStore) LoadResults(path m.Path) ([]m.Result, error) {
	content, err := s.fs.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var doc manifest
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	if doc.Version != manifestVersion {
		return nil, fmt.Errorf("manifest %s: unsupported version %d", path, doc.Version)
	}

	return doc.Results, nil
}
