package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"findbar/internal/domain"
)

// datasetFile is the on-disk layout of a dataset
type datasetFile struct {
	Items []domain.Item `toml:"items" yaml:"items"`
}

// LoadFile reads a TOML or YAML dataset, chosen by file extension
func LoadFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	items, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}

	s, err := NewMemoryStore(items)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset %s: %w", path, err)
	}
	return s, nil
}

// Decode parses dataset bytes. ext is a file extension such as ".toml".
func Decode(ext string, data []byte) ([]domain.Item, error) {
	var file datasetFile

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (want .toml, .yaml or .yml)", ext)
	}

	return file.Items, nil
}

// Open returns the dataset at path, or the built-in one when path is empty
func Open(path string) (*MemoryStore, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
