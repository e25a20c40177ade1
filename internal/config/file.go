package config

import (
	"fmt"
	"os"
	"path/filepath"

	"assetcopy/internal/domain"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	SourceDir             string     `yaml:"source_dir"`
	DestDir               string     `yaml:"dest_dir"`
	AllowDuplicateSources *bool      `yaml:"allow_duplicate_sources"`
	Strict                *bool      `yaml:"strict"`
	ListFilters           []string   `yaml:"list_filters"`
	Mapping               AssetTable `yaml:"mapping"`
}

// AssetTable decodes either a YAML mapping of source to destination names or
// a sequence of {source, dest} objects. Both keep document order, and a
// mapping may repeat a source key.
type AssetTable []domain.AssetPair

func (t *AssetTable) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		pairs := make([]domain.AssetPair, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: mapping entries must be plain names", key.Line)
			}
			pairs = append(pairs, domain.AssetPair{Source: key.Value, Dest: value.Value})
		}
		*t = pairs
	case yaml.SequenceNode:
		var entries []struct {
			Source string `yaml:"source"`
			Dest   string `yaml:"dest"`
		}
		if err := node.Decode(&entries); err != nil {
			return err
		}
		pairs := make([]domain.AssetPair, 0, len(entries))
		for _, entry := range entries {
			pairs = append(pairs, domain.AssetPair{Source: entry.Source, Dest: entry.Dest})
		}
		*t = pairs
	default:
		return fmt.Errorf("line %d: mapping must be a map or a list", node.Line)
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Relative directories in the file are relative to the file itself.
	base := filepath.Dir(path)
	if file.SourceDir != "" {
		cfg.SourceDir = resolveFrom(base, file.SourceDir)
	}
	if file.DestDir != "" {
		cfg.DestDir = resolveFrom(base, file.DestDir)
	}
	if file.AllowDuplicateSources != nil {
		cfg.AllowDuplicateSources = *file.AllowDuplicateSources
	}
	if file.Strict != nil {
		cfg.Strict = *file.Strict
	}
	if file.ListFilters != nil {
		cfg.ListFilters = file.ListFilters
	}
	if file.Mapping != nil {
		cfg.Mapping = file.Mapping
	}
	return nil
}

func resolveFrom(base, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}
