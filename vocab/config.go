package vocab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// vocabularyFile is the on-disk YAML shape of a vocabulary.
type vocabularyFile struct {
	Venues []string `yaml:"venues"`
}

// Load parses a vocabulary from YAML data. The file lists venue names in
// priority order under a "venues" key:
//
//	venues:
//	  - GH Pure Lakes Aromatherapy Massage
//	  - Source
//	  - Pure
//
// The loaded vocabulary is validated for prefix shadowing.
func Load(data []byte) (*Vocabulary, error) {
	var vf vocabularyFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	if len(vf.Venues) == 0 {
		return nil, fmt.Errorf("load vocabulary: no venues listed")
	}
	v := New(vf.Venues)
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	return v, nil
}

// LoadFile loads a vocabulary from a YAML file on disk.
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	return Load(data)
}
