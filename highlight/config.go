package highlight

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// rulesFile is the on-disk YAML shape of a rule table.
type rulesFile struct {
	Rules []struct {
		Name     string `yaml:"name"`
		Pattern  string `yaml:"pattern"`
		Category string `yaml:"category"`
	} `yaml:"rules"`
}

// LoadRules parses an ordered rule table from YAML data:
//
//	rules:
//	  - name: eta
//	    pattern: '(?i)\beta\b:?\s*\d{1,2}:\d{2}'
//	    category: eta
//
// File order is preserved as rule priority order.
func LoadRules(data []byte) ([]Rule, error) {
	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	if len(rf.Rules) == 0 {
		return nil, fmt.Errorf("load rules: no rules listed")
	}

	rules := make([]Rule, 0, len(rf.Rules))
	for i, r := range rf.Rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("load rules: rule %d (%s): %w", i, r.Name, err)
		}
		rules = append(rules, Rule{
			Name:     r.Name,
			Pattern:  re,
			Category: Category(r.Category),
		})
	}
	return rules, nil
}

// LoadRulesFile loads an ordered rule table from a YAML file on disk.
func LoadRulesFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return LoadRules(data)
}
