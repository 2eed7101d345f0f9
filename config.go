package funcfmt

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	v2 "gopkg.in/yaml.v2"
)

const defaultIterations = 100000

// Config describes a formatting job: one template rendered against a list of
// string records.
type Config struct {
	Template   string              `yaml:"Template"`
	Keys       []string            `yaml:"Keys"`
	Records    []map[string]string `yaml:"Records"`
	Iterations int                 `yaml:"Iterations"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	config := new(Config)
	if err := v2.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if config.Iterations < 0 {
		return nil, errors.Errorf("Iterations must not be negative, got %d", config.Iterations)
	}
	if config.Iterations == 0 {
		config.Iterations = defaultIterations
	}

	return config, nil
}

// FieldKeys returns Keys when set, otherwise every field name used by any
// record, sorted.
func (c *Config) FieldKeys() []string {
	if len(c.Keys) > 0 {
		return c.Keys
	}
	seen := make(map[string]struct{})
	var keys []string
	for _, rec := range c.Records {
		for k := range rec {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	return keys
}
