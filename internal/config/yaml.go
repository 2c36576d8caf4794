package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	m "runnergen.dev/pkg/runnergen/internal/model"
	"runnergen.dev/pkg/runnergen/internal/runerr"
)

// symbolPattern matches Ruby-style symbols such as :unity or :cexception.
var symbolPattern = regexp.MustCompile(`^:[A-Za-z_]\w*$`)

// LoadSection reads a YAML configuration file and returns its unity section,
// or its cmock section when there is no unity section.
func LoadSection(path string) (map[string]any, error) {
	// #nosec G304 - path is the configuration file named by the user
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, runerr.Wrap(runerr.Config, path, "read configuration", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, runerr.Wrap(runerr.Config, path, "parse configuration", err)
	}

	doc = normalizeMap(doc)

	for _, name := range sectionNames {
		if section, ok := doc[name].(map[string]any); ok {
			return section, nil
		}
	}

	return nil, runerr.New(runerr.MissingSection, path, "no unity or cmock section found")
}

// normalizeMap strips the leading colon of symbol keys and values and
// flattens nested lists.
func normalizeMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))

	for key, value := range in {
		out[unsymbol(key)] = normalizeValue(value)
	}

	return out
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case string:
		return unsymbol(v)
	case map[string]any:
		return normalizeMap(v)
	case []any:
		return flatten(v)
	default:
		return v
	}
}

func flatten(list []any) []any {
	out := make([]any, 0, len(list))

	for _, item := range list {
		if nested, ok := item.([]any); ok {
			out = append(out, flatten(nested)...)
			continue
		}

		if item == nil {
			continue
		}

		out = append(out, normalizeValue(item))
	}

	return out
}

func unsymbol(s string) string {
	if symbolPattern.MatchString(s) {
		return s[1:]
	}

	return s
}

// Document is the layout of the project configuration file written by init.
type Document struct {
	Version int         `yaml:"version"`
	Log     LogSettings `yaml:"log"`
	Unity   m.Options   `yaml:"unity"`
}

// LogSettings are the logging keys of the project configuration file.
type LogSettings struct {
	Filename   string `yaml:"filename"`
	Level      string `yaml:"level"`
	Verbose    bool   `yaml:"verbose"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// MarshalDocument renders doc as YAML.
func MarshalDocument(doc Document) ([]byte, error) {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal configuration: %w", err)
	}

	return out, nil
}
