package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{DoNotReference: true, RequiredFromJSONSchemaTags: true}
	return r.Reflect(&Config{})
}

// Verify checks the config against limits and enums declared in the schema generated from Config.
// All violations are reported together.
func Verify(cfg *Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	var errs []error
	verifyValue(GenerateSchema(), doc, "", &errs)
	return errors.Join(errs...)
}

// verifyValue walks the schema along with the decoded config and collects violations
func verifyValue(schema *jsonschema.Schema, value any, path string, errs *[]error) {
	if schema == nil {
		return
	}

	switch v := value.(type) {
	case map[string]any:
		if schema.Properties == nil {
			return
		}
		for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			field, ok := v[pair.Key]
			if !ok {
				continue
			}
			verifyValue(pair.Value, field, joinPath(path, pair.Key), errs)
		}
		for _, name := range schema.Required {
			if s, ok := v[name].(string); ok && s == "" {
				*errs = append(*errs, fmt.Errorf("%s is required", joinPath(path, name)))
			}
		}
	case []any:
		for i, item := range v {
			verifyValue(schema.Items, item, fmt.Sprintf("%s[%d]", path, i), errs)
		}
	case float64:
		if limit, err := schema.Minimum.Float64(); schema.Minimum != "" && err == nil && v < limit {
			*errs = append(*errs, fmt.Errorf("%s must be >= %v, got %v", path, limit, v))
		}
		if limit, err := schema.Maximum.Float64(); schema.Maximum != "" && err == nil && v > limit {
			*errs = append(*errs, fmt.Errorf("%s must be <= %v, got %v", path, limit, v))
		}
	case string:
		if len(schema.Enum) > 0 && !slices.Contains(schema.Enum, any(v)) {
			*errs = append(*errs, fmt.Errorf("%s must be one of %v, got %q", path, schema.Enum, v))
		}
	}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return strings.Join([]string{parent, key}, ".")
}
