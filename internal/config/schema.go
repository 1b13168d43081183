package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const schemaURL = "oakbuffs://settings.schema.json"

// logLevels are the accepted log_level values.
var logLevels = []string{"debug", "info", "warn", "error"}

// Schema returns the JSON schema of the settings document, built from the
// declared options. It checks keys and types; ranges are left to Clamp.
func Schema() map[string]any {
	sections := map[string]map[string]any{}
	for _, o := range declarations {
		props, ok := sections[o.Section]
		if !ok {
			props = map[string]any{}
			sections[o.Section] = props
		}
		typ := "integer"
		if o.Kind == KindBool {
			typ = "boolean"
		}
		props[o.Key] = map[string]any{
			"type":        typ,
			"description": o.Label,
		}
	}

	top := map[string]any{
		"log_level": map[string]any{
			"type": "string",
			"enum": logLevels,
		},
	}
	for name, props := range sections {
		top[name] = map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           props,
		}
	}

	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"additionalProperties": false,
		"properties":           top,
	}
}

// compileSchema compiles Schema with jsonschema.
func compileSchema() (*jsonschema.Schema, error) {
	raw, err := json.Marshal(Schema())
	if err != nil {
		return nil, fmt.Errorf("encoding settings schema: %w", err)
	}
	sch, err := jsonschema.CompileString(schemaURL, string(raw))
	if err != nil {
		return nil, fmt.Errorf("compiling settings schema: %w", err)
	}
	return sch, nil
}

// Validate checks a raw YAML settings document against Schema.
func Validate(data []byte) error {
	sch, err := compileSchema()
	if err != nil {
		return err
	}
	doc, err := yamlToJSONValue(data)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// yamlToJSONValue decodes YAML into the value shapes encoding/json produces,
// which is what jsonschema validates.
func yamlToJSONValue(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting settings: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("converting settings: %w", err)
	}
	return out, nil
}
