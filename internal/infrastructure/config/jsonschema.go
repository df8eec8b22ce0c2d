package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/bnema/duskmode/internal/domain/entity"
)

// SchemaFileName is written next to config.toml for editor completion.
const SchemaFileName = "config.schema.json"

// GenerateSchema returns the JSON schema of config.toml, keyed on TOML names.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{FieldNameTag: "toml", DoNotReference: true}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/duskmode/config.schema.json"
	schema.Title = "duskmode configuration"
	schema.Description = "Configuration of the duskmode hub, agent and editor CLI"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config schema: %w", err)
	}
	return data, nil
}

// SettingsSchema describes the documents kept in the settings store.
type SettingsSchema struct {
	Global *jsonschema.Schema `json:"global"`
	Site   *jsonschema.Schema `json:"site"`
}

// GenerateSettingsSchema returns the JSON schemas of the global settings
// document and of a site override, keyed on their stored JSON names.
func GenerateSettingsSchema() ([]byte, error) {
	r := &jsonschema.Reflector{DoNotReference: true}
	out := SettingsSchema{
		Global: r.Reflect(&entity.GlobalSettings{}),
		Site:   r.Reflect(&entity.SiteOverride{}),
	}
	out.Global.Title = "duskmode global settings"
	out.Site.Title = "duskmode site override"

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes the config schema into dir and returns its path.
func GenerateSchemaFile(dir string) (string, error) {
	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, SchemaFileName)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}
