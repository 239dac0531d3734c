// Package config provides infrastructure for loading column definitions
// and runtime configuration. This package handles YAML parsing, file I/O,
// schema checks and format version gating.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// SupportedDefinitionVersions is the range of definition format versions
// this build understands.
const SupportedDefinitionVersions = ">= 1.0.0, < 2.0.0"

//go:embed definition.schema.json
var definitionSchemaJSON []byte

const definitionSchemaURL = "definition.schema.json"

var compileDefinitionSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(definitionSchemaURL, bytes.NewReader(definitionSchemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add definition schema: %w", err)
	}
	return compiler.Compile(definitionSchemaURL)
})

// DefinitionError lists every structural problem found in a definition file.
type DefinitionError struct {
	Issues []string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("invalid column definition:\n  - %s", strings.Join(e.Issues, "\n  - "))
}

// DefinitionLoader handles loading column definitions from YAML files.
type DefinitionLoader struct {
	versions *semver.Constraints
}

// NewDefinitionLoader creates a new definition loader.
func NewDefinitionLoader() *DefinitionLoader {
	constraints, err := semver.NewConstraint(SupportedDefinitionVersions)
	if err != nil {
		panic(fmt.Sprintf("invalid supported version range %q: %v", SupportedDefinitionVersions, err))
	}
	return &DefinitionLoader{versions: constraints}
}

// LoadDefinition loads and checks a column definition from a YAML file.
func (l *DefinitionLoader) LoadDefinition(path string) (*ColumnDefinition, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open definition directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open definition: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadDefinitionFromReader(file)
}

// LoadDefinitionFromReader loads a column definition from an io.Reader.
//
// The document is checked against the embedded JSON Schema, its format
// version is matched against SupportedDefinitionVersions, and an optional
// profile model is compiled. Column parameter ranges are NOT checked here.
func (l *DefinitionLoader) LoadDefinitionFromReader(r io.Reader) (*ColumnDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}

	if err := validateDefinitionSchema(data); err != nil {
		return nil, err
	}

	var def ColumnDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to decode definition YAML: %w", err)
	}

	if err := l.checkVersion(def.Version); err != nil {
		return nil, err
	}

	if _, err := def.Options(nil); err != nil {
		return nil, &DefinitionError{Issues: []string{err.Error()}}
	}

	return &def, nil
}

func (l *DefinitionLoader) checkVersion(raw string) error {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return &DefinitionError{Issues: []string{fmt.Sprintf("version %q is not a semantic version", raw)}}
	}
	if !l.versions.Check(v) {
		return &DefinitionError{Issues: []string{
			fmt.Sprintf("version %s is not supported (supported: %s)", v, SupportedDefinitionVersions),
		}}
	}
	return nil
}

func validateDefinitionSchema(data []byte) error {
	schema, err := compileDefinitionSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("failed to decode definition YAML: %w", err)
	}

	// jsonschema/v5 expects numbers as json.Number
	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode definition YAML: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &DefinitionError{Issues: collectSchemaIssues(validationErr)}
		}
		return fmt.Errorf("definition validation failed: %w", err)
	}
	return nil
}

// collectSchemaIssues flattens a JSON Schema error tree into leaf messages.
func collectSchemaIssues(err *jsonschema.ValidationError) []string {
	var issues []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			issues = append(issues, fmt.Sprintf("%s: %s", location, e.Message))
			return
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	return issues
}
