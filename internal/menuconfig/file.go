// Package menuconfig turns a menu file into context menu items. Files are
// YAML or HCL, validated against an embedded JSON schema. Item visibility
// and enablement may be expressions evaluated per cell.
package menuconfig

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

// File is a decoded menu file.
type File struct {
	Items []ItemSpec `yaml:"items" json:"items" hcl:"item,block"`
}

// ItemSpec is one configured menu item.
type ItemSpec struct {
	Label     string `yaml:"label" json:"label" hcl:"label,label"`
	Group     string `yaml:"group" json:"group,omitempty" hcl:"group,optional"`
	Action    string `yaml:"action" json:"action" hcl:"action"`
	Shown     string `yaml:"shown" json:"shown,omitempty" hcl:"shown,optional"`
	Active    string `yaml:"active" json:"active,omitempty" hcl:"active,optional"`
	LeaveOpen bool   `yaml:"leaveOpen" json:"leaveOpen,omitempty" hcl:"leave_open,optional"`
}

// SchemaError lists every schema violation of a menu file.
type SchemaError struct {
	Path     string
	Problems []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: invalid menu file: %s", e.Path, strings.Join(e.Problems, "; "))
}

// Load reads and validates a menu file. The format follows the extension:
// .hcl is HCL, anything else is YAML.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return ParseHCL(path, data)
	}
	return ParseYAML(path, data)
}

// ParseYAML validates data against the schema before decoding it, so
// unknown keys are rejected.
func ParseYAML(name string, data []byte) (*File, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: parse yaml: %w", name, err)
	}
	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: convert yaml: %w", name, err)
	}
	if err := validate(name, doc); err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: decode yaml: %w", name, err)
	}
	return &f, nil
}

// ParseHCL decodes item blocks:
//
//	item "Copy cell" {
//	  group  = "Clipboard"
//	  action = "copy-cell"
//	}
func ParseHCL(name string, data []byte) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", name, diags)
	}
	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}
	if f.Items == nil {
		f.Items = []ItemSpec{}
	}
	doc, err := json.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("%s: convert hcl: %w", name, err)
	}
	if err := validate(name, doc); err != nil {
		return nil, err
	}
	return &f, nil
}

func validate(name string, doc []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%s: schema validate: %w", name, err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return &SchemaError{Path: name, Problems: problems}
}
