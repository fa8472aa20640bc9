package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
)

// Format is a template file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// fileSchema is the on-disk layout of a template file:
//
//	[[template]]
//	type = 50
//	name = "Station Identifier"
//	category = "entity"      # optional, derived from type when empty
//
//	  [[template.field]]
//	  id = 3
//	  name = "Station call letters"
//	  kind = "fixed"         # fixed | variable | loop
//	  length = 5
//	  default = ""
//
// Loops set kind = "loop", an optional repeat count and nested fields.
type fileSchema struct {
	Templates []fileTemplate `toml:"template" yaml:"templates"`
}

type fileTemplate struct {
	Type     int         `toml:"type" yaml:"type"`
	Name     string      `toml:"name" yaml:"name"`
	Category string      `toml:"category" yaml:"category"`
	Fields   []fileField `toml:"field" yaml:"fields"`
}

type fileField struct {
	ID      int         `toml:"id" yaml:"id"`
	Name    string      `toml:"name" yaml:"name"`
	Kind    string      `toml:"kind" yaml:"kind"`
	Length  int         `toml:"length" yaml:"length"`
	Default string      `toml:"default" yaml:"default"`
	Repeat  int         `toml:"repeat" yaml:"repeat"`
	Fields  []fileField `toml:"field" yaml:"fields"`
}

// FormatOf picks a format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: template file %s: unsupported extension", domain.ErrInvalidInput, path)
}

// LoadFile reads templates from a TOML or YAML file.
func LoadFile(path string) ([]domain.Template, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template file: %w", err)
	}
	templates, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("template file %s: %w", path, err)
	}
	return templates, nil
}

// Decode parses template definitions.
func Decode(format Format, data []byte) ([]domain.Template, error) {
	var fs fileSchema
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &fs); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &fs); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: template format %q", domain.ErrInvalidInput, format)
	}

	templates := make([]domain.Template, 0, len(fs.Templates))
	for _, ft := range fs.Templates {
		t, err := ft.template()
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// LoadFiles registers the templates of each file, later files overriding
// earlier ones and the built-in table.
func (r *Registry) LoadFiles(paths ...string) error {
	for _, path := range paths {
		templates, err := LoadFile(path)
		if err != nil {
			return err
		}
		for _, t := range templates {
			if err := r.Register(t); err != nil {
				return fmt.Errorf("template file %s: %w", path, err)
			}
		}
	}
	return nil
}

func (ft fileTemplate) template() (domain.Template, error) {
	gt := domain.GroupType(ft.Type)
	category := CategoryOf(gt)
	if ft.Category != "" {
		c, err := domain.ParseCategory(ft.Category)
		if err != nil {
			return domain.Template{}, fmt.Errorf("template %s: %w", gt, err)
		}
		category = c
	}

	fields, err := convertFields(ft.Fields)
	if err != nil {
		return domain.Template{}, fmt.Errorf("template %s: %w", gt, err)
	}
	return domain.Template{Type: gt, Name: ft.Name, Category: category, Fields: fields}, nil
}

func convertFields(in []fileField) ([]domain.FieldDescriptor, error) {
	out := make([]domain.FieldDescriptor, 0, len(in))
	for _, ff := range in {
		kind, err := domain.ParseFieldKind(ff.Kind)
		if err != nil {
			return nil, err
		}
		fd := domain.FieldDescriptor{
			ID:      ff.ID,
			Name:    ff.Name,
			Kind:    kind,
			Length:  ff.Length,
			Default: ff.Default,
		}
		if kind == domain.FieldLoop {
			fd.Repeat = ff.Repeat
			if fd.Fields, err = convertFields(ff.Fields); err != nil {
				return nil, err
			}
		}
		out = append(out, fd)
	}
	return out, nil
}
