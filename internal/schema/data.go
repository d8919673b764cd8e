package schema

import (
	"fmt"
	"go/parser"
	"go/scanner"
	"go/token"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// document union definition as it is written in YAML or JSON
type document struct {
	Package      string        `yaml:"package" json:"package"`
	Name         string        `yaml:"name" json:"name"`
	Imports      []Import      `yaml:"imports" json:"imports"`
	Alternatives []alternative `yaml:"alternatives" json:"alternatives"`
}

type alternative struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`

	line   int
	column int
}

// UnmarshalYAML remembers where the alternative is defined
func (a *alternative) UnmarshalYAML(value *yaml.Node) error {
	type plain alternative
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}

	*a = alternative(p)
	a.line = value.Line
	a.column = value.Column
	return nil
}

// FromYAML builds union definition out of YAML document
func FromYAML(fileName string, data []byte) (*Union, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", fileName, err)
	}

	return doc.union(fileName)
}

// FromJSON builds union definition out of JSON document
func FromJSON(fileName string, data []byte) (*Union, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", fileName, err)
	}

	return doc.union(fileName)
}

func (d *document) union(fileName string) (*Union, error) {
	u := &Union{
		Package: d.Package,
		Name:    gotifier.Public(d.Name),
		Imports: d.Imports,
		File:    fileName,
		Origin:  OriginData,
		Pos:     token.Position{Filename: fileName},
	}

	var errs scanner.ErrorList
	if strings.TrimSpace(d.Name) == "" {
		errs.Add(u.Pos, "union name is required")
	}
	for i, imp := range d.Imports {
		if imp.Path == "" {
			addf(&errs, u.Pos, "imports[%d]: path is required", i)
		}
	}

	for i, a := range d.Alternatives {
		pos := token.Position{
			Filename: fileName,
			Line:     a.line,
			Column:   a.column,
		}
		if strings.TrimSpace(a.Name) == "" {
			addf(&errs, pos, "alternatives[%d]: name is required", i)
			continue
		}

		src := strings.TrimSpace(a.Type)
		if src == "" {
			src = "struct{}"
		}
		fset := token.NewFileSet()
		expr, err := parser.ParseExprFrom(fset, "", src, 0)
		if err != nil {
			addf(&errs, pos, "alternatives[%d]: invalid type %q: %s", i, a.Type, err)
			continue
		}
		text, isStruct, isUnit, err := renderType(fset, expr)
		if err != nil {
			addf(&errs, pos, "alternatives[%d]: render type: %s", i, err)
			continue
		}

		u.Alternatives = append(u.Alternatives, Alternative{
			Name:   gotifier.Public(a.Name),
			Type:   text,
			Struct: isStruct,
			Unit:   isUnit,
			Pos:    pos,
		})
	}
	if len(errs) > 0 {
		errs.Sort()
		return nil, errs.Err()
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}
