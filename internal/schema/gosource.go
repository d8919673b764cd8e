package schema

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/scanner"
	"go/token"
	"strconv"
	"strings"
)

// DefaultPrefix prefix of union definition structs in Go sources
const DefaultPrefix = "union"

// FromGo looks for the only top level `<prefix><Name>` struct in the Go source and builds a union definition
// out of it: every field is an alternative named after the field.
func FromGo(fileName string, src []byte, prefix string) (*Union, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, fileName, src, parser.AllErrors|parser.ParseComments)
	if err != nil {
		return nil, err
	}

	u := &Union{
		Package: file.Name.Name,
		File:    fileName,
		Origin:  OriginGo,
	}
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			return nil, err
		}
		imp := Import{Path: path}
		if spec.Name != nil {
			imp.Name = spec.Name.Name
		}
		u.Imports = append(u.Imports, imp)
	}

	var errs scanner.ErrorList
	var def *ast.TypeSpec
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			if _, ok := ts.Type.(*ast.StructType); !ok {
				continue
			}
			if !strings.HasPrefix(ts.Name.Name, prefix) || len(ts.Name.Name) == len(prefix) {
				continue
			}
			if def != nil {
				addf(
					&errs,
					fset.Position(ts.Pos()),
					"duplicate union definition in this file, the previous one was %s",
					def.Name.Name,
				)
				continue
			}
			def = ts
		}
	}
	if def == nil {
		errs.Add(token.Position{Filename: fileName, Line: 1, Column: 1}, "no "+prefix+"<Name> union definitions found")
	}
	if len(errs) > 0 {
		return nil, errs.Err()
	}

	u.DefinitionName = def.Name.Name
	u.Name = def.Name.Name[len(prefix):]
	u.Pos = fset.Position(def.Name.Pos())

	var definition bytes.Buffer
	definition.WriteString("type ")
	if err := printer.Fprint(&definition, fset, def); err != nil {
		return nil, err
	}
	u.Definition = definition.String()

	for _, f := range def.Type.(*ast.StructType).Fields.List {
		if len(f.Names) == 0 {
			errs.Add(fset.Position(f.Pos()), "embedding is not allowed for unions")
			continue
		}

		text, isStruct, isUnit, err := renderType(fset, f.Type)
		if err != nil {
			addf(&errs, fset.Position(f.Type.Pos()), "render type: %s", err)
			continue
		}
		for _, name := range f.Names {
			u.Alternatives = append(u.Alternatives, Alternative{
				Name:   name.Name,
				Type:   text,
				Struct: isStruct,
				Unit:   isUnit,
				Pos:    fset.Position(name.NamePos),
			})
		}
	}
	if len(errs) > 0 {
		return nil, errs.Err()
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}
