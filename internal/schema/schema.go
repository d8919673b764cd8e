// Package schema describes tagged union definitions and loads them from Go sources or YAML/JSON documents.
package schema

import (
	"go/token"

	"github.com/sirkon/gotify"
)

// MaxAlternatives the tag of a union is uint8
const MaxAlternatives = 256

// Origin kind of a definition source
type Origin int

const (
	// OriginGo definition is a union<Name> struct in a Go source file
	OriginGo Origin = iota
	// OriginData definition is a YAML or JSON document
	OriginData
)

// Import import statement carried into the generated file
type Import struct {
	Name string `yaml:"name" json:"name"`
	Path string `yaml:"path" json:"path"`
}

// Alternative one named typed member of a union
type Alternative struct {
	Name string
	// Type Go type expression of the payload as it should be rendered
	Type string
	// Struct payload is an anonymous struct with fields, it gets its own named type
	Struct bool
	// Unit payload is struct{}, alternative carries no data
	Unit bool
	Pos  token.Position
}

// Union tagged union definition
type Union struct {
	Package      string
	Name         string
	Imports      []Import
	Alternatives []Alternative

	// File path of the definition source
	File   string
	Origin Origin
	// Definition rendered union<Name> struct declaration of Go sources, empty for data documents
	Definition string
	// DefinitionName name of union<Name> struct
	DefinitionName string
	Pos            token.Position
}

var gotifier = gotify.New(nil)
