package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/go-union/internal/schema"
)

func TestDefaultOutput(t *testing.T) {
	require.Equal(t, "shapes/shape.go", defaultOutput(&schema.Union{
		File:   "shapes/shape.go",
		Origin: schema.OriginGo,
	}))
	require.Equal(t, "example/myunion.go", defaultOutput(&schema.Union{
		File:   "example/myunion.yaml",
		Origin: schema.OriginData,
	}))
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		origin  schema.Origin
		output  string
		prefix  string
		runtime string
		want    string
	}{
		{
			name:   "in place",
			file:   "example/shape.go",
			origin: schema.OriginGo,
			output: "example/shape.go",
			prefix: schema.DefaultPrefix,
			want:   "go-union shape.go",
		},
		{
			name:   "custom prefix",
			file:   "testdata/result.go",
			origin: schema.OriginGo,
			output: "testdata/result.go",
			prefix: "oneof",
			want:   "go-union -p oneof result.go",
		},
		{
			name:    "data next to output",
			file:    "example/myunion.yaml",
			origin:  schema.OriginData,
			output:  "example/myunion.go",
			prefix:  schema.DefaultPrefix,
			runtime: "example.com/rt",
			want:    "go-union --runtime example.com/rt myunion.yaml",
		},
		{
			name:   "data elsewhere",
			file:   "defs/myunion.json",
			origin: schema.OriginData,
			output: "example/unions.go",
			prefix: schema.DefaultPrefix,
			want:   "go-union -o unions.go ../defs/myunion.json",
		},
		{
			name:   "data elsewhere with default name",
			file:   "defs/myunion.json",
			origin: schema.OriginData,
			output: "example/myunion.go",
			prefix: schema.DefaultPrefix,
			want:   "go-union -o myunion.go ../defs/myunion.json",
		},
		{
			name:   "data next to output with other name",
			file:   "example/myunion.yaml",
			origin: schema.OriginData,
			output: "example/unions.go",
			prefix: schema.DefaultPrefix,
			want:   "go-union -o unions.go myunion.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &schema.Union{
				File:   tt.file,
				Origin: tt.origin,
			}
			require.Equal(t, tt.want, command(u, tt.output, tt.prefix, tt.runtime))
		})
	}
}

// the directive run from the output directory must point to the same output
func TestCommandRoundTrip(t *testing.T) {
	u := &schema.Union{
		File:   "../defs/myunion.json",
		Origin: schema.OriginData,
	}
	require.Equal(t, "go-union -o myunion.go ../defs/myunion.json", command(u, "myunion.go", schema.DefaultPrefix, ""))
}
