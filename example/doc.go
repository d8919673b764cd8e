// Package example holds unions generated by go-union out of myunion.yaml and shape.go.
package example
