package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/scanner"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/sirkon/message"

	"github.com/sirkon/go-union/internal/generator"
	"github.com/sirkon/go-union/internal/schema"
)

func main() {
	var args struct {
		Output  string `arg:"-o" help:"output file, a Go definition is rewritten in place and a data definition goes to the .go file next to it by default"`
		Prefix  string `arg:"-p" help:"prefix of union definition structs in Go sources"`
		Runtime string `arg:"--runtime" help:"import path of the runtime package"`
		FILE    string `arg:"positional,required" help:"union definition file: .go, .yaml, .yml or .json"`
	}
	args.Prefix = schema.DefaultPrefix
	p := arg.MustParse(&args)

	if args.Prefix == "" {
		p.Fail("prefix must not be empty")
	}

	u, err := schema.Load(args.FILE, args.Prefix)
	if err != nil {
		var lst scanner.ErrorList
		if !errors.As(err, &lst) {
			message.Fatal(err)
		}
		for _, l := range lst {
			message.Error(l)
		}
		os.Exit(1)
	}

	output := args.Output
	if output == "" {
		output = defaultOutput(u)
	}
	if u.Origin == schema.OriginGo && filepath.Clean(output) != filepath.Clean(args.FILE) {
		message.Fatalf("%s: Go definition is rewritten in place, output %s is not allowed", args.FILE, output)
	}

	res, err := generator.Generate(u, generator.Options{
		Runtime: args.Runtime,
		Command: command(u, output, args.Prefix, args.Runtime),
	})
	if err != nil {
		var fe *generator.FormatError
		if !errors.As(err, &fe) {
			message.Fatal(err)
		}

		var buf bytes.Buffer
		buf.WriteString(fe.Error())
		buf.WriteByte('\n')
		lines := strings.Split(string(fe.Source), "\n")
		errFmt := fmt.Sprintf("%%0%dd", len(strconv.Itoa(len(lines)+1)))
		for i, l := range lines {
			_, _ = fmt.Fprintf(&buf, errFmt, i+1)
			buf.WriteByte(' ')
			buf.WriteString(l)
			buf.WriteByte('\n')
		}
		message.Fatal(buf.String())
	}

	if err := os.WriteFile(output, res, 0644); err != nil {
		message.Fatal(err)
	}
}

func defaultOutput(u *schema.Union) string {
	if u.Origin == schema.OriginGo {
		return u.File
	}

	return strings.TrimSuffix(u.File, filepath.Ext(u.File)) + ".go"
}

// command go:generate command reproducing the output from the directory of the output file
func command(u *schema.Union, output, prefix, runtime string) string {
	parts := []string{"go-union"}
	if prefix != schema.DefaultPrefix {
		parts = append(parts, "-p", prefix)
	}
	if runtime != "" {
		parts = append(parts, "--runtime", runtime)
	}
	if filepath.Clean(output) != filepath.Clean(defaultOutput(u)) {
		parts = append(parts, "-o", filepath.Base(output))
	}

	name := filepath.Base(u.File)
	if rel, err := filepath.Rel(filepath.Dir(output), u.File); err == nil {
		name = filepath.ToSlash(rel)
	}

	return strings.Join(append(parts, name), " ")
}
