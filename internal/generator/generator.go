// Package generator renders Go source of tagged unions out of their definitions.
package generator

import (
	"fmt"
	"path"
	"path/filepath"
	"strconv"

	"github.com/sirkon/gosrcfmt"

	"github.com/sirkon/go-union/internal/schema"
)

// DefaultRuntime import path of the runtime package generated code relies on
const DefaultRuntime = "github.com/sirkon/go-union/union"

// Options of the generation
type Options struct {
	// Runtime import path of the runtime package, DefaultRuntime is used when empty
	Runtime string
	// Command go:generate command reproducing the output, the directive is omitted when empty
	Command string
}

// FormatError the rendered source cannot be formatted
type FormatError struct {
	Err    error
	Source []byte
}

func (e *FormatError) Error() string {
	return "format generated source: " + e.Err.Error()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Generate renders formatted Go source of the union
func Generate(u *schema.Union, opts Options) ([]byte, error) {
	if opts.Runtime == "" {
		opts.Runtime = DefaultRuntime
	}

	g := &generator{
		u:    u,
		opts: opts,
	}
	if err := g.header(); err != nil {
		return nil, err
	}
	g.tags()
	g.storage()
	g.lifecycle()
	g.accessors()
	for _, a := range u.Alternatives {
		g.alternative(a)
	}
	g.visitor()
	g.match()

	res, err := gosrcfmt.Source(g.r.Bytes(), "<output>")
	if err != nil {
		return nil, &FormatError{
			Err:    err,
			Source: g.r.Bytes(),
		}
	}

	return res, nil
}

type generator struct {
	u    *schema.Union
	opts Options
	r    Collector
}

func (g *generator) header() error {
	u := g.u

	if u.Origin == schema.OriginData {
		g.r.Doc(`Code generated by go-union from $0. DO NOT EDIT.`, filepath.Base(u.File))
		g.r.Newl()
	}
	g.r.Line(`package $0`, u.Package)
	g.r.Newl()
	if g.opts.Command != "" {
		g.r.Line(`//go:generate $0`, g.opts.Command)
		g.r.Newl()
	}

	g.r.Rawl(`import (`)
	var runtimeImported bool
	for _, imp := range u.Imports {
		if imp.Path == g.opts.Runtime {
			name := imp.Name
			if name == "" {
				name = path.Base(imp.Path)
			}
			if name != "union" {
				return fmt.Errorf("%s: runtime package %s must be imported as union, got %s", u.File, imp.Path, name)
			}
			runtimeImported = true
		}
		g.importLine(imp.Name, imp.Path)
	}
	if !runtimeImported {
		var name string
		if path.Base(g.opts.Runtime) != "union" {
			name = "union"
		}
		g.importLine(name, g.opts.Runtime)
	}
	g.r.Rawl(`)`)
	g.r.Newl()

	if u.Definition != "" {
		g.r.Rawl(u.Definition)
		g.r.Newl()
	}

	return nil
}

func (g *generator) importLine(name, importPath string) {
	if name != "" {
		g.r.Line("\t$0 $1", name, strconv.Quote(importPath))
		return
	}
	g.r.Line("\t$0", strconv.Quote(importPath))
}

func (g *generator) tags() {
	u := g.u

	g.r.Doc(`$0 discriminant of $1 alternatives`, u.TagType(), u.Name)
	g.r.Line(`type $0 uint8`, u.TagType())
	g.r.Newl()

	g.r.Doc(`$0 alternatives in declaration order`, u.Name)
	g.r.Rawl(`const (`)
	for i, a := range u.Alternatives {
		if i == 0 {
			g.r.Line("\t$0 $1 = iota", u.TagConst(a), u.TagType())
			continue
		}
		g.r.Line("\t$0", u.TagConst(a))
	}
	g.r.Rawl(`)`)
	g.r.Newl()

	g.r.Line(`const $0 = $1`, u.Count(), strconv.Itoa(len(u.Alternatives)))
	g.r.Newl()
}

func (g *generator) storage() {
	u := g.u

	g.r.Doc(`$0 tagged union, holds exactly one of its alternatives at a time`, u.Name)
	g.r.Line(`type $0 struct {`, u.Name)
	g.r.Line("\ttag $0", u.TagType())
	for _, a := range u.Alternatives {
		g.r.Line("\t$0 $1", a.Field(), u.Payload(a))
	}
	g.r.Rawl(`}`)
	g.r.Newl()

	for _, a := range u.Alternatives {
		if !a.Struct {
			continue
		}
		g.r.Doc(`$0 payload of $1 alternative of $2`, u.Payload(a), a.Name, u.Name)
		g.r.Line(`type $0 $1`, u.Payload(a), a.Type)
		g.r.Newl()
	}
}

func (g *generator) lifecycle() {
	u := g.u

	g.r.Doc(`New$0 creates $0 with alternative tag holding v. Panics if v is not of the payload type of tag.`, u.Name)
	g.r.Line(`func New$0(tag $1, v any) $0 {`, u.Name, u.TagType())
	g.r.Rawl("\tswitch tag {")
	for _, a := range u.Alternatives {
		g.r.Line("\tcase $0:", u.TagConst(a))
		if a.Unit {
			g.r.Line("\t\treturn New$0$1()", u.Name, a.Name)
			continue
		}
		g.r.Line("\t\treturn New$0$1(v.($2))", u.Name, a.Name, u.Payload(a))
	}
	g.r.Rawl("\t}")
	g.r.Rawl("\tpanic(union.UnknownTag(int(tag)))")
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`Clone returns a copy of u`)
	g.r.Line(`func (u *$0) Clone() $0 {`, u.Name)
	g.r.Rawl("\tswitch u.tag {")
	for _, a := range u.Alternatives {
		g.r.Line("\tcase $0:", u.TagConst(a))
		if a.Unit {
			g.r.Line("\t\treturn New$0$1()", u.Name, a.Name)
			continue
		}
		g.r.Line("\t\treturn New$0$1(u.$2)", u.Name, a.Name, a.Field())
	}
	g.r.Rawl("\t}")
	g.r.Rawl("\tpanic(union.UnknownTag(int(u.tag)))")
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`Assign replaces u with a copy of other`)
	g.r.Line(`func (u *$0) Assign(other *$0) {`, u.Name)
	g.r.Rawl("\tif u == other {")
	g.r.Rawl("\t\treturn")
	g.r.Rawl("\t}")
	g.r.Newl()
	g.r.Rawl("\tu.drop()")
	g.r.Rawl("\t*u = other.Clone()")
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`Move moves the payload of other into u. other keeps its alternative with the zero payload.`)
	g.r.Line(`func (u *$0) Move(other *$0) {`, u.Name)
	g.r.Rawl("\tif u == other {")
	g.r.Rawl("\t\treturn")
	g.r.Rawl("\t}")
	g.r.Newl()
	g.r.Rawl("\tu.drop()")
	g.r.Rawl("\t*u = other.Clone()")
	g.r.Rawl("\tother.drop()")
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`drop releases the payload of the active alternative, the tag stays the same`)
	g.r.Line(`func (u *$0) drop() {`, u.Name)
	g.r.Rawl("\tswitch u.tag {")
	for _, a := range u.Alternatives {
		g.r.Line("\tcase $0:", u.TagConst(a))
		g.r.Line("\t\tunion.Clear(&u.$0)", a.Field())
	}
	g.r.Rawl("\tdefault:")
	g.r.Rawl("\t\tpanic(union.UnknownTag(int(u.tag)))")
	g.r.Rawl("\t}")
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Line(`func (u *$0) tagIndex() int {`, u.Name)
	g.r.Rawl("\treturn int(u.tag)")
	g.r.Rawl(`}`)
	g.r.Newl()
}

func (g *generator) accessors() {
	u := g.u

	g.r.Doc(`Tag returns the active alternative`)
	g.r.Line(`func (u *$0) Tag() $1 {`, u.Name, u.TagType())
	g.r.Rawl("\treturn u.tag")
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`Holds checks if alternative tag is active`)
	g.r.Line(`func (u *$0) Holds(tag $1) bool {`, u.Name, u.TagType())
	g.r.Rawl("\treturn u.tag == tag")
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`Ptr returns a pointer to the payload of alternative tag, nil if tag is not active`)
	g.r.Line(`func (u *$0) Ptr(tag $1) any {`, u.Name, u.TagType())
	g.r.Rawl("\tif u.tag != tag {")
	g.r.Rawl("\t\treturn nil")
	g.r.Rawl("\t}")
	g.r.Newl()
	g.r.Rawl("\tswitch tag {")
	for _, a := range u.Alternatives {
		g.r.Line("\tcase $0:", u.TagConst(a))
		g.r.Line("\t\treturn &u.$0", a.Field())
	}
	g.r.Rawl("\t}")
	g.r.Rawl("\tpanic(union.UnknownTag(int(tag)))")
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`Get returns the payload of alternative tag. Panics if tag is not active.`)
	g.r.Line(`func (u *$0) Get(tag $1) any {`, u.Name, u.TagType())
	g.r.Rawl("\tif u.tag != tag {")
	g.r.Rawl("\t\tpanic(union.Mismatch(int(u.tag), int(tag)))")
	g.r.Rawl("\t}")
	g.r.Newl()
	g.r.Rawl("\tswitch tag {")
	for _, a := range u.Alternatives {
		g.r.Line("\tcase $0:", u.TagConst(a))
		g.r.Line("\t\treturn u.$0", a.Field())
	}
	g.r.Rawl("\t}")
	g.r.Rawl("\tpanic(union.UnknownTag(int(tag)))")
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`Set replaces the active payload with v as alternative tag and returns a pointer to the new payload.`)
	g.r.Doc(`Panics if v is not of the payload type of tag, u stays intact in this case.`)
	g.r.Line(`func (u *$0) Set(tag $1, v any) any {`, u.Name, u.TagType())
	g.r.Rawl("\tswitch tag {")
	for _, a := range u.Alternatives {
		g.r.Line("\tcase $0:", u.TagConst(a))
		if a.Unit {
			g.r.Line("\t\tu.Set$0()", a.Name)
			g.r.Line("\t\treturn &u.$0", a.Field())
			continue
		}
		g.r.Line("\t\treturn u.Set$0(v.($1))", a.Name, u.Payload(a))
	}
	g.r.Rawl("\t}")
	g.r.Rawl("\tpanic(union.UnknownTag(int(tag)))")
	g.r.Rawl(`}`)
	g.r.Newl()
}

func (g *generator) alternative(a schema.Alternative) {
	u := g.u
	payload := u.Payload(a)
	tag := u.TagConst(a)

	g.r.Doc(`New$0$1 creates $0 holding $1`, u.Name, a.Name)
	if a.Unit {
		g.r.Line(`func New$0$1() $0 {`, u.Name, a.Name)
		g.r.Line("\treturn $0{", u.Name)
		g.r.Line("\t\ttag: $0,", tag)
		g.r.Rawl("\t}")
	} else {
		g.r.Line(`func New$0$1(v $2) $0 {`, u.Name, a.Name, payload)
		g.r.Line("\treturn $0{", u.Name)
		g.r.Line("\t\ttag: $0,", tag)
		g.r.Line("\t\t$0: v,", a.Field())
		g.r.Rawl("\t}")
	}
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`Is$0 checks if $0 is active`, a.Name)
	g.r.Line(`func (u *$0) Is$1() bool {`, u.Name, a.Name)
	g.r.Line("\treturn u.tag == $0", tag)
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`$0 returns $0 payload. Panics if $0 is not active.`, a.Name)
	g.r.Line(`func (u *$0) $1() $2 {`, u.Name, a.Name, payload)
	g.r.Line("\tif u.tag != $0 {", tag)
	g.r.Line("\t\tpanic(union.Mismatch(int(u.tag), int($0)))", tag)
	g.r.Rawl("\t}")
	g.r.Newl()
	g.r.Line("\treturn u.$0", a.Field())
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`$0 returns a pointer to $1 payload, nil if $1 is not active`, a.Name+"Ptr", a.Name)
	g.r.Line(`func (u *$0) $1() *$2 {`, u.Name, a.Name+"Ptr", payload)
	g.r.Line("\tif u.tag != $0 {", tag)
	g.r.Rawl("\t\treturn nil")
	g.r.Rawl("\t}")
	g.r.Newl()
	g.r.Line("\treturn &u.$0", a.Field())
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`Take$0 moves $0 payload out leaving the zero value under the same tag. Panics if $0 is not active.`, a.Name)
	g.r.Line(`func (u *$0) Take$1() $2 {`, u.Name, a.Name, payload)
	g.r.Line("\tv := u.$0()", a.Name)
	g.r.Line("\tunion.Clear(&u.$0)", a.Field())
	g.r.Rawl("\treturn v")
	g.r.Rawl(`}`)
	g.r.Newl()

	if a.Unit {
		g.r.Doc(`Set$0 replaces the active payload with $0`, a.Name)
		g.r.Line(`func (u *$0) Set$1() {`, u.Name, a.Name)
		g.r.Rawl("\tu.drop()")
		g.r.Line("\tu.tag = $0", tag)
		g.r.Rawl(`}`)
	} else {
		g.r.Doc(`Set$0 replaces the active payload with $0 v and returns a pointer to it`, a.Name)
		g.r.Line(`func (u *$0) Set$1(v $2) *$2 {`, u.Name, a.Name, payload)
		g.r.Rawl("\tu.drop()")
		g.r.Line("\tu.tag = $0", tag)
		g.r.Line("\tu.$0 = v", a.Field())
		g.r.Line("\treturn &u.$0", a.Field())
		g.r.Rawl(`}`)
	}
	g.r.Newl()

	g.r.Doc(`$0 match clause for $1`, u.Case(a), a.Name)
	if a.Unit {
		g.r.Line(`func $0[R any](fn func() R) union.Clause[*$1, R] {`, u.Case(a), u.Name)
		g.r.Line("\treturn union.Case(int($0), func(u *$1) R {", tag, u.Name)
		g.r.Rawl("\t\treturn fn()")
	} else {
		g.r.Line(`func $0[R any](fn func(v $1) R) union.Clause[*$2, R] {`, u.Case(a), payload, u.Name)
		g.r.Line("\treturn union.Case(int($0), func(u *$1) R {", tag, u.Name)
		g.r.Line("\t\treturn fn(u.$0)", a.Field())
	}
	g.r.Rawl("\t})")
	g.r.Rawl(`}`)
	g.r.Newl()
}

func (g *generator) visitor() {
	u := g.u

	g.r.Doc(`$0 handles every alternative of $1`, u.Visitor(), u.Name)
	g.r.Line(`type $0[R any] interface {`, u.Visitor())
	for _, a := range u.Alternatives {
		if a.Unit {
			g.r.Line("\tVisit$0() R", a.Name)
			continue
		}
		g.r.Line("\tVisit$0(v *$1) R", a.Name, u.Payload(a))
	}
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`Visit$0 calls the method of v handling the active alternative of u`, u.Name)
	g.r.Line(`func Visit$0[R any](u *$0, v $1[R]) R {`, u.Name, u.Visitor())
	g.r.Rawl("\tswitch u.tag {")
	for _, a := range u.Alternatives {
		g.r.Line("\tcase $0:", u.TagConst(a))
		if a.Unit {
			g.r.Line("\t\treturn v.Visit$0()", a.Name)
			continue
		}
		g.r.Line("\t\treturn v.Visit$0(&u.$1)", a.Name, a.Field())
	}
	g.r.Rawl("\t}")
	g.r.Rawl("\tpanic(union.UnknownTag(int(u.tag)))")
	g.r.Rawl(`}`)
	g.r.Newl()
}

func (g *generator) match() {
	u := g.u

	g.r.Doc(`$0 match clause for alternatives without an explicit case`, u.Otherwise())
	g.r.Line(`func $0[R any](fn func(u *$1) R) union.Clause[*$1, R] {`, u.Otherwise(), u.Name)
	g.r.Rawl("\treturn union.Otherwise(fn)")
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`$0 composes clauses into a reusable matcher. Panics on duplicate cases, misplaced`, u.Matcher())
	g.r.Doc(`otherwise clause or alternatives left without a case when there is no otherwise clause.`)
	g.r.Line(`func $0[R any](clauses ...union.Clause[*$1, R]) *union.Matcher[*$1, R] {`, u.Matcher(), u.Name)
	g.r.Line("\treturn union.Compose($0, (*$1).tagIndex, clauses...)", u.Count(), u.Name)
	g.r.Rawl(`}`)
	g.r.Newl()

	g.r.Doc(`Match$0 matches u against clauses, see $1`, u.Name, u.Matcher())
	g.r.Line(`func Match$0[R any](u *$0, clauses ...union.Clause[*$0, R]) R {`, u.Name)
	g.r.Line("\treturn $0(clauses...).Match(u)", u.Matcher())
	g.r.Rawl(`}`)
}
