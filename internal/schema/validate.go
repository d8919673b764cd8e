package schema

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/scanner"
	"go/token"
)

// Validate checks the definition can be turned into a union. All problems found are reported at once as
// scanner.ErrorList.
func (u *Union) Validate() error {
	var errs scanner.ErrorList

	if u.Package == "" {
		errs.Add(u.Pos, "package name is required")
	} else if !token.IsIdentifier(u.Package) {
		errs.Add(u.Pos, "invalid package name "+u.Package)
	}
	if !checkName(&errs, u.Pos, "union", u.Name) {
		errs.Sort()
		return errs.Err()
	}

	switch l := len(u.Alternatives); {
	case l == 0:
		errs.Add(u.Pos, "union "+u.Name+" has no alternatives")
	case l > MaxAlternatives:
		addf(&errs, u.Pos, "union %s has %d alternatives, at most %d are supported", u.Name, l, MaxAlternatives)
	}

	pkg := map[string]string{}
	methods := map[string]string{}
	for _, name := range u.packageIdentifiers() {
		pkg[name] = "union " + u.Name
	}
	for _, name := range u.methodIdentifiers() {
		methods[name] = "union " + u.Name
	}

	seen := map[string]token.Position{}
	for _, a := range u.Alternatives {
		if !checkName(&errs, a.Pos, "alternative", a.Name) {
			continue
		}
		if prev, ok := seen[a.Name]; ok {
			addf(&errs, a.Pos, "duplicate alternative %s, the previous one was at %s", a.Name, prev)
			continue
		}
		seen[a.Name] = a.Pos

		owner := "alternative " + a.Name
		for _, name := range u.altPackageIdentifiers(a) {
			if prev, ok := pkg[name]; ok {
				addf(&errs, a.Pos, "%s: generated identifier %s collides with the one of %s", owner, name, prev)
				continue
			}
			pkg[name] = owner
		}
		for _, name := range u.altMethodIdentifiers(a) {
			if prev, ok := methods[name]; ok {
				addf(&errs, a.Pos, "%s: generated method %s.%s collides with the one of %s", owner, u.Name, name, prev)
				continue
			}
			methods[name] = owner
		}

		expr, err := parser.ParseExpr(a.Type)
		if err != nil {
			addf(&errs, a.Pos, "alternative %s: invalid type %q: %s", a.Name, a.Type, err)
			continue
		}
		if ref := u.selfReference(expr); ref != "" {
			addf(&errs, a.Pos, "alternative %s: recursive alternatives are not supported, type refers to %s", a.Name, ref)
		}
	}

	errs.Sort()
	return errs.Err()
}

// checkName checks name is an exported identifier in canonical form
func checkName(errs *scanner.ErrorList, pos token.Position, what, name string) bool {
	if !token.IsIdentifier(name) {
		addf(errs, pos, "invalid %s name %q", what, name)
		return false
	}
	if public := gotifier.Public(name); public != name {
		addf(errs, pos, "invalid %s name %s, must be %s", what, name, public)
		return false
	}
	return true
}

func addf(errs *scanner.ErrorList, pos token.Position, format string, a ...interface{}) {
	errs.Add(pos, fmt.Sprintf(format, a...))
}

// selfReference returns name of the union or its definition if expr refers to any of them
func (u *Union) selfReference(expr ast.Expr) string {
	var res string
	ast.Inspect(expr, func(node ast.Node) bool {
		if res != "" {
			return false
		}
		switch v := node.(type) {
		case *ast.SelectorExpr:
			// qualified identifiers belong to other packages
			return false
		case *ast.Field:
			// field names are not type references
			if ref := u.selfReference(v.Type); ref != "" {
				res = ref
			}
			return false
		case *ast.Ident:
			if v.Name == u.Name || (u.DefinitionName != "" && v.Name == u.DefinitionName) {
				res = v.Name
			}
		}
		return true
	})
	return res
}

// renderType renders type expression and classifies it
func renderType(fset *token.FileSet, expr ast.Expr) (text string, isStruct bool, isUnit bool, err error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return "", false, false, err
	}

	if st, ok := expr.(*ast.StructType); ok {
		if st.Fields == nil || len(st.Fields.List) == 0 {
			return buf.String(), false, true, nil
		}
		return buf.String(), true, false, nil
	}

	return buf.String(), false, false, nil
}
