package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/dave/jennifer/jen"
)

type kindsOptions struct {
	TypeName string
	Prefix   string
	VarName  string
}

// collectKinds returns the package name and the constants of the
// configured type declared in src, in declaration order. A constant
// without a type or value of its own inherits the type of the one before
// it, the way iota blocks are written.
func collectKinds(filename string, src []byte, opts kindsOptions) (string, []string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return "", nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	var kinds []string
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		current := ""
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			switch {
			case vs.Type != nil:
				current = typeName(vs.Type)
			case len(vs.Values) > 0:
				current = ""
			}
			if current != opts.TypeName {
				continue
			}
			for _, name := range vs.Names {
				if name.Name == "_" || !strings.HasPrefix(name.Name, opts.Prefix) {
					continue
				}
				kinds = append(kinds, name.Name)
			}
		}
	}
	return file.Name.Name, kinds, nil
}

func typeName(expr ast.Expr) string {
	if id, ok := expr.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

func generateKinds(pkg string, kinds []string, opts kindsOptions) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by cqgen kinds; DO NOT EDIT.")

	names := jen.Dict{}
	for _, kind := range kinds {
		names[jen.Id(kind)] = jen.Lit(strings.TrimPrefix(kind, opts.Prefix))
	}
	f.Var().Id(opts.VarName).Op("=").Map(jen.Id(opts.TypeName)).String().Values(names)
	return f
}
