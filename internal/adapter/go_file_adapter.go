package adapter

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// GoFileAdapter encapsulates Go-specific parsing so project resolution can
// classify source files without depending on go/parser directly.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and optional source bytes.
	Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// PackageName returns the package clause of a Go source file.
	PackageName(ctx context.Context, filename string, src []byte) (string, error)

	// IsBuildIgnored reports whether the file carries an `ignore` build constraint.
	IsBuildIgnored(ctx context.Context, filename string, src []byte) bool
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return parser.ParseFile(fileSet, filename, src, parser.ParseComments)
}

// PackageName parses only the package clause of the file.
func (a *LocalGoFileAdapter) PackageName(ctx context.Context, filename string, src []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	file, err := parser.ParseFile(token.NewFileSet(), filename, src, parser.PackageClauseOnly)
	if err != nil {
		return "", err
	}

	return file.Name.Name, nil
}

// IsBuildIgnored checks the leading //go:build line for the `ignore` tag.
func (a *LocalGoFileAdapter) IsBuildIgnored(ctx context.Context, filename string, src []byte) bool {
	if ctx.Err() != nil {
		return false
	}

	file, err := parser.ParseFile(token.NewFileSet(), filename, src, parser.PackageClauseOnly|parser.ParseComments)
	if err != nil {
		return false
	}

	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			break
		}

		for _, comment := range group.List {
			constraint, ok := strings.CutPrefix(comment.Text, "//go:build ")
			if !ok {
				continue
			}

			for _, field := range strings.Fields(constraint) {
				if field == "ignore" {
					return true
				}
			}
		}
	}

	return false
}
