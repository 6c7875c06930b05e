package javaparser

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"jdoc/internal/domain"
)

// ErrSyntax is matched by every SyntaxError.
var ErrSyntax = errors.New("syntax error")

// SyntaxError locates the first ERROR or MISSING node of a parse.
type SyntaxError struct {
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d", e.Line, e.Column)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// JavaParser parses Java source code into method declarations.
type JavaParser struct{}

// NewJavaParser creates a new Java parser.
func NewJavaParser() *JavaParser {
	return &JavaParser{}
}

// Language returns the language this parser handles.
func (p *JavaParser) Language() string {
	return "java"
}

// Parse parses Java source code and returns its methods in file order.
func (p *JavaParser) Parse(content []byte) ([]domain.Method, error) {
	return p.ParseCtx(context.Background(), content)
}

// ParseCtx is Parse with a cancellable context. Every call owns its own
// tree-sitter parser, so a JavaParser may be shared between goroutines.
func (p *JavaParser) ParseCtx(ctx context.Context, content []byte) ([]domain.Method, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("java parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		if serr := firstSyntaxError(root); serr != nil {
			return nil, serr
		}
		return nil, &SyntaxError{Line: 1, Column: 1}
	}

	var methods []domain.Method

	var walk func(n *sitter.Node, enclosing []domain.EnclosingType)
	walk = func(n *sitter.Node, enclosing []domain.EnclosingType) {
		switch n.Type() {
		case "class_declaration":
			enclosing = append(enclosing[:len(enclosing):len(enclosing)], p.extractClass(n, content))
		case "method_declaration":
			methods = append(methods, p.extractMethod(n, content, enclosing))
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i), enclosing)
		}
	}
	walk(root, nil)

	return methods, nil
}

// extractClass builds the enclosing type entry for a class declaration.
func (p *JavaParser) extractClass(n *sitter.Node, src []byte) domain.EnclosingType {
	name := ""
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		name = nameNode.Content(src)
	}
	return domain.EnclosingType{
		Kind:      "class",
		Name:      name,
		Modifiers: modifierKeywords(n, src),
	}
}

// extractMethod extracts a method declaration.
func (p *JavaParser) extractMethod(n *sitter.Node, src []byte, enclosing []domain.EnclosingType) domain.Method {
	start := n.StartPoint()

	name := ""
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		name = nameNode.Content(src)
	}

	returnType := ""
	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		returnType = typeNode.Content(src)
	}

	var params []domain.Parameter
	if paramsNode := n.ChildByFieldName("parameters"); paramsNode != nil {
		params = extractParameters(paramsNode, src)
	}

	return domain.Method{
		Name:          name,
		Line:          int(start.Row) + 1,
		Column:        int(start.Column) + 1,
		SignatureLine: signatureLine(n),
		Parameters:    params,
		ReturnType:    returnType,
		Modifiers:     modifierKeywords(n, src),
		Enclosing:     append([]domain.EnclosingType(nil), enclosing...),
	}
}

// signatureLine is the 1-indexed line of the first named child after the
// modifier list.
func signatureLine(n *sitter.Node) int {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "modifiers", "line_comment", "block_comment", "comment":
			continue
		}
		return int(c.StartPoint().Row) + 1
	}
	return int(n.StartPoint().Row) + 1
}

// extractParameters reads formal and varargs parameters. Receiver
// parameters are not counted.
func extractParameters(n *sitter.Node, src []byte) []domain.Parameter {
	var params []domain.Parameter
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "formal_parameter":
			param := domain.Parameter{}
			if nameNode := c.ChildByFieldName("name"); nameNode != nil {
				param.Name = nameNode.Content(src)
			}
			if typeNode := c.ChildByFieldName("type"); typeNode != nil {
				param.Type = typeNode.Content(src)
			}
			params = append(params, param)

		case "spread_parameter":
			param := domain.Parameter{}
			for j := 0; j < int(c.NamedChildCount()); j++ {
				part := c.NamedChild(j)
				switch part.Type() {
				case "modifiers":
				case "variable_declarator":
					if nameNode := part.ChildByFieldName("name"); nameNode != nil {
						param.Name = nameNode.Content(src)
					}
				default:
					if param.Type == "" {
						param.Type = part.Content(src) + "..."
					}
				}
			}
			params = append(params, param)
		}
	}
	return params
}

// modifierKeywords returns the keyword modifiers of a declaration in source
// order. Annotations and comments inside the modifier list are dropped.
func modifierKeywords(n *sitter.Node, src []byte) []string {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() != "modifiers" {
			continue
		}
		var mods []string
		for j := 0; j < int(c.ChildCount()); j++ {
			m := c.Child(j)
			switch m.Type() {
			case "marker_annotation", "annotation", "comment", "line_comment", "block_comment":
				continue
			}
			mods = append(mods, m.Content(src))
		}
		return mods
	}
	return nil
}

func firstSyntaxError(n *sitter.Node) *SyntaxError {
	if n.Type() == "ERROR" || n.IsMissing() {
		p := n.StartPoint()
		return &SyntaxError{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c.HasError() || c.IsMissing() {
			if err := firstSyntaxError(c); err != nil {
				return err
			}
		}
	}
	return nil
}
