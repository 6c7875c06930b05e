package domain

import (
	"strings"
	"time"
)

// Parameter is one formal parameter of a method declaration.
type Parameter struct {
	Name string
	Type string
}

// EnclosingType is a type declaration that lexically contains a method.
type EnclosingType struct {
	Kind      string // "class"
	Name      string
	Modifiers []string
}

// String renders the type as "<modifiers> <kind> <name>".
func (t EnclosingType) String() string {
	return strings.TrimSpace(strings.Join(t.Modifiers, " ") + " " + t.Kind + " " + t.Name)
}

// Method is a method declaration found in a source file. Line and Column are
// 1-indexed and point at the start of the declaration, annotations included.
// SignatureLine is the line of the first token after the modifiers (type
// parameters or return type).
type Method struct {
	Name          string
	Line          int
	Column        int
	SignatureLine int
	Parameters    []Parameter
	ReturnType    string
	Modifiers     []string
	Enclosing     []EnclosingType // outer to inner
}

// SignatureStart returns SignatureLine, or Line when it is unknown.
func (m Method) SignatureStart() int {
	if m.SignatureLine > 0 {
		return m.SignatureLine
	}
	return m.Line
}

// Hierarchy joins the enclosing types with " > ".
func (m Method) Hierarchy() string {
	parts := make([]string, len(m.Enclosing))
	for i, t := range m.Enclosing {
		parts[i] = t.String()
	}
	return strings.Join(parts, " > ")
}

// IsVoid reports whether the method declares no return value.
func (m Method) IsVoid() bool {
	return m.ReturnType == "" || m.ReturnType == "void"
}

// IsGetter matches get*/is* methods with no parameters and a return value.
func (m Method) IsGetter() bool {
	return (strings.HasPrefix(m.Name, "get") || strings.HasPrefix(m.Name, "is")) &&
		len(m.Parameters) == 0 &&
		!m.IsVoid()
}

// IsSetter matches set* methods with one parameter and no return value.
func (m Method) IsSetter() bool {
	return strings.HasPrefix(m.Name, "set") &&
		len(m.Parameters) == 1 &&
		m.IsVoid()
}

// IsAccessor reports whether the method is a getter or a setter.
func (m Method) IsAccessor() bool {
	return m.IsGetter() || m.IsSetter()
}

type HistoryEntry struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	File        string    `json:"file,omitempty"`
	Method      string    `json:"method"`
	Hierarchy   string    `json:"hierarchy"`
	Description string    `json:"description"`
	Comment     string    `json:"comment"`
	Model       string    `json:"model"`
	CreatedAt   time.Time `json:"created_at"`
}

type FileReport struct {
	Path         string
	Methods      int
	Undocumented []Method
	Err          error
}

type ScanResult struct {
	Files        []FileReport
	Undocumented int
	Errors       []string
}
