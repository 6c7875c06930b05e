package domain

import "testing"

func TestIsAccessor(t *testing.T) {
	one := []Parameter{{Name: "v", Type: "int"}}
	two := []Parameter{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}}

	tests := []struct {
		name   string
		method Method
		want   bool
	}{
		{"getter", Method{Name: "getName", ReturnType: "String"}, true},
		{"is getter", Method{Name: "isActive", ReturnType: "boolean"}, true},
		{"void getter", Method{Name: "getNothing", ReturnType: "void"}, false},
		{"getter with param", Method{Name: "getById", Parameters: one, ReturnType: "User"}, false},
		{"setter", Method{Name: "setName", Parameters: one, ReturnType: "void"}, true},
		{"setter without return type", Method{Name: "setName", Parameters: one}, true},
		{"fluent setter", Method{Name: "setName", Parameters: one, ReturnType: "Builder"}, false},
		{"setter two params", Method{Name: "setRange", Parameters: two, ReturnType: "void"}, false},
		{"setter no params", Method{Name: "setup", ReturnType: "void"}, false},
		{"regular", Method{Name: "process", Parameters: one, ReturnType: "void"}, false},
		// prefix match only, so these count as accessors
		{"prefix only is", Method{Name: "issue", ReturnType: "Ticket"}, true},
		{"prefix only set", Method{Name: "settle", Parameters: one, ReturnType: "void"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.method.IsAccessor(); got != tt.want {
				t.Errorf("IsAccessor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHierarchy(t *testing.T) {
	m := Method{
		Name: "run",
		Enclosing: []EnclosingType{
			{Kind: "class", Name: "Outer", Modifiers: []string{"public"}},
			{Kind: "class", Name: "Inner", Modifiers: []string{"private", "static"}},
			{Kind: "class", Name: "Local"},
		},
	}

	want := "public class Outer > private static class Inner > class Local"
	if got := m.Hierarchy(); got != want {
		t.Errorf("Hierarchy() = %q, want %q", got, want)
	}
}

func TestHierarchy_NoEnclosingType(t *testing.T) {
	m := Method{Name: "run"}
	if got := m.Hierarchy(); got != "" {
		t.Errorf("expected empty hierarchy, got %q", got)
	}
}

func TestSignatureStart(t *testing.T) {
	if got := (Method{Line: 3, SignatureLine: 5}).SignatureStart(); got != 5 {
		t.Errorf("SignatureStart() = %d, want 5", got)
	}
	if got := (Method{Line: 3}).SignatureStart(); got != 3 {
		t.Errorf("SignatureStart() without signature line = %d, want 3", got)
	}
}
