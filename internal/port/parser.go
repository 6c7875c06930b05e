package port

import "jdoc/internal/domain"

// MethodParser extracts method declarations from source text.
type MethodParser interface {
	// Parse returns every method declaration in file order.
	Parse(content []byte) ([]domain.Method, error)

	// Language returns the language this parser handles.
	Language() string
}
