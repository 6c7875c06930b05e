package port

import "context"

// DescribeRequest is what the user sees before describing a method.
type DescribeRequest struct {
	Hierarchy string
	Name      string
	Code      string
}

// Interaction is the human side of the documenting loop.
type Interaction interface {
	// Describe shows the method and blocks until the user typed a
	// description. The raw input is returned unvalidated.
	Describe(ctx context.Context, req DescribeRequest) (string, error)

	// Inserted reports a comment that was added above a method.
	Inserted(name, comment string)

	// Failed reports a method that was skipped because generation failed.
	Failed(name string, err error)
}
