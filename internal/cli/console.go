package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"jdoc/internal/adapter/highlight"
	"jdoc/internal/adapter/prompt"
	"jdoc/internal/port"
)

const separator = "\n ------- ================== ------- \n"

// Console is the terminal side of the documenting loop.
type Console struct {
	out         io.Writer
	prompter    prompt.Prompter
	highlighter *highlight.Highlighter

	notice *color.Color
	ok     *color.Color
	fail   *color.Color
}

var _ port.Interaction = (*Console)(nil)

// NewConsole creates a console writing to out. With useColor false neither
// messages nor code are colored.
func NewConsole(out io.Writer, p prompt.Prompter, h *highlight.Highlighter, useColor bool) *Console {
	c := &Console{
		out:         out,
		prompter:    p,
		highlighter: h,
		notice:      color.New(color.FgYellow),
		ok:          color.New(color.FgGreen),
		fail:        color.New(color.FgRed),
	}
	if !useColor {
		c.notice.DisableColor()
		c.ok.DisableColor()
		c.fail.DisableColor()
	}
	return c
}

// Describe shows the undocumented method and asks for a description.
func (c *Console) Describe(ctx context.Context, req port.DescribeRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.notice.Fprintf(c.out, "\nNo JavaDoc found for method '%s' (%s).\n", req.Name, req.Hierarchy)
	c.code(req.Code)

	return c.prompter.Ask(fmt.Sprintf("Please provide a brief description for the method '%s': ", req.Name))
}

// Inserted echoes the comment that was added.
func (c *Console) Inserted(name, comment string) {
	c.ok.Fprintf(c.out, "JavaDoc added for method '%s'.\n", name)
	c.code(comment)
}

// Failed reports a skipped method.
func (c *Console) Failed(name string, err error) {
	c.fail.Fprintf(c.out, "Error generating JavaDoc: %v\n", err)
	c.fail.Fprintf(c.out, "Failed to generate JavaDoc for method '%s'.\n", name)
}

func (c *Console) code(src string) {
	fmt.Fprintln(c.out, separator)
	if err := c.highlighter.Write(c.out, src); err != nil {
		fmt.Fprintln(c.out, src)
	}
	fmt.Fprintln(c.out, separator)
}
