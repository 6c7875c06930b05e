package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"jdoc/internal/adapter/fs"
	"jdoc/internal/domain"
	"jdoc/internal/port"
)

// ErrFileNotFound is returned when the file to document does not exist.
var ErrFileNotFound = errors.New("file not found")

// DocumentUseCase adds missing JavaDoc to source files.
type DocumentUseCase struct {
	parser    port.MethodParser
	generator port.DocGenerator
	ui        port.Interaction
	walker    port.FileWalker
	logger    *zap.Logger
}

// NewDocumentUseCase creates a new document use case. walker is only needed
// for directories and may be nil.
func NewDocumentUseCase(
	parser port.MethodParser,
	generator port.DocGenerator,
	ui port.Interaction,
	walker port.FileWalker,
	logger *zap.Logger,
) *DocumentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentUseCase{
		parser:    parser,
		generator: generator,
		ui:        ui,
		walker:    walker,
		logger:    logger,
	}
}

// DocumentResult contains the results of documenting one file.
type DocumentResult struct {
	Path       string
	Methods    int // non-accessor methods
	Documented int // already carried JavaDoc
	Inserted   int
	Failed     int
	Written    bool
}

// TreeResult contains the results of documenting a directory.
type TreeResult struct {
	Files  []*DocumentResult
	Errors []string
}

// DiscoverMethods parses content and drops getters and setters.
func DiscoverMethods(parser port.MethodParser, content []byte) ([]domain.Method, error) {
	methods, err := parser.Parse(content)
	if err != nil {
		return nil, err
	}

	kept := methods[:0:0]
	for _, m := range methods {
		if m.IsAccessor() {
			continue
		}
		kept = append(kept, m)
	}
	return kept, nil
}

// Document runs the documenting loop over a line buffer and returns the new
// buffer. Methods are handled bottom-up so an insertion never shifts a method
// that is still pending. A failed generation skips that method.
func (u *DocumentUseCase) Document(ctx context.Context, path string, lines []string) ([]string, *DocumentResult, error) {
	result := &DocumentResult{Path: path}

	methods, err := DiscoverMethods(u.parser, []byte(JoinLines(lines)))
	if err != nil {
		return nil, result, &ParseError{Path: path, Err: err}
	}
	result.Methods = len(methods)

	sort.SliceStable(methods, func(i, j int) bool {
		return methods[i].Line > methods[j].Line
	})

	for _, m := range methods {
		if err := ctx.Err(); err != nil {
			return nil, result, err
		}

		if HasJavadoc(lines, m.Line) {
			result.Documented++
			continue
		}

		code := ExtractMethodBody(lines, m.SignatureStart())
		hierarchy := m.Hierarchy()

		description, err := u.ui.Describe(ctx, port.DescribeRequest{
			Hierarchy: hierarchy,
			Name:      m.Name,
			Code:      code,
		})
		if err != nil {
			return nil, result, fmt.Errorf("failed to read description for %s: %w", m.Name, err)
		}

		comment, err := u.generator.Generate(ctx, port.DocRequest{
			File:        path,
			Method:      m.Name,
			Hierarchy:   hierarchy,
			Code:        code,
			Description: description,
		})
		if err != nil {
			u.logger.Warn("JavaDoc generation failed",
				zap.String("file", path),
				zap.String("method", m.Name),
				zap.Int("line", m.Line),
				zap.Error(err))
			u.ui.Failed(m.Name, err)
			result.Failed++
			continue
		}

		lines = InsertJavadoc(lines, insertionLine(lines, m), comment)
		result.Inserted++
		u.ui.Inserted(m.Name, comment)
	}

	return lines, result, nil
}

// DocumentFile documents a single file in place. The file is read once and
// written once at the end; nothing is written in dry-run mode or when no
// comment was added.
func (u *DocumentUseCase) DocumentFile(ctx context.Context, path string, dryRun bool) (*DocumentResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, result, err := u.Document(ctx, path, SplitLines(content))
	if err != nil {
		return result, err
	}

	if dryRun || result.Inserted == 0 {
		return result, nil
	}

	if err := fs.WriteFile(path, JoinLines(updated), info.Mode().Perm()); err != nil {
		return result, fmt.Errorf("failed to write %s: %w", path, err)
	}
	result.Written = true
	u.logger.Debug("File updated", zap.String("file", path), zap.Int("inserted", result.Inserted))

	return result, nil
}

// DocumentTree documents every file the walker finds under root, one after
// the other. A file that fails to parse is reported and skipped; aborting a
// prompt or canceling ctx stops the run.
func (u *DocumentUseCase) DocumentTree(ctx context.Context, root string, dryRun bool) (*TreeResult, error) {
	if u.walker == nil {
		return nil, fmt.Errorf("no file walker configured")
	}

	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	tree := &TreeResult{}
	for _, file := range files {
		result, err := u.DocumentFile(ctx, file.Path, dryRun)
		if err != nil {
			if ctx.Err() != nil || !isParseError(err) {
				return tree, err
			}
			tree.Errors = append(tree.Errors, err.Error())
			continue
		}
		tree.Files = append(tree.Files, result)
	}

	return tree, nil
}

// insertionLine picks the line InsertJavadoc anchors on. It is the signature
// line when only single-line annotations sit between it and the declaration
// start, so the annotation walk-up reaches the start. Modifier keywords or a
// wrapped annotation on lines of their own anchor on the declaration start.
func insertionLine(lines []string, m domain.Method) int {
	sig := m.SignatureStart()
	for i := m.Line - 1; i < sig-1 && i < len(lines); i++ {
		if !strings.HasPrefix(strings.TrimSpace(lines[i]), "@") {
			return m.Line
		}
	}
	return sig
}

// ParseError marks a failure to parse a source file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func isParseError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr)
}
