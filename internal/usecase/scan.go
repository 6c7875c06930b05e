package usecase

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"jdoc/internal/adapter/fs"
	"jdoc/internal/domain"
	"jdoc/internal/port"
)

// ProgressFunc is called after each file with the number of files done.
type ProgressFunc func(processed, total int, currentFile string)

// ScanUseCase reports undocumented methods without changing any file.
type ScanUseCase struct {
	parser  port.MethodParser
	walker  port.FileWalker
	workers int
}

// NewScanUseCase creates a new scan use case. The parser must be safe for
// concurrent use when workers > 1.
func NewScanUseCase(parser port.MethodParser, walker port.FileWalker, workers int) *ScanUseCase {
	if workers <= 0 {
		workers = 1
	}
	return &ScanUseCase{
		parser:  parser,
		walker:  walker,
		workers: workers,
	}
}

// Scan parses every file under root. Files that cannot be read or parsed
// are listed in the result's Errors; only cancellation fails the scan.
func (u *ScanUseCase) Scan(ctx context.Context, root string, progress ProgressFunc) (*domain.ScanResult, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	reports := make([]domain.FileReport, len(files))

	var mu sync.Mutex
	processed := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			reports[i] = u.scanFile(file.Path)

			mu.Lock()
			processed++
			if progress != nil {
				progress(processed, len(files), file.Path)
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &domain.ScanResult{Files: reports}
	for _, r := range reports {
		if r.Err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", r.Path, r.Err))
			continue
		}
		result.Undocumented += len(r.Undocumented)
	}

	return result, nil
}

func (u *ScanUseCase) scanFile(path string) domain.FileReport {
	report := domain.FileReport{Path: path}

	content, err := fs.ReadFile(path)
	if err != nil {
		report.Err = fmt.Errorf("failed to read file: %w", err)
		return report
	}

	methods, err := DiscoverMethods(u.parser, []byte(content))
	if err != nil {
		report.Err = err
		return report
	}
	report.Methods = len(methods)

	lines := SplitLines(content)
	for _, m := range methods {
		if !HasJavadoc(lines, m.Line) {
			report.Undocumented = append(report.Undocumented, m)
		}
	}

	return report
}
