package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"jdoc/internal/adapter/fs"
	"jdoc/internal/adapter/javaparser"
	"jdoc/internal/domain"
	"jdoc/internal/usecase"
)

var scanNoProgress bool

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "List methods that have no JavaDoc",
	Long: `Scan a file or directory and list every method without a JavaDoc
comment. Getters and setters are not reported. No file is changed.

Examples:
  jdoc scan                  # Scan current directory
  jdoc scan src/main/java    # Scan a specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanNoProgress, "no-progress", false, "do not draw a progress bar")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	cfg := GetConfig()

	walker := fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)
	scanUC := usecase.NewScanUseCase(javaparser.NewJavaParser(), walker, cfg.Scan.Workers)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	progressCallback := func(processed, total int, currentFile string) {
		if scanNoProgress {
			return
		}
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Scanning[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}

		bar.Set(processed)

		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			remaining := total - processed
			if rate > 0 {
				eta := time.Duration(float64(remaining)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Scanning[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}

	result, err := scanUC.Scan(cmd.Context(), path, progressCallback)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	printScanResult(cmd, path, result)
	return nil
}

func printScanResult(cmd *cobra.Command, root string, result *domain.ScanResult) {
	out := cmd.OutOrStdout()
	file := color.New(color.FgCyan, color.Bold)
	methods := 0

	for _, r := range result.Files {
		if r.Err != nil {
			continue
		}
		methods += r.Methods
		if len(r.Undocumented) == 0 {
			continue
		}

		rel, err := filepath.Rel(root, r.Path)
		if err != nil || rel == "." {
			rel = r.Path
		}
		file.Fprintln(out, rel)
		for _, m := range r.Undocumented {
			where := m.Hierarchy()
			if where == "" {
				where = "-"
			}
			fmt.Fprintf(out, "  %4d  %s  (%s)\n", m.Line, m.Name, where)
		}
	}

	fmt.Fprintf(out, "\nScan complete:\n")
	fmt.Fprintf(out, "  Files scanned:  %d\n", len(result.Files))
	fmt.Fprintf(out, "  Methods:        %d\n", methods)
	fmt.Fprintf(out, "  Undocumented:   %d\n", result.Undocumented)

	if len(result.Errors) > 0 {
		fmt.Fprintf(out, "\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  - %s\n", e)
		}
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", m, s)
}
