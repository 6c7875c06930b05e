package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"jdoc/internal/adapter/fs"
	"jdoc/internal/adapter/highlight"
	"jdoc/internal/adapter/javaparser"
	"jdoc/internal/adapter/prompt"
	"jdoc/internal/port"
	"jdoc/internal/usecase"
)

var (
	docDryRun  bool
	docNoColor bool
)

func init() {
	rootCmd.Flags().BoolVar(&docDryRun, "dry-run", false, "show generated comments without writing files")
	rootCmd.Flags().BoolVar(&docNoColor, "no-color", false, "disable colored output")
}

func runDocument(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := GetConfig()
	log := GetLogger()
	out := cmd.OutOrStdout()

	prompter := newPrompter(cmd)

	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		answer, err := prompter.Ask("Enter the path to the .java file: ")
		if err != nil {
			return err
		}
		path = strings.TrimSpace(answer)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(out, "File not found.")
			return nil
		}
		return err
	}

	client, err := newLLM(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	var history port.HistoryStore
	if st := openHistory(cfg, log); st != nil {
		defer st.Close()
		history = st
	}

	generator, err := usecase.NewJavadocGenerator(client, history, cfg.History.Reuse, log)
	if err != nil {
		return err
	}

	useColor := cfg.Display.Color && !docNoColor
	console := NewConsole(out, prompter, highlight.New(cfg.Display.Style, useColor), useColor)
	walker := fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)

	docUC := usecase.NewDocumentUseCase(javaparser.NewJavaParser(), generator, console, walker, log)

	if info.IsDir() {
		return documentTree(ctx, cmd, docUC, path)
	}

	result, err := docUC.DocumentFile(ctx, path, docDryRun)
	if err != nil {
		if errors.Is(err, usecase.ErrFileNotFound) {
			fmt.Fprintln(out, "File not found.")
			return nil
		}
		return err
	}
	log.Debug("Document finished",
		zap.String("file", path),
		zap.Int("methods", result.Methods),
		zap.Int("inserted", result.Inserted),
		zap.Int("failed", result.Failed))

	reportFile(cmd, result)
	return nil
}

// newPrompter uses the terminal prompt when the command talks to real files
// and reads plain lines otherwise.
func newPrompter(cmd *cobra.Command) prompt.Prompter {
	in, inFile := cmd.InOrStdin().(*os.File)
	out, outFile := cmd.OutOrStdout().(*os.File)
	if inFile && outFile {
		return prompt.New(in, out)
	}
	return prompt.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}

func documentTree(ctx context.Context, cmd *cobra.Command, docUC *usecase.DocumentUseCase, root string) error {
	out := cmd.OutOrStdout()

	tree, err := docUC.DocumentTree(ctx, root, docDryRun)
	if tree != nil {
		for _, result := range tree.Files {
			reportFile(cmd, result)
		}
		if len(tree.Errors) > 0 {
			fmt.Fprintf(out, "\nSkipped %d files:\n", len(tree.Errors))
			for _, e := range tree.Errors {
				fmt.Fprintf(out, "  - %s\n", e)
			}
		}
	}
	return err
}

func reportFile(cmd *cobra.Command, result *usecase.DocumentResult) {
	out := cmd.OutOrStdout()
	switch {
	case result.Written:
		fmt.Fprintf(out, "\nUpdated Java file saved to %s\n", result.Path)
	case docDryRun && result.Inserted > 0:
		fmt.Fprintf(out, "\nDry run: %d comments not written to %s\n", result.Inserted, result.Path)
	case !docDryRun:
		fmt.Fprintf(out, "\nNo changes made to %s\n", result.Path)
	}
}
