package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pawnc/internal/ast"
	"pawnc/internal/diagfmt"
	"pawnc/internal/driver"
	"pawnc/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.pwn|directory>",
	Short: "Parse a Pawn source file or directory and output the syntax tree",
	Long:  `Parse reads the top-level declarations of a Pawn file (or every *.pwn/*.inc under a directory) and prints their trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|sexpr|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	parseCmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	parseCmd.Flags().Bool("quiet", false, "print diagnostics only")
}

func runParse(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "tree", "sexpr", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	s, err := loadSettings(cmd, target)
	if err != nil {
		return err
	}

	// Проверяем, файл это или директория
	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	out := cmd.OutOrStdout()

	if !st.IsDir() {
		result, err := driver.Parse(cmd.Context(), target, s.opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if !quiet {
			if err := writeTree(out, format, result.Root, result.File); err != nil {
				return err
			}
		}
		return s.reportDiagnostics(cmd, result.Bag, result.FileSet)
	}

	var result *driver.ParseDirResult
	if shouldUseTUI(mode) {
		result, err = runParseDirWithUI(cmd.Context(), target, s.opts)
	} else {
		result, err = driver.ParseDir(cmd.Context(), target, s.opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if !quiet {
		if err := writeDirTrees(out, format, result); err != nil {
			return err
		}
	}
	return s.reportDiagnostics(cmd, result.Bag, result.FileSet)
}

func writeTree(out io.Writer, format string, root *ast.Node, file *source.File) error {
	switch format {
	case "json":
		return diagfmt.FormatASTJSON(out, root)
	case "sexpr":
		return diagfmt.FormatASTSexpr(out, root)
	default:
		return diagfmt.FormatASTPretty(out, root, file)
	}
}

type fileTreeOutput struct {
	Path  string                 `json:"path"`
	Tree  *diagfmt.ASTNodeOutput `json:"tree,omitempty"`
	Error string                 `json:"error,omitempty"`
}

func writeDirTrees(out io.Writer, format string, result *driver.ParseDirResult) error {
	if format == "json" {
		payload := make([]fileTreeOutput, 0, len(result.Files))
		for _, f := range result.Files {
			entry := fileTreeOutput{Path: f.Path}
			if f.Root != nil {
				tree := diagfmt.BuildASTOutput(f.Root)
				entry.Tree = &tree
			}
			if f.Err != nil {
				entry.Error = f.Err.Error()
			}
			payload = append(payload, entry)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	for i, f := range result.Files {
		if f.Root == nil {
			continue
		}
		if format == "sexpr" {
			if _, err := fmt.Fprintf(out, "== %s ==\n", f.Path); err != nil {
				return err
			}
		}
		if err := writeTree(out, format, f.Root, result.FileSet.Get(f.FileID)); err != nil {
			return err
		}
		if i < len(result.Files)-1 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
	}
	return nil
}
