package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"pawnc/internal/diagfmt"
	"pawnc/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.pwn|directory>",
	Short: "Tokenize a Pawn source file or directory",
	Long:  `Tokenize breaks a Pawn source file (or every *.pwn/*.inc under a directory) into tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

// fileTokensOutput: токены одного файла при обработке директории.
type fileTokensOutput struct {
	Path   string                `json:"path" msgpack:"path"`
	Tokens []diagfmt.TokenOutput `json:"tokens" msgpack:"tokens"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	s, err := loadSettings(cmd, target)
	if err != nil {
		return err
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	out := cmd.OutOrStdout()

	if !st.IsDir() {
		result, err := driver.Tokenize(cmd.Context(), target, s.opts)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		switch format {
		case "json":
			err = diagfmt.FormatTokensJSON(out, result.Tokens)
		case "msgpack":
			err = diagfmt.FormatTokensMsgpack(out, result.Tokens)
		default:
			err = diagfmt.FormatTokensPretty(out, result.Tokens, result.File)
		}
		if err != nil {
			return err
		}
		return s.reportDiagnostics(cmd, result.Bag, result.FileSet)
	}

	result, err := driver.TokenizeDir(cmd.Context(), target, s.opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if err := writeDirTokens(out, format, result); err != nil {
		return err
	}
	return s.reportDiagnostics(cmd, result.Bag, result.FileSet)
}

func writeDirTokens(out io.Writer, format string, result *driver.TokenizeDirResult) error {
	if format == "pretty" {
		for i, f := range result.Files {
			if f.Tokens == nil {
				continue
			}
			if i > 0 {
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
			if err := diagfmt.FormatTokensPretty(out, f.Tokens, result.FileSet.Get(f.FileID)); err != nil {
				return err
			}
		}
		return nil
	}

	payload := make([]fileTokensOutput, 0, len(result.Files))
	for _, f := range result.Files {
		if f.Tokens == nil {
			continue
		}
		payload = append(payload, fileTokensOutput{Path: f.Path, Tokens: diagfmt.BuildTokensOutput(f.Tokens)})
	}
	if format == "msgpack" {
		return msgpack.NewEncoder(out).Encode(payload)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
