package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-srcfind/internal/lexer"
	"github.com/cwbudde/go-srcfind/internal/normalizer"
	"github.com/spf13/cobra"
)

var lexEval string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a file or expression and print the resulting tokens",
	Long: `lex is a debugging aid: it tokenizes and normalizes a file or an inline
snippet and prints one line per token, useful for understanding why a
find query did or did not match.

Examples:
  srcfind lex script.cpp
  srcfind lex -e "unsigned long long count = 0;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline text instead of reading from file")
}

func runLex(cmd *cobra.Command, args []string) error {
	var input, filename string
	if lexEval != "" {
		input = lexEval
		filename = "<eval>"
	} else if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filename, err)
		}
		input = string(content)
	} else {
		return fmt.Errorf("provide a file path or -e for inline text")
	}

	optionsFile, _ := cmd.Flags().GetString("options-file")
	opts, err := loadOptions(optionsFile)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("tokenizing: %s (%d bytes)\n---\n", filename, len(input))
	}

	toks := lexer.New(opts).Append(input)
	toks = normalizer.Normalize(toks, opts)

	for _, tok := range toks {
		alt := ""
		if tok.HasAlternative() {
			alt = fmt.Sprintf(" alt=%q", tok.Alternative)
		}
		fmt.Printf("[%-10s] %q @%s%s\n", tok.Kind, tok.Value, tok.Location, alt)
	}
	fmt.Printf("---\n%d token(s)\n", len(toks))
	return nil
}
