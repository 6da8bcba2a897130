package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/cwbudde/go-srcfind/pkg/srcsearch"
	"github.com/goccy/go-yaml"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var (
	findOptionsFile string
	findNeedleEval  string
)

var findCmd = &cobra.Command{
	Use:   "find <needle> <file>...",
	Short: "Search one or more files for a style-agnostic needle",
	Long: `find tokenizes the needle and every haystack file, then reports every
contiguous occurrence of the needle regardless of the haystack's or the
needle's coding style.

Examples:
  srcfind find "myVariableName" src/*.cpp
  srcfind find -e "unsigned long long count" *.h --options-file relaxed.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().StringVarP(&findNeedleEval, "eval", "e", "", "needle text (overrides the first positional argument)")
}

// findResult is one reported match, shaped for --format json/yaml output.
type findResult struct {
	File  string `json:"file"`
	Begin string `json:"begin"`
	End   string `json:"end"`
}

func runFind(cmd *cobra.Command, args []string) error {
	needle := findNeedleEval
	files := args
	if needle == "" {
		if len(args) < 2 {
			return fmt.Errorf("provide a needle and at least one file, or use -e")
		}
		needle = args[0]
		files = args[1:]
	}

	sortedFiles := append([]string(nil), files...)
	sort.Slice(sortedFiles, func(i, j int) bool {
		return natural.Less(sortedFiles[i], sortedFiles[j])
	})

	optionsFile, _ := cmd.Flags().GetString("options-file")
	opts, err := loadOptions(optionsFile)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")

	var results []findResult
	total := 0

	for _, path := range sortedFiles {
		session := srcsearch.New()
		session.SetOptions(opts)

		lines, err := readLines(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		session.Load(lines)

		if verbose {
			fmt.Fprintf(os.Stderr, "searching %s (%d lines)\n", path, len(lines))
		}

		count := session.Find(needle, func(m srcsearch.Match) bool {
			results = append(results, findResult{
				File:  path,
				Begin: m.Begin.String(),
				End:   m.End.String(),
			})
			return true
		})
		total += count
	}

	return printFindResults(format, results, total)
}

func printFindResults(format string, results []findResult, total int) error {
	switch format {
	case "json":
		raw, err := json.Marshal(results)
		if err != nil {
			return err
		}
		fmt.Println(string(pretty.Pretty(raw)))
	case "yaml":
		raw, err := yaml.Marshal(results)
		if err != nil {
			return err
		}
		fmt.Print(string(raw))
	default:
		for _, r := range results {
			fmt.Printf("%s:%s-%s\n", r.File, r.Begin, r.End)
		}
		fmt.Printf("%d match(es)\n", total)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
