package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print the effective search options",
	Long: `options prints the search options that would be used by find/lex: the
built-in defaults, merged with any --options-file overrides, as YAML
when --format is yaml and as JSON otherwise.`,
	RunE: runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, args []string) error {
	optionsFile, _ := cmd.Flags().GetString("options-file")
	opts, err := loadOptions(optionsFile)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml":
		raw, err := yaml.Marshal(opts)
		if err != nil {
			return err
		}
		fmt.Print(string(raw))
	default:
		raw, err := json.Marshal(opts)
		if err != nil {
			return err
		}
		fmt.Println(string(pretty.Pretty(raw)))
	}
	return nil
}
