package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/go-srcfind/internal/options"
	goyaml "github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// loadOptions builds an *options.Options starting from options.Default()
// and applying every field present in the file at path, which may be YAML
// or JSON (detected by extension). Only fields the file actually sets are
// overridden, so a file containing a single flag still inherits every
// other default.
func loadOptions(path string) (*options.Options, error) {
	opts := options.Default()
	if path == "" {
		return opts, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options file %s: %w", path, err)
	}

	overridesJSON := raw
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		overridesJSON, err = goyaml.YAMLToJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing YAML options file %s: %w", path, err)
		}
	}

	base, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("marshaling default options: %w", err)
	}

	result := gjson.ParseBytes(overridesJSON)
	if !result.IsObject() {
		return nil, fmt.Errorf("options file %s must contain a JSON/YAML object", path)
	}

	var setErr error
	result.ForEach(func(key, value gjson.Result) bool {
		base, setErr = sjson.SetBytes(base, key.String(), value.Value())
		return setErr == nil
	})
	if setErr != nil {
		return nil, fmt.Errorf("applying override from %s: %w", path, setErr)
	}

	merged := options.Options{}
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, fmt.Errorf("decoding merged options: %w", err)
	}
	return &merged, nil
}
