package recipe

import (
	"encoding/json"
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"

	"cssel/common"
)

// Write renders results to w in the requested encoding. Text output is
// one "name TAB selector" line per result; json and yaml render the
// result list as-is.
func Write(w io.Writer, format common.OutputFmt, results []Result) error {
	switch format {
	case common.OutputFmtText:
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Name, r.Selector); err != nil {
				return err
			}
		}
		return nil
	case common.OutputFmtJson:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case common.OutputFmtYaml:
		data, err := yaml.Marshal(results)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
