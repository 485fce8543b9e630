package extract

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// FormatOutput writes the result of a copy run in the requested format
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(response)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		encoder.SetIndent(2)
		return encoder.Encode(response)
	case "table", "csv", "":
		return formatTable(w, response)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func formatTable(w io.Writer, response *Response) error {
	if len(response.Files) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "NAME\tBYTES\tPATH\n")
		for _, f := range response.Files {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", f.Name, f.Bytes, f.Path)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	for _, name := range response.Skipped {
		fmt.Fprintf(w, "skipped: %s\n", name)
	}

	_, err := fmt.Fprintf(w, "%d files copied (%d bytes)\n", len(response.Files), response.TotalBytes())
	return err
}
