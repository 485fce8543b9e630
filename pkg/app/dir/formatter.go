package dir

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// FormatOutput writes a listing in the requested format
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		return formatJSON(w, response)
	case "yaml":
		return formatYAML(w, response)
	case "csv":
		return formatCSV(w, response)
	case "table", "":
		return formatTable(w, response)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// formatTable prints the optional volume summary, the entry table and the
// allocation trailer
func formatTable(w io.Writer, response *Response) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if v := response.Volume; v != nil {
		fmt.Fprintf(tw, "VOLUME ID:\t%s\n", v.VolumeID)
		fmt.Fprintf(tw, "ACCESSIBILITY:\t%s\n", v.Accessibility)
		fmt.Fprintf(tw, "OWNER:\t%s\n", v.Owner)
		fmt.Fprintf(tw, "SURFACE:\t%s\n", v.Surface)
		fmt.Fprintf(tw, "SECTOR LENGTH:\t%s\n", v.SectorLength)
		fmt.Fprintf(tw, "SECTOR SEQUENCE:\t%d\n", v.SectorSequence)
		fmt.Fprintf(tw, "ALLOCATION:\t%s\n", v.Allocation)
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	}

	fmt.Fprintf(tw, "LEVEL\tNAME\tORG\tPRIV\tBKSZ\tLREC\tADUS\tADU\tTYPE-FLAGS\n")
	for _, e := range response.Entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			e.Level, e.Name, e.Organization, e.Privilege, e.BlockSize, e.RecordLength, e.Units, e.FirstUnit, e.TypeFlags)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "TOTAL ADUS ALLOCATED: %d\n", response.TotalAllocated)
	return err
}

// formatJSON formats the listing as JSON
func formatJSON(w io.Writer, response *Response) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// formatYAML formats the listing as YAML
func formatYAML(w io.Writer, response *Response) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(response)
}

// formatCSV writes one row per entry; the summary and trailer are omitted
func formatCSV(w io.Writer, response *Response) error {
	return gocsv.Marshal(response.Entries, w)
}
