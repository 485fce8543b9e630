package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-ta1600/pkg/app"
	"github.com/deploymenttheory/go-ta1600/pkg/app/dir"
)

var dirCmd = &cobra.Command{
	Use:   "dir [image] [name...|*]",
	Short: "List the volume label and directory entries",
	Long: `List the contents of a diskette image.

Without names the volume summary is printed before the full entry table.
With * only the entry table is printed. Named lookups ignore case and take
the form NAME.ORG, for example FOO.SEQ.

Examples:
  # Volume summary and every entry
  go-ta1600 dir disk.img

  # Two entries as JSON
  go-ta1600 dir disk.img FOO.SEQ BAR.REL -o json`,

	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDir(cmd, args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(dirCmd)
}

func runDir(cmd *cobra.Command, imagePath string, names []string) error {
	ctx := newContext(cmd)

	if err := dir.ValidateFormat(ctx.OutputFormat); err != nil {
		return err
	}

	config, err := loadConfig()
	if err != nil {
		return err
	}

	request := &dir.Request{
		ImagePath: imagePath,
		Names:     app.Selection(names),
		Config:    config,
	}

	// a partial listing is still printed when some names are missing
	response, err := dir.Handle(ctx, request)
	if response != nil {
		if formatErr := dir.FormatOutput(ctx.Stdout(), response, ctx.OutputFormat); formatErr != nil {
			return app.NewError(app.ErrCodeOutput, "failed to write listing", formatErr)
		}
	}
	return err
}
