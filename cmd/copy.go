package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-ta1600/pkg/app"
	"github.com/deploymenttheory/go-ta1600/pkg/app/extract"
)

var (
	// Destination and behaviour (copy-specific)
	copyDest        string
	copyOverwrite   bool
	copySkipDeleted bool
)

var copyCmd = &cobra.Command{
	Use:   "copy [image] [name...|*]",
	Short: "Copy files out of a diskette image",
	Long: `Copy the exact content of directory entries into a local directory.

Each file is written as NAME.ORG. With * every entry that is not a directory
is copied. Existing files are kept unless --overwrite is given.

Examples:
  # Copy one file into the current directory
  go-ta1600 copy disk.img FOO.SEQ

  # Copy everything except deleted entries
  go-ta1600 copy disk.img '*' --dest ./out --skip-deleted`,

	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCopy(cmd, args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
	addCopyFlags(copyCmd)
}

func addCopyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&copyDest, "dest", "d", ".", "destination directory")
	cmd.Flags().BoolVar(&copyOverwrite, "overwrite", false, "overwrite existing files")
	cmd.Flags().BoolVar(&copySkipDeleted, "skip-deleted", false, "skip entries flagged as deleted")
}

func runCopy(cmd *cobra.Command, imagePath string, names []string) error {
	ctx, cancel := newContext(cmd).WithCancel()
	defer cancel()

	// an interrupt finishes the file being written and skips the rest
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)
	go func() {
		select {
		case <-interrupts:
			cancel()
		case <-ctx.Done():
		}
	}()

	config, err := loadConfig()
	if err != nil {
		return err
	}

	request := &extract.Request{
		ImagePath:   imagePath,
		Names:       app.Selection(names),
		Destination: copyDest,
		Overwrite:   copyOverwrite,
		SkipDeleted: copySkipDeleted,
		Config:      config,
	}

	response, err := extract.Handle(ctx, request)
	if response != nil && !ctx.Quiet {
		if formatErr := extract.FormatOutput(ctx.Stdout(), response, ctx.OutputFormat); formatErr != nil {
			return app.NewError(app.ErrCodeOutput, "failed to write summary", formatErr)
		}
	}
	return err
}
