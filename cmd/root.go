package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-ta1600/pkg/app"
)

var (
	// Global output flags
	verbose      bool
	quiet        bool
	outputFormat string
	configPath   string
)

var rootCmd = &cobra.Command{
	Use:   "go-ta1600 [image] [dir|copy] [name...|*]",
	Short: "Read-only explorer for TA 1600 / ECMA-57 diskette images",
	Long: `go-ta1600 is a read-only command-line tool for TA 1600 / ECMA-57 family
5¼" diskette images. It decodes the VOL1 volume label and the directory tree
and copies file contents byte for byte.

Commands:
  dir     List the volume summary and directory entries
  copy    Copy files out of the image

The historical argument order with the image first is also accepted:
  go-ta1600 disk.img dir
  go-ta1600 disk.img copy FOO.SEQ`,
	Version:       "0.1.0-dev",
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runLegacy,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, json, yaml, csv)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ta1600-config.yaml in ., ./config, $HOME/.ta1600, /etc/ta1600)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// copy options for the image-first form
	addCopyFlags(rootCmd)
}

// runLegacy dispatches "IMAGE dir ..." and "IMAGE copy ..."
func runLegacy(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		cmd.Usage()
		return app.NewError(app.ErrCodeInvalidInput, "missing image path", nil)
	case 1:
		cmd.Usage()
		return app.NewError(app.ErrCodeInvalidInput, "missing command (dir or copy)", nil)
	}

	image, command, names := args[0], args[1], args[2:]
	switch command {
	case "dir":
		return runDir(cmd, image, names)
	case "copy":
		return runCopy(cmd, image, names)
	default:
		return app.NewError(app.ErrCodeInvalidInput, fmt.Sprintf("unknown command %q", command), nil)
	}
}

// newContext builds the application context from the global flags
func newContext(cmd *cobra.Command) *app.Context {
	ctx := app.NewContext()
	if parent := cmd.Context(); parent != nil {
		ctx.Context = parent
	}
	ctx.OutputFormat = GetOutputFormat()
	ctx.Verbose = GetVerbose()
	ctx.Quiet = GetQuiet()
	ctx.Out = cmd.OutOrStdout()
	ctx.ErrOut = cmd.ErrOrStderr()
	ctx.ConfigureLogger()
	return ctx
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}

// GetQuiet returns the quiet flag value
func GetQuiet() bool {
	return quiet
}

// GetOutputFormat returns the output format
func GetOutputFormat() string {
	return outputFormat
}
