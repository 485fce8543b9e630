package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-ta1600/internal/codec"
	"github.com/deploymenttheory/go-ta1600/internal/disk"
	"github.com/deploymenttheory/go-ta1600/pkg/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective image decoding configuration",
	Long: `Show the decoding options after applying the config file and
TA1600_* environment variables.

Settings:
  owner_width   width of the VOL1 owner field, 7 or 14
  code_page     EBCDIC code page used for text fields
  placeholder   character shown for unprintable bytes
  guard_cycles  refuse directories that point back into an ancestor`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}

		view := struct {
			disk.ImageConfig `yaml:",inline"`
			CodePages        []string `yaml:"available_code_pages"`
		}{*config, codec.CodePages()}

		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		defer encoder.Close()
		encoder.SetIndent(2)
		return encoder.Encode(view)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the image configuration named by --config, or the
// default locations when the flag is empty
func loadConfig() (*disk.ImageConfig, error) {
	config, err := disk.LoadImageConfig(configPath)
	if err != nil {
		return nil, app.NewError(app.ErrCodeInvalidInput, "invalid configuration", err)
	}
	return config, nil
}
