package disk

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-ta1600/internal/codec"
	"github.com/deploymenttheory/go-ta1600/internal/types"
)

// ImageConfig holds the decoding options of an image
type ImageConfig struct {
	OwnerWidth  int    `mapstructure:"owner_width" yaml:"owner_width"`
	CodePage    string `mapstructure:"code_page" yaml:"code_page"`
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`
	GuardCycles bool   `mapstructure:"guard_cycles" yaml:"guard_cycles"`
}

// DefaultImageConfig returns the configuration used when no file is present
func DefaultImageConfig() *ImageConfig {
	return &ImageConfig{
		OwnerWidth:  types.OwnerWidthLong,
		CodePage:    "037",
		Placeholder: string(codec.DefaultPlaceholder),
		GuardCycles: true,
	}
}

// LoadImageConfig loads the decoding configuration using Viper. An empty path
// searches the default locations; a missing config file is not an error.
func LoadImageConfig(path string) (*ImageConfig, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ta1600-config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.ta1600")
		v.AddConfigPath("/etc/ta1600")
	}

	defaults := DefaultImageConfig()
	v.SetDefault("owner_width", defaults.OwnerWidth)
	v.SetDefault("code_page", defaults.CodePage)
	v.SetDefault("placeholder", defaults.Placeholder)
	v.SetDefault("guard_cycles", defaults.GuardCycles)

	v.SetEnvPrefix("TA1600")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config ImageConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the configuration values
func (c *ImageConfig) Validate() error {
	if c.OwnerWidth != types.OwnerWidthShort && c.OwnerWidth != types.OwnerWidthLong {
		return fmt.Errorf("owner_width must be %d or %d, got %d", types.OwnerWidthShort, types.OwnerWidthLong, c.OwnerWidth)
	}
	if len([]rune(c.Placeholder)) > 1 {
		return fmt.Errorf("placeholder must be a single character, got %q", c.Placeholder)
	}
	if _, err := c.Codec(); err != nil {
		return err
	}
	return nil
}

// Codec builds the text codec described by the configuration
func (c *ImageConfig) Codec() (*codec.Codec, error) {
	var placeholder rune
	if runes := []rune(c.Placeholder); len(runes) == 1 {
		placeholder = runes[0]
	}
	return codec.New(c.CodePage, placeholder)
}
