package dir

import (
	"github.com/deploymenttheory/go-ta1600/pkg/app"
)

// Validate validates a listing request
func (r *Request) Validate() error {
	if r.ImagePath == "" {
		return app.NewError(app.ErrCodeInvalidInput, "image path is required", nil)
	}

	if err := r.Names.Validate(); err != nil {
		return app.NewError(app.ErrCodeInvalidInput, "invalid file selection", err)
	}

	if r.Config != nil {
		if err := r.Config.Validate(); err != nil {
			return app.NewError(app.ErrCodeInvalidInput, "invalid image configuration", err)
		}
	}

	return nil
}

// ValidateFormat checks that format is one FormatOutput understands
func ValidateFormat(format string) error {
	switch format {
	case "table", "json", "yaml", "csv":
		return nil
	default:
		return app.NewError(app.ErrCodeInvalidInput, "unsupported output format: "+format, nil)
	}
}
