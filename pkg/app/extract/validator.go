package extract

import (
	"fmt"
	"os"

	"github.com/deploymenttheory/go-ta1600/pkg/app"
)

// Validate validates a copy request
func (r *Request) Validate() error {
	if r.ImagePath == "" {
		return app.NewError(app.ErrCodeInvalidInput, "image path is required", nil)
	}

	if r.Names.IsEmpty() {
		return app.NewError(app.ErrCodeInvalidInput, "at least one file name or * is required", nil)
	}
	if err := r.Names.Validate(); err != nil {
		return app.NewError(app.ErrCodeInvalidInput, "invalid file selection", err)
	}

	if r.Destination == "" {
		r.Destination = "."
	}
	info, err := os.Stat(r.Destination)
	if err != nil {
		return app.NewError(app.ErrCodeOutput, "destination is not accessible", err)
	}
	if !info.IsDir() {
		return app.NewError(app.ErrCodeOutput, fmt.Sprintf("destination %s is not a directory", r.Destination), nil)
	}

	if r.Config != nil {
		if err := r.Config.Validate(); err != nil {
			return app.NewError(app.ErrCodeInvalidInput, "invalid image configuration", err)
		}
	}

	return nil
}
