package app

import (
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-ta1600/internal/disk"
	"github.com/deploymenttheory/go-ta1600/internal/services"
	"github.com/deploymenttheory/go-ta1600/internal/types"
)

// OpenImage opens and decodes the image at path, translating failures to
// application errors
func OpenImage(path string, config *disk.ImageConfig) (*services.ImageService, error) {
	svc, err := services.OpenImage(path, config)
	if err != nil {
		if errors.Is(err, types.ErrVolumeLabelNotFound) {
			return nil, NewError(ErrCodeVolumeLabel, "volume label not found", err)
		}
		return nil, NewError(ErrCodeImageAccess, fmt.Sprintf("cannot read image %s", path), err)
	}
	return svc, nil
}
