package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/deploymenttheory/go-ta1600/internal/parsers/directory"
	"github.com/deploymenttheory/go-ta1600/internal/services"
	"github.com/deploymenttheory/go-ta1600/pkg/app"
)

var (
	// ErrDestinationExists is returned when a target file exists and
	// overwriting was not requested
	ErrDestinationExists = errors.New("destination file already exists")

	// ErrIsDirectory is returned when a directory entry is named for copying
	ErrIsDirectory = errors.New("entry is a directory")
)

// Handle copies the selected entries of an image into the destination
// directory. Per-file failures do not stop the batch; they are collected in
// the returned error.
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx.Log("opening image", "path", req.ImagePath, "selection", req.Names.String())

	svc, err := app.OpenImage(req.ImagePath, req.Config)
	if err != nil {
		return nil, err
	}
	defer svc.Close()

	return Copy(ctx, svc, req)
}

// Copy copies entries of an opened image according to req
func Copy(ctx *app.Context, image services.ImageReader, req *Request) (*Response, error) {
	response := &Response{}
	var result *multierror.Error

	for _, problem := range image.Tree().Problems() {
		ctx.Warn("directory problem", "error", problem)
	}

	entries, err := selectEntries(image, req, response)
	if err != nil {
		result = multierror.Append(result, err)
	}

	progress := app.ProgressUpdate{Total: int64(len(entries))}
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			for _, rest := range entries[i:] {
				response.Failed = append(response.Failed, rest.DisplayName())
			}
			ctx.Warn("copy cancelled", "remaining", len(entries)-i)
			result = multierror.Append(result, fmt.Errorf("copy cancelled: %w", err))
			break
		}

		name := entry.DisplayName()
		path, n, err := writeEntry(image, entry, req.Destination, req.Overwrite)
		progress.Completed++
		progress.Message = name
		ctx.Progress(progress.Message, progress.Percent())

		if err != nil {
			ctx.Error("copy failed", "name", name, "error", err)
			response.Failed = append(response.Failed, name)
			result = multierror.Append(result, err)
			continue
		}

		ctx.Log("copied", "name", name, "path", path, "bytes", n)
		response.Files = append(response.Files, CopiedFile{Name: name, Path: path, Bytes: n})
	}

	if err := result.ErrorOrNil(); err != nil {
		return response, app.NewError(app.ErrCodeOutput, fmt.Sprintf("%d files could not be copied", len(response.Failed)), err)
	}
	return response, nil
}

// selectEntries resolves the requested names. Names that cannot be resolved
// are recorded as failed and reported through the returned error.
func selectEntries(image services.ImageReader, req *Request, response *Response) ([]*directory.Entry, error) {
	var entries []*directory.Entry

	if req.Names.IsAll() {
		for entry := range image.Tree().All() {
			if entry.IsDirectory() {
				continue
			}
			if req.SkipDeleted && entry.IsDeleted() {
				response.Skipped = append(response.Skipped, entry.DisplayName())
				continue
			}
			entries = append(entries, entry)
		}
		return entries, nil
	}

	var result *multierror.Error
	for _, name := range req.Names {
		entry, err := image.Find(name)
		if err != nil {
			response.Failed = append(response.Failed, name)
			result = multierror.Append(result, app.NewError(app.ErrCodeFileNotFound, "file not found: "+name, err))
			continue
		}
		if entry.IsDirectory() {
			response.Failed = append(response.Failed, entry.DisplayName())
			result = multierror.Append(result, fmt.Errorf("%s: %w", entry.DisplayName(), ErrIsDirectory))
			continue
		}
		if req.SkipDeleted && entry.IsDeleted() {
			response.Skipped = append(response.Skipped, entry.DisplayName())
			continue
		}
		entries = append(entries, entry)
	}
	return entries, result.ErrorOrNil()
}

// writeEntry writes the content of entry to dest through a temporary file
// that is renamed into place once complete
func writeEntry(image services.ImageReader, entry *directory.Entry, dest string, overwrite bool) (string, int64, error) {
	target := filepath.Join(dest, safeFileName(entry.DisplayName()))
	if !overwrite {
		if _, err := os.Stat(target); err == nil {
			return "", 0, fmt.Errorf("%s: %w", target, ErrDestinationExists)
		}
	}

	tmp := target + ".tmp-" + uuid.NewString()
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	n, err := image.WriteTo(entry, f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp)
		return "", n, err
	}

	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return "", n, fmt.Errorf("failed to move %s into place: %w", target, err)
	}
	return target, n, nil
}

// safeFileName keeps a decoded entry name inside the destination directory
func safeFileName(name string) string {
	return strings.NewReplacer("/", "_", "\\", "_", "\x00", "_").Replace(name)
}
