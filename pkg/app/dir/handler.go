package dir

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/deploymenttheory/go-ta1600/internal/services"
	"github.com/deploymenttheory/go-ta1600/pkg/app"
)

// Handle processes a listing request. When some requested names are missing
// the response still carries the entries that were found, alongside the
// error.
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

	return List(ctx, svc, req.Names)
}

// List builds the listing of an opened image
func List(ctx *app.Context, image services.ImageReader, names app.Selection) (*Response, error) {
	tree := image.Tree()
	response := &Response{
		TotalAllocated: tree.TotalAllocated(),
	}

	for _, problem := range tree.Problems() {
		ctx.Warn("directory problem", "error", problem)
		response.Problems = append(response.Problems, problem.Error())
	}

	if names.IsEmpty() {
		response.Volume = NewVolumeSummary(image.Volume())
	}

	if names.IsEmpty() || names.IsAll() {
		response.Entries = services.ListEntries(tree)
		ctx.Log("listed entries", "count", len(response.Entries))
		return response, nil
	}

	var result *multierror.Error
	response.Entries = make([]services.EntryInfo, 0, len(names))
	for _, name := range names {
		entry, err := image.Find(name)
		if err != nil {
			ctx.Error("file not found", "name", name)
			response.Missing = append(response.Missing, name)
			result = multierror.Append(result, err)
			continue
		}
		response.Entries = append(response.Entries, services.NewEntryInfo(entry))
	}

	if err := result.ErrorOrNil(); err != nil {
		return response, app.NewError(app.ErrCodeFileNotFound, fmt.Sprintf("%d of %d files not found", len(response.Missing), len(names)), err)
	}
	return response, nil
}
