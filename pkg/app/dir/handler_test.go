package dir

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-ta1600/internal/testutil"
	"github.com/deploymenttheory/go-ta1600/internal/types"
	"github.com/deploymenttheory/go-ta1600/pkg/app"
)

func testContext(t *testing.T) (*app.Context, *bytes.Buffer) {
	t.Helper()
	var diagnostics bytes.Buffer
	ctx := app.NewContext()
	ctx.Out = &bytes.Buffer{}
	ctx.ErrOut = &diagnostics
	ctx.ConfigureLogger()
	return ctx, &diagnostics
}

func TestHandle(t *testing.T) {
	path := testutil.SampleImage(t).WriteFile("sample.img")

	tests := []struct {
		name     string
		names    app.Selection
		validate func(*testing.T, *Response)
	}{
		{
			name:  "volume summary and all entries",
			names: nil,
			validate: func(t *testing.T, resp *Response) {
				require.NotNil(t, resp.Volume)
				assert.Equal(t, "ABCDEF", resp.Volume.VolumeID)
				assert.Equal(t, "OWNER01EXTENDS", resp.Volume.Owner)
				assert.Len(t, resp.Entries, 4)
			},
		},
		{
			name:  "wildcard",
			names: app.Selection{"*"},
			validate: func(t *testing.T, resp *Response) {
				assert.Nil(t, resp.Volume)
				assert.Len(t, resp.Entries, 4)
			},
		},
		{
			name:  "single name",
			names: app.Selection{"foo.SEQ"},
			validate: func(t *testing.T, resp *Response) {
				assert.Nil(t, resp.Volume)
				require.Len(t, resp.Entries, 1)
				assert.Equal(t, "FOO", resp.Entries[0].Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := testContext(t)
			resp, err := Handle(ctx, &Request{ImagePath: path, Names: tt.names})
			require.NoError(t, err)
			assert.Equal(t, 16, resp.TotalAllocated)
			tt.validate(t, resp)
		})
	}
}

func TestHandle_MissingNames(t *testing.T) {
	path := testutil.SampleImage(t).WriteFile("sample.img")
	ctx, diagnostics := testContext(t)

	resp, err := Handle(ctx, &Request{ImagePath: path, Names: app.Selection{"NOPE.SEQ", "bar.rel", "GONE.PGM"}})
	require.Error(t, err)
	require.NotNil(t, resp)

	var appErr *app.CommonError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, app.ErrCodeFileNotFound, appErr.Code)
	assert.ErrorIs(t, err, types.ErrFileNotFound)

	assert.Equal(t, []string{"NOPE.SEQ", "GONE.PGM"}, resp.Missing)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "BAR", resp.Entries[0].Name)
	assert.Contains(t, diagnostics.String(), "NOPE.SEQ")
}

func TestHandle_Errors(t *testing.T) {
	t.Run("invalid request", func(t *testing.T) {
		ctx, _ := testContext(t)
		_, err := Handle(ctx, &Request{})
		var appErr *app.CommonError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, app.ErrCodeInvalidInput, appErr.Code)
	})

	t.Run("missing image", func(t *testing.T) {
		ctx, _ := testContext(t)
		_, err := Handle(ctx, &Request{ImagePath: t.TempDir() + "/none.img"})
		var appErr *app.CommonError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, app.ErrCodeImageAccess, appErr.Code)
	})

	t.Run("no volume label", func(t *testing.T) {
		path := testutil.NewImageBuilder(t, testutil.DefaultImageSize).WriteFile("blank.img")
		ctx, _ := testContext(t)
		_, err := Handle(ctx, &Request{ImagePath: path})
		var appErr *app.CommonError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, app.ErrCodeVolumeLabel, appErr.Code)
		assert.ErrorIs(t, err, types.ErrVolumeLabelNotFound)
	})
}

func TestHandle_DirectoryProblemsAreWarnings(t *testing.T) {
	b := testutil.SampleImage(t)
	root := b.WriteDirectory(40, []testutil.Entry{
		{Name: "GOOD", Organization: types.OrgSequential, Chain: types.AllocationChain{{Count: 1, Start: 14}}},
		{Name: "BAD", Organization: types.OrgDirectory, Chain: types.AllocationChain{{Count: 1, Start: 900}}},
	})
	b.SetSystemChain(root)
	path := b.WriteFile("damaged.img")

	ctx, diagnostics := testContext(t)
	resp, err := Handle(ctx, &Request{ImagePath: path, Names: app.Selection{"*"}})
	require.NoError(t, err)
	assert.Len(t, resp.Entries, 2)
	require.Len(t, resp.Problems, 1)
	assert.Contains(t, diagnostics.String(), "level=WARN")
}
