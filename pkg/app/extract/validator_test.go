package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-ta1600/pkg/app"
)

func TestRequest_Validate(t *testing.T) {
	dest := t.TempDir()
	file := filepath.Join(dest, "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := []struct {
		name     string
		request  Request
		wantCode string
	}{
		{"valid", Request{ImagePath: "disk.img", Names: app.Selection{"A.SEQ"}, Destination: dest}, ""},
		{"wildcard", Request{ImagePath: "disk.img", Names: app.Selection{"*"}, Destination: dest}, ""},
		{"missing image", Request{Names: app.Selection{"A.SEQ"}, Destination: dest}, app.ErrCodeInvalidInput},
		{"no names", Request{ImagePath: "disk.img", Destination: dest}, app.ErrCodeInvalidInput},
		{"mixed wildcard", Request{ImagePath: "disk.img", Names: app.Selection{"A.SEQ", "*"}, Destination: dest}, app.ErrCodeInvalidInput},
		{"missing destination", Request{ImagePath: "disk.img", Names: app.Selection{"A.SEQ"}, Destination: filepath.Join(dest, "absent")}, app.ErrCodeOutput},
		{"destination is a file", Request{ImagePath: "disk.img", Names: app.Selection{"A.SEQ"}, Destination: file}, app.ErrCodeOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			var appErr *app.CommonError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestRequest_Validate_DefaultDestination(t *testing.T) {
	req := Request{ImagePath: "disk.img", Names: app.Selection{"*"}}
	require.NoError(t, req.Validate())
	assert.Equal(t, ".", req.Destination)
}
