package dir

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deploymenttheory/go-ta1600/internal/disk"
	"github.com/deploymenttheory/go-ta1600/pkg/app"
)

func TestRequest_Validate(t *testing.T) {
	badConfig := disk.DefaultImageConfig()
	badConfig.CodePage = "500"

	tests := []struct {
		name    string
		request Request
		wantErr bool
	}{
		{"image only", Request{ImagePath: "disk.img"}, false},
		{"wildcard", Request{ImagePath: "disk.img", Names: app.Selection{"*"}}, false},
		{"names", Request{ImagePath: "disk.img", Names: app.Selection{"A.SEQ", "B.REL"}}, false},
		{"missing image", Request{}, true},
		{"wildcard with names", Request{ImagePath: "disk.img", Names: app.Selection{"*", "A.SEQ"}}, true},
		{"blank name", Request{ImagePath: "disk.img", Names: app.Selection{" "}}, true},
		{"bad config", Request{ImagePath: "disk.img", Config: badConfig}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"table", "json", "yaml", "csv"} {
		assert.NoError(t, ValidateFormat(format), format)
	}
	assert.Error(t, ValidateFormat("xml"))
}
