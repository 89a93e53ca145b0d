package preconditions

import (
	"testing"

	"github.com/dubpixel/dpx-FusionVersioning/internal/assembly"
)

func TestCheckDocument(t *testing.T) {
	root := &assembly.Node{Name: "widget", Kind: assembly.KindComponent, Visible: true}

	tests := []struct {
		name    string
		doc     *assembly.Document
		wantErr bool
	}{
		{"nil document", nil, true},
		{"unnamed document", &assembly.Document{Root: root, Version: 1}, true},
		{"missing design", &assembly.Document{Name: "dpx_widget.f3d", Version: 1}, true},
		{"never saved", &assembly.Document{Name: "dpx_widget.f3d", Root: root, Version: 0}, true},
		{"valid", &assembly.Document{Name: "dpx_widget.f3d", Root: root, Version: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDocument(tt.doc)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckDocument() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputDir(t *testing.T) {
	dir := t.TempDir()

	if err := ValidateOutputDir(dir); err != nil {
		t.Errorf("writable dir rejected: %v", err)
	}
	if err := ValidateOutputDir(""); err == nil {
		t.Error("empty path accepted")
	}
	if err := ValidateOutputDir(dir + "/missing"); err == nil {
		t.Error("missing dir accepted")
	}
}
