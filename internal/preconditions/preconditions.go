package preconditions

import (
	"fmt"
	"os"

	"github.com/dubpixel/dpx-FusionVersioning/internal/assembly"
)

// CheckDocument verifies the guards that must hold before any mutation:
// an active document with a design tree that has been saved at least once.
func CheckDocument(doc *assembly.Document) error {
	checks := []struct {
		name string
		fn   func(*assembly.Document) error
	}{
		{"active document", checkActive},
		{"design tree", checkDesign},
		{"saved version", checkSaved},
	}

	for _, check := range checks {
		if err := check.fn(doc); err != nil {
			return fmt.Errorf("%s: %w", check.name, err)
		}
	}

	return nil
}

func checkActive(doc *assembly.Document) error {
	if doc == nil || doc.Name == "" {
		return fmt.Errorf("no active document found")
	}
	return nil
}

func checkDesign(doc *assembly.Document) error {
	if doc == nil || doc.Root == nil {
		return fmt.Errorf("no active design found")
	}
	return nil
}

func checkSaved(doc *assembly.Document) error {
	if !doc.Saved() {
		return fmt.Errorf("document has never been saved; save it once before versioning")
	}
	return nil
}

// ValidateOutputDir checks that the export target exists, is a directory
// and is writable.
func ValidateOutputDir(path string) error {
	if path == "" {
		return fmt.Errorf("output directory must be specified")
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access output directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	if info.Mode()&0200 == 0 {
		return fmt.Errorf("output directory %s is not writable", path)
	}

	return nil
}
