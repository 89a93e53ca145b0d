package session

import (
	"fmt"

	"github.com/dubpixel/dpx-FusionVersioning/internal/assembly"
	"github.com/dubpixel/dpx-FusionVersioning/internal/export"
	"github.com/dubpixel/dpx-FusionVersioning/internal/nametag"
	"github.com/dubpixel/dpx-FusionVersioning/internal/preconditions"
	"github.com/dubpixel/dpx-FusionVersioning/internal/prompt"
)

// ExportOptions tunes an export run.
type ExportOptions struct {
	// OutputDir is a pre-supplied target directory; when set the folder
	// prompt is skipped.
	OutputDir string
	// AssumeYes skips the confirmation prompt.
	AssumeYes bool
}

// Export is one export invocation: confirm, choose a folder, select the
// tagged roots and run the visibility protocol over each.
type Export struct {
	Doc     *assembly.Document
	Prompts prompt.Sink
	Sink    export.MeshExporter
	Opts    ExportOptions

	Prefix    nametag.Prefix
	OutputDir string
	Roots     []*assembly.Node
	Summary   export.Summary
	// Aborted is set when the user declines a prompt. Declining is not an
	// error; the caller decides what to report.
	Aborted bool
}

// NewExport prepares an export run.
func NewExport(doc *assembly.Document, prompts prompt.Sink, sink export.MeshExporter, opts ExportOptions) *Export {
	return &Export{Doc: doc, Prompts: prompts, Sink: sink, Opts: opts}
}

// Run executes the export workflow. When Run returns with Aborted set,
// nothing was mutated.
func (e *Export) Run() error {
	if err := preconditions.CheckDocument(e.Doc); err != nil {
		return fmt.Errorf("check preconditions: %w", err)
	}

	e.Prefix = nametag.ComputePrefix(e.Doc.Name)

	if !e.Opts.AssumeYes {
		confirmed, err := e.Prompts.YesNo(
			"Export tagged items",
			fmt.Sprintf("Export every %s item of %s as STL?", e.Prefix, e.Doc.Name),
		)
		if err != nil {
			return fmt.Errorf("confirmation prompt: %w", err)
		}
		if !confirmed {
			e.Aborted = true
			return nil
		}
	}

	dir := e.Opts.OutputDir
	if dir == "" {
		confirmed, chosen, err := e.Prompts.Folder("Choose an export folder")
		if err != nil {
			return fmt.Errorf("folder prompt: %w", err)
		}
		if !confirmed {
			e.Aborted = true
			return nil
		}
		dir = chosen
	}

	if err := preconditions.ValidateOutputDir(dir); err != nil {
		return fmt.Errorf("validate output directory: %w", err)
	}
	e.OutputDir = dir

	e.Roots = export.SelectRoots(e.Doc.Root, e.Prefix)

	executor := &export.Executor{Sink: e.Sink, Prefix: e.Prefix, OutputDir: dir}
	e.Summary = executor.ExportAll(e.Roots)
	return nil
}
