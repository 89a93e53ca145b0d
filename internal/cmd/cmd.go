package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/dubpixel/dpx-FusionVersioning/internal/assembly"
	"github.com/dubpixel/dpx-FusionVersioning/internal/inspect"
	"github.com/dubpixel/dpx-FusionVersioning/internal/prompt"
	"github.com/dubpixel/dpx-FusionVersioning/internal/session"
	"github.com/dubpixel/dpx-FusionVersioning/internal/stl"
	"github.com/dubpixel/dpx-FusionVersioning/internal/ui"
	"github.com/dubpixel/dpx-FusionVersioning/version"
)

type CLI struct {
	Retag      *RetagCmd      `cmd:"" help:"Apply the next version tag to every prefix-matched component and body"`
	Export     *ExportCmd     `cmd:"" help:"Export every tagged node as a separate STL file"`
	Inspect    *InspectCmd    `cmd:"" help:"Inspect an assembly document and show its tree"`
	Completion *CompletionCmd `cmd:"" help:"Generate shell completion scripts"`
	Version    *VersionCmd    `cmd:"" help:"Show version information"`
}

type RetagCmd struct {
	Document      string `arg:"" help:"Assembly document (YAML)"`
	Message       string `help:"Version comment to append to the commit message (skips the prompt)" short:"m"`
	NoInput       bool   `help:"Never prompt; commit with the default message"`
	SkipUnchanged bool   `help:"Skip the rename write when a name is already current"`
}

// Help adds usage examples below the flag list.
func (c *RetagCmd) Help() string {
	return renderRetagHelp()
}

func (c *RetagCmd) Run() error {
	doc, err := assembly.Load(c.Document)
	if err != nil {
		return err
	}

	var sink prompt.Sink = prompt.Interactive{}
	if c.NoInput || c.Message != "" {
		sink = prompt.Static{}
	}

	v := session.NewVersioning(doc, sink, session.Options{
		SkipUnchanged: c.SkipUnchanged,
		Comment:       c.Message,
		NoPrompt:      c.NoInput,
	})

	if err := v.Run(); err != nil {
		return err
	}

	ui.PrintTitle("Versioning Results")
	ui.PrintKeyValue("File prefix", v.Prefix.Underscore)
	ui.PrintKeyValue("Components", fmt.Sprintf("%d renamed, %d skipped", v.Result.ComponentsRenamed, v.Result.ComponentsSkipped))
	ui.PrintKeyValue("Bodies", fmt.Sprintf("%d renamed, %d skipped", v.Result.BodiesRenamed, v.Result.BodiesSkipped))

	for _, nodeErr := range v.Result.Errors {
		ui.PrintWarning("could not rename " + nodeErr.Error())
	}

	switch {
	case v.Committed:
		ui.PrintSuccess(fmt.Sprintf("Document saved! File is now version v%d", v.NextVersion))
		ui.PrintInfo(v.Message)
	case v.Result.TotalRenamed() == 0:
		ui.PrintInfo("Nothing matched the prefix; document left untouched")
	}

	return nil
}

type ExportCmd struct {
	Document string `arg:"" help:"Assembly document (YAML)"`
	Output   string `help:"Output directory for STL files (skips the folder prompt)" short:"o"`
	Yes      bool   `help:"Skip the confirmation prompt" short:"y"`
}

func (c *ExportCmd) Run() error {
	doc, err := assembly.Load(c.Document)
	if err != nil {
		return err
	}

	e := session.NewExport(doc, prompt.Interactive{}, stl.NewExporter(), session.ExportOptions{
		OutputDir: c.Output,
		AssumeYes: c.Yes,
	})

	if err := e.Run(); err != nil {
		return err
	}
	if e.Aborted {
		ui.PrintInfo("Export cancelled")
		return nil
	}

	ui.PrintTitle("Export Results")
	if len(e.Roots) == 0 {
		ui.PrintInfo(fmt.Sprintf("No %s items to export", e.Prefix))
		return nil
	}

	for _, file := range e.Summary.Files {
		ui.PrintItem(file)
	}
	for _, failure := range e.Summary.Failures {
		ui.PrintError(failure.Error())
	}

	if len(e.Summary.Failures) > 0 {
		return fmt.Errorf("%d of %d exports failed", len(e.Summary.Failures), len(e.Roots))
	}
	ui.PrintSuccess(fmt.Sprintf("Exported %d items to %s", e.Summary.Exported, e.OutputDir))
	return nil
}

type InspectCmd struct {
	Document string `arg:"" help:"Assembly document (YAML)"`
	Source   bool   `help:"Print the raw document with syntax highlighting"`
}

func (c *InspectCmd) Run() error {
	inspector := inspect.NewInspector()
	if c.Source {
		return inspector.Source(c.Document)
	}
	return inspector.Inspect(c.Document)
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := version.Get()
	fmt.Println(info.String())
	return nil
}

// Parse parses command line arguments and executes the appropriate command.
func Parse() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("dpxver"),
		kong.Description("Prefix-based version tagging and STL export for assembly documents"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}
