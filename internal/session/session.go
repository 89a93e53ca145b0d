// Package session drives the user-triggered workflows end to end:
// versioning (retag + commit) and export. It owns the ordering of guards,
// prompts and mutations; the packages it calls stay host-agnostic.
package session

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dubpixel/dpx-FusionVersioning/internal/assembly"
	"github.com/dubpixel/dpx-FusionVersioning/internal/nametag"
	"github.com/dubpixel/dpx-FusionVersioning/internal/preconditions"
	"github.com/dubpixel/dpx-FusionVersioning/internal/prompt"
	"github.com/dubpixel/dpx-FusionVersioning/internal/retag"
)

// Options tunes a versioning run.
type Options struct {
	// SkipUnchanged forwards to retag.Options.
	SkipUnchanged bool
	// Comment is a pre-supplied version comment; when set the comment
	// prompt is skipped.
	Comment string
	// NoPrompt suppresses the comment prompt entirely.
	NoPrompt bool
}

// Versioning is one retag-and-commit invocation over a document.
type Versioning struct {
	Doc     *assembly.Document
	Prompts prompt.Sink
	Opts    Options

	Prefix      nametag.Prefix
	NextVersion int
	Result      retag.Result
	Committed   bool
	Message     string

	// commitFn lets tests stand in for the host's save; defaults to
	// Doc.Commit.
	commitFn func(message string) error
}

// NewVersioning prepares a versioning run.
func NewVersioning(doc *assembly.Document, prompts prompt.Sink, opts Options) *Versioning {
	return &Versioning{Doc: doc, Prompts: prompts, Opts: opts}
}

// Run executes the stages in order. The precondition stage runs before
// any state change; a stage failure aborts the remaining stages.
func (v *Versioning) Run() error {
	stages := []struct {
		name string
		fn   func() error
	}{
		{"check preconditions", v.checkPreconditions},
		{"compute prefix", v.computePrefix},
		{"retag tree", v.retagTree},
		{"commit", v.commit},
	}

	for _, stage := range stages {
		if err := stage.fn(); err != nil {
			return fmt.Errorf("%s: %w", stage.name, err)
		}
	}

	return nil
}

func (v *Versioning) checkPreconditions() error {
	return preconditions.CheckDocument(v.Doc)
}

func (v *Versioning) computePrefix() error {
	// The prefix is derived fresh from the current document name on every
	// invocation, never cached.
	v.Prefix = nametag.ComputePrefix(v.Doc.Name)
	v.NextVersion = v.Doc.NextVersion()
	return nil
}

func (v *Versioning) retagTree() error {
	v.Result = retag.Retag(v.Doc, v.Prefix, v.NextVersion, retag.Options{
		SkipUnchanged: v.Opts.SkipUnchanged,
	})
	return nil
}

// commit saves the document so the file version stays in sync with the
// tags. Nothing is saved when nothing was renamed. A failing save with
// the combined message is retried once with the default-only message.
func (v *Versioning) commit() error {
	if v.Result.TotalRenamed() == 0 {
		return nil
	}

	defaultMessage := v.DefaultMessage()
	message := defaultMessage
	if comment := SanitizeComment(v.comment()); comment != "" {
		message = defaultMessage + " - " + comment
	}

	commit := v.commitFn
	if commit == nil {
		commit = v.Doc.Commit
	}

	if err := commit(message); err != nil {
		if message == defaultMessage {
			return err
		}
		if err := commit(defaultMessage); err != nil {
			return err
		}
		message = defaultMessage
	}

	v.Committed = true
	v.Message = message
	return nil
}

// DefaultMessage is the deterministic commit message used when the user
// supplies no comment or the combined message is rejected.
func (v *Versioning) DefaultMessage() string {
	return fmt.Sprintf("Auto-versioned to v%d (%d %s items)", v.NextVersion, v.Result.TotalRenamed(), v.Prefix)
}

func (v *Versioning) comment() string {
	if v.Opts.Comment != "" {
		return v.Opts.Comment
	}
	if v.Opts.NoPrompt || v.Prompts == nil {
		return ""
	}

	confirmed, text, err := v.Prompts.Text(
		"Version comment",
		"Add an optional comment for this version (or leave blank)",
		"",
	)
	if err != nil || !confirmed {
		// A failed or cancelled prompt falls back to the default message.
		return ""
	}
	return text
}

var commentFilter = regexp.MustCompile(`[^\w\s\-.,!?()]`)

// SanitizeComment strips everything outside word characters, whitespace
// and basic punctuation, and trims the result.
func SanitizeComment(comment string) string {
	return strings.TrimSpace(commentFilter.ReplaceAllString(comment, ""))
}
