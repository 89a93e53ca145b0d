package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dubpixel/dpx-FusionVersioning/internal/assembly"
	"github.com/dubpixel/dpx-FusionVersioning/internal/prompt"
)

func component(name string, children ...*assembly.Node) *assembly.Node {
	n := &assembly.Node{Name: name, Kind: assembly.KindComponent, Visible: true}
	for _, c := range children {
		c.Parent = n
		n.Child = append(n.Child, c)
	}
	return n
}

func body(name string) *assembly.Node {
	return &assembly.Node{Name: name, Kind: assembly.KindBody, Visible: true}
}

const widgetDoc = `name: dpx_widget.f3d
version: 3
root:
  name: widget
  bodies:
    - name: dpx_lever
    - name: dpx_bracket_v2
    - name: std_screw
`

func loadWidget(t *testing.T) *assembly.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dpx_widget.yaml")
	if err := os.WriteFile(path, []byte(widgetDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := assembly.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func bodyNames(doc *assembly.Document) []string {
	var names []string
	for _, b := range doc.Root.Bodies() {
		names = append(names, b.Name)
	}
	return names
}

func TestVersioningEndToEnd(t *testing.T) {
	doc := loadWidget(t)
	v := NewVersioning(doc, prompt.Static{}, Options{NoPrompt: true})

	if err := v.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := bodyNames(doc)
	want := []string{"dpx_lever_v4", "dpx_bracket_v4", "std_screw"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("body %d = %q, want %q", i, got[i], want[i])
		}
	}

	if v.Result.BodiesRenamed != 2 || v.Result.BodiesSkipped != 1 {
		t.Errorf("counts = %d/%d, want 2/1", v.Result.BodiesRenamed, v.Result.BodiesSkipped)
	}
	if !v.Committed || doc.Version != 4 {
		t.Errorf("committed=%v version=%d, want committed v4", v.Committed, doc.Version)
	}
	if v.Message != "Auto-versioned to v4 (2 dpx_ items)" {
		t.Errorf("message = %q", v.Message)
	}
}

func TestVersioningAppendsSanitizedComment(t *testing.T) {
	doc := loadWidget(t)
	sink := prompt.Static{TextConfirmed: true, TextValue: "tuned: lever fit!"}
	v := NewVersioning(doc, sink, Options{})

	if err := v.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "Auto-versioned to v4 (2 dpx_ items) - tuned lever fit!"
	if v.Message != want {
		t.Errorf("message = %q, want %q", v.Message, want)
	}
}

func TestVersioningDropsEmptyComment(t *testing.T) {
	tests := []struct {
		name string
		sink prompt.Sink
	}{
		{"cancelled prompt", prompt.Static{TextConfirmed: false, TextValue: "ignored"}},
		{"comment sanitizes away", prompt.Static{TextConfirmed: true, TextValue: "<<<>>>"}},
		{"blank comment", prompt.Static{TextConfirmed: true, TextValue: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := loadWidget(t)
			v := NewVersioning(doc, tt.sink, Options{})
			if err := v.Run(); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if v.Message != v.DefaultMessage() {
				t.Errorf("message = %q, want default %q", v.Message, v.DefaultMessage())
			}
		})
	}
}

func TestVersioningSkipsCommitWhenNothingRenamed(t *testing.T) {
	doc := loadWidget(t)
	doc.Name = "zzz_other.f3d"

	v := NewVersioning(doc, prompt.Static{}, Options{NoPrompt: true})
	if err := v.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if v.Committed || doc.Version != 3 {
		t.Errorf("document committed with zero renames: committed=%v version=%d", v.Committed, doc.Version)
	}
}

func TestVersioningPreconditionsRunBeforeMutation(t *testing.T) {
	lever := body("dpx_lever")
	doc := &assembly.Document{Name: "dpx_widget.f3d", Version: 0, Root: component("widget", lever)}

	v := NewVersioning(doc, prompt.Static{}, Options{NoPrompt: true})
	if err := v.Run(); err == nil {
		t.Fatal("never-saved document passed preconditions")
	}
	if lever.Name != "dpx_lever" {
		t.Errorf("tree mutated before precondition failure: %q", lever.Name)
	}
}

func TestVersioningCommitRetriesWithDefaultMessage(t *testing.T) {
	doc := loadWidget(t)
	v := NewVersioning(doc, prompt.Static{TextConfirmed: true, TextValue: "my comment"}, Options{})

	var messages []string
	v.commitFn = func(message string) error {
		messages = append(messages, message)
		if len(messages) == 1 {
			return errors.New("host rejected message")
		}
		return nil
	}

	if err := v.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(messages) != 2 {
		t.Fatalf("commit called %d times, want 2", len(messages))
	}
	if messages[0] == messages[1] {
		t.Error("retry used the same message")
	}
	if messages[1] != v.DefaultMessage() {
		t.Errorf("retry message = %q, want default", messages[1])
	}
	if v.Message != v.DefaultMessage() {
		t.Errorf("recorded message = %q, want default", v.Message)
	}
}

func TestVersioningCommitFailureSurfaced(t *testing.T) {
	doc := loadWidget(t)
	v := NewVersioning(doc, prompt.Static{}, Options{NoPrompt: true})
	v.commitFn = func(string) error { return errors.New("disk full") }

	err := v.Run()
	if err == nil {
		t.Fatal("Run succeeded with a failing commit")
	}
	// The renamed state stays applied in memory; the user retries the save.
	if bodyNames(doc)[0] != "dpx_lever_v4" {
		t.Error("rename rolled back on commit failure")
	}
}

func TestSanitizeComment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "adjusted tolerances", "adjusted tolerances"},
		{"allowed punctuation", "fits now - really (v2)!?", "fits now - really (v2)!?"},
		{"strips symbols", "lever <fix> & \"bore\"", "lever fix  bore"},
		{"strips to empty", "<<<@#$>>>", ""},
		{"trims whitespace", "  spaced  ", "spaced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeComment(tt.input); got != tt.expected {
				t.Errorf("SanitizeComment(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
