package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/guiscale/pkg/metadata"
)

func metadataRoot(section map[string]any) metadata.View {
	return metadata.NewMapView(map[string]any{"scaling": section})
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := testCLI().RootCommand()

	want := map[string]bool{"analyze": false, "browse": false, "schema": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "button.png.moremcmeta", nineSliceJSON)

	out, err := execute(t, testCLI(), "analyze", path)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.Contains(out, "nine_slice") {
		t.Errorf("output missing scaling kind:\n%s", out)
	}
}

func TestAnalyzeCommand_Failure(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", nineSliceJSON)
	bad := writeFile(t, dir, "bad.json", `{"scaling": {"type": "mosaic"}}`)

	out, err := execute(t, testCLI(), "analyze", good, bad)
	if err == nil {
		t.Fatal("expected an error when a file is invalid")
	}
	if !strings.Contains(out, "UNKNOWN_TYPE") || !strings.Contains(out, `"mosaic"`) {
		t.Errorf("output missing failure details:\n%s", out)
	}
}

func TestAnalyzeCommand_RequiresArgs(t *testing.T) {
	if _, err := execute(t, testCLI(), "analyze"); err == nil {
		t.Error("analyze without files should fail")
	}
}

func TestAnalyzeCommand_SectionFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "panel.toml", nestedTOML)

	if _, err := execute(t, testCLI(), "analyze", path); err == nil {
		t.Fatal("expected missing section without --section")
	}

	t.Setenv("GUISCALE_SECTION", " gui ")
	out, err := execute(t, testCLI(), "analyze", "--json", path)
	if err != nil {
		t.Fatalf("analyze with GUISCALE_SECTION: %v", err)
	}
	if !strings.Contains(out, `"type": "stretch"`) {
		t.Errorf("output = %s", out)
	}

	// An explicit flag overrides the environment.
	if _, err := execute(t, testCLI(), "analyze", "--section", "other", path); err == nil {
		t.Error("expected --section to override the environment")
	}
}

func TestAnalyzeCommand_LoggerAttached(t *testing.T) {
	var logs bytes.Buffer
	c := New(&logs, LogDebug)
	path := writeFile(t, t.TempDir(), "a.json", nineSliceJSON)

	if _, err := execute(t, c, "analyze", path); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.Contains(logs.String(), "analysis succeeded") {
		t.Errorf("expected debug log from the CLI logger, got:\n%s", logs.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	c := testCLI()
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestSchemaCommand(t *testing.T) {
	out, err := execute(t, testCLI(), "schema")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	for _, want := range []string{`"stretch" | "tile" | "nine_slice"`, "width", "bottom"} {
		if !strings.Contains(out, want) {
			t.Errorf("schema output missing %q:\n%s", want, out)
		}
	}
}

func TestBrowseCommand_NoFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.txt", "nothing here")

	out, err := execute(t, testCLI(), "browse", dir)
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	if !strings.Contains(out, "No metadata files found") {
		t.Errorf("output = %q", out)
	}
}

func TestBrowseCommand_MissingDir(t *testing.T) {
	if _, err := execute(t, testCLI(), "browse", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("browse of a missing directory should fail")
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, testCLI(), "completion", shell)
			if err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out, appName) {
				t.Errorf("completion script does not mention %s", appName)
			}
		})
	}

	if _, err := execute(t, testCLI(), "completion", "tcsh"); err == nil {
		t.Error("unsupported shell should fail")
	}
}
