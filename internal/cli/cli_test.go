package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphclone/codec/yamlgraph"
	"github.com/katalvlaran/graphclone/container"
)

const fixture = `
&root
name: root
child: &c
  parent: *root
  self: *c
again: *c
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	if err := os.WriteFile(path, []byte(fixture), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	return path
}

func testCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func TestCloneStdout(t *testing.T) {
	path := writeFixture(t)
	cloneOutput, cloneEager, verbose = "", false, false

	cmd, out, errOut := testCmd()
	if err := runClone(cmd, []string{path}); err != nil {
		t.Fatalf("runClone() error = %v", err)
	}

	v, err := yamlgraph.Decode(out.Bytes())
	if err != nil {
		t.Fatalf("clone output is not valid YAML: %v\n%s", err, out.String())
	}
	root, ok := container.AsNode(v)
	if !ok {
		t.Fatalf("clone output root is %T", v)
	}
	child, _ := root.Get("child")
	again, _ := root.Get("again")
	if child != again {
		t.Error("shared child should decode to one node")
	}
	parent, _ := child.(*container.Node).Get("parent")
	if parent != any(root) {
		t.Error("child.parent should point back to root")
	}
	if !strings.Contains(errOut.String(), "clone: done") {
		t.Errorf("expected summary log on stderr, got %q", errOut.String())
	}
}

func TestCloneOutputFile(t *testing.T) {
	path := writeFixture(t)
	dst := filepath.Join(t.TempDir(), "copy.yaml")
	cloneOutput, cloneEager, verbose = dst, true, true
	defer func() { cloneOutput, cloneEager, verbose = "", false, false }()

	cmd, out, errOut := testCmd()
	if err := runClone(cmd, []string{path}); err != nil {
		t.Fatalf("runClone() error = %v", err)
	}
	if !strings.Contains(out.String(), "Clone written to") {
		t.Errorf("unexpected stdout %q", out.String())
	}
	if !strings.Contains(errOut.String(), "level=DEBUG") {
		t.Error("--verbose should enable debug records")
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if !strings.Contains(string(data), "&n1") {
		t.Errorf("expected anchors in output:\n%s", data)
	}
}

func TestCloneMissingFile(t *testing.T) {
	cmd, _, _ := testCmd()
	if err := runClone(cmd, []string{filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestInspect(t *testing.T) {
	path := writeFixture(t)

	cmd, out, _ := testCmd()
	if err := runInspect(cmd, []string{path}); err != nil {
		t.Fatalf("runInspect() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"containers: 2", "shared: 1", "cycles: 2", "$.child.parent", "$.child.self"} {
		if !strings.Contains(got, want) {
			t.Errorf("inspect output missing %q:\n%s", want, got)
		}
	}
}

func TestInspectScalarDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scalar.yaml")
	if err := os.WriteFile(path, []byte("42\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd, out, _ := testCmd()
	if err := runInspect(cmd, []string{path}); err != nil {
		t.Fatalf("runInspect() error = %v", err)
	}
	if out.String() != "containers: 0\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}
