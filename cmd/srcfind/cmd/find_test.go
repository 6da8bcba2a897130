package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestFindCommandTextOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.cpp")
	if err := os.WriteFile(path, []byte("class Foo : public Bar {\n  int my_count = 0;\n};\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := runFind(findCmd, []string{"myCount", path})

	w.Close()
	os.Stdout = old
	buf.ReadFrom(r)

	if err != nil {
		t.Fatalf("runFind returned error: %v", err)
	}
	snaps.MatchSnapshot(t, "find_output", buf.String())
}
