package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func declFiles(t *testing.T, dir string) []string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, "*.decl"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatalf("no test files in %s", dir)
	}
	return files
}

func declLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func TestGoodDecls(t *testing.T) {
	for _, path := range declFiles(t, "test/testcases/good") {
		for _, line := range declLines(t, path) {
			var out bytes.Buffer
			if err := parseLine(line, "decl", &out); err != nil {
				t.Errorf("%s: %q: %s", path, line, err)
				continue
			}
			if out.Len() == 0 {
				t.Errorf("%s: %q: no output", path, line)
			}
		}
	}
}

func TestBadDecls(t *testing.T) {
	for _, path := range declFiles(t, "test/testcases/bad") {
		for _, line := range declLines(t, path) {
			var out bytes.Buffer
			if err := parseLine(line, "decl", &out); err == nil {
				t.Errorf("%s: %q: expected an error, got %s", path, line, out.String())
			}
		}
	}
}

func TestForEachLineReportsFirstError(t *testing.T) {
	in := strings.NewReader("int x;\n\nint;\nchar c;\n")
	var seen []string
	err := forEachLine(in, "input", func(src string) error {
		seen = append(seen, src)
		return parseLine(src, "decl", &bytes.Buffer{})
	})
	if err != errReported {
		t.Fatalf("expected errReported, got %v", err)
	}
	if len(seen) != 3 {
		t.Fatalf("expected every non blank line to be parsed, got %q", seen)
	}
}

func TestReportErrorCaret(t *testing.T) {
	src := "int x y"
	err := parseLine(src, "type", &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected an error")
	}
	var out bytes.Buffer
	reportError(&out, src, err)
	lines := strings.Split(out.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("short report %q", out.String())
	}
	if lines[1] != src {
		t.Fatalf("expected the source line, got %q", lines[1])
	}
	if lines[2] != "      ^" {
		t.Fatalf("caret in the wrong place: %q", lines[2])
	}
}

func TestTokenizeLine(t *testing.T) {
	var out bytes.Buffer
	if err := tokenizeLine("int *p", &out); err != nil {
		t.Fatal(err)
	}
	expected := "int:int:0\n'*':*:4\nident:p:5\n"
	if out.String() != expected {
		t.Fatalf("expected %q, got %q", expected, out.String())
	}
}
