package docs

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics checks that every topic listed in the readme exists, and that
// every topic is listed.
func TestTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatal(err)
	}
	var listed []string
	for _, m := range regexp.MustCompile(`(?m)^\*\s+([^:]+):`).FindAllStringSubmatch(readme, -1) {
		listed = append(listed, strings.TrimSpace(m[1]))
	}

	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("readme lists %q: %v", topic, err)
		}
	}
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error: %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

// TestHeadings checks that each topic is a single document with one title.
func TestHeadings(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range append(all, "readme") {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			var titles []string
			ast.Walk(goldmark.DefaultParser().Parse(text.NewReader(source)), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
					titles = append(titles, string(h.Lines().Value(source)))
				}
				return ast.WalkContinue, nil
			})
			if len(titles) != 1 {
				t.Errorf("topic %q has titles %q, want exactly one", topic, titles)
			}
		})
	}
}

func TestGetTopics_All(t *testing.T) {
	doc, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"# Accounting", "# Data format", "# Preferences"} {
		if !strings.Contains(doc, title) {
			t.Errorf("GetTopics(\"*\") is missing %q", title)
		}
	}
	if strings.Contains(doc, "Use `dash topic <topic>`") {
		t.Errorf("GetTopics(\"*\") must not include the readme")
	}
	if _, err := GetTopic("unknown"); err == nil {
		t.Errorf("GetTopic(\"unknown\") want error")
	}
}

// Fenced blocks run by TestExamples, in order, each in a bash shell:
//   - "bash setup" starts a new scenario in an empty folder,
//   - "bash run" records its output,
//   - "console check" compares the last recorded output,
//   - "bash check" must succeed.
type example struct {
	kind string
	code string
	line int
}

func examples(t *testing.T, file string) []example {
	t.Helper()
	source, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	var found []example
	ast.Walk(goldmark.DefaultParser().Parse(text.NewReader(source)), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || !entering || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(source))
		switch kind {
		case "bash setup", "bash run", "bash check", "console check":
		default:
			return ast.WalkContinue, nil
		}
		var code strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			seg := fcb.Lines().At(i)
			code.Write(seg.Value(source))
		}
		line := bytes.Count(source[:fcb.Info.Segment.Start], []byte("\n")) + 1
		found = append(found, example{kind: kind, code: code.String(), line: line})
		return ast.WalkContinue, nil
	})
	return found
}

// TestExamples runs the examples of the topics and of the project readme
// with a freshly built dash.
func TestExamples(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	bin := t.TempDir()
	build := exec.Command("go", "build", "-o", filepath.Join(bin, "dash"), "../dash/")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build dash: %v\n%s", err, out)
	}

	env := []string{fmt.Sprintf("PATH=%s%c%s", bin, os.PathListSeparator, os.Getenv("PATH"))}
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "DASH_") && !strings.HasPrefix(kv, "PATH=") {
			env = append(env, kv)
		}
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			dir, last := t.TempDir(), ""
			for _, ex := range examples(t, file) {
				where := fmt.Sprintf("%s:%d", file, ex.line)
				if ex.kind == "console check" {
					got := strings.ReplaceAll(strings.TrimSpace(last), "\t", "        ")
					if want := strings.TrimSpace(ex.code); got != want {
						t.Errorf("%s: output mismatch:\ngot:\n%s\nwant:\n%s", where, got, want)
					}
					continue
				}
				if ex.kind == "bash setup" {
					dir = t.TempDir()
				}

				cmd := exec.Command("bash", "-c", "set -e; "+ex.code)
				cmd.Dir, cmd.Env = dir, env
				output, err := cmd.CombinedOutput()
				if ex.kind == "bash run" {
					last = string(output)
				}
				switch {
				case err == nil:
				case ex.kind == "bash check":
					t.Errorf("%s: check failed: %v\n%s", where, err, output)
				default:
					t.Fatalf("%s: %s failed: %v\n%s", where, ex.kind, err, output)
				}
			}
		})
	}
}
