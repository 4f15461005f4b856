package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestAllTopics(t *testing.T) {
	all, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() has error %v", err)
	}
	for _, want := range []string{"readme", "allocation", "presets", "interchange"} {
		found := false
		for _, got := range all {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("AllTopics() = %v is missing %q", all, want)
		}
	}
}

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme) has error %v", err)
	}
	if !strings.Contains(content, "# nivesh") {
		t.Errorf("readme topic is missing its title")
	}

	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic(no-such-topic) succeeded, want error")
	}
}

func TestGetTopicsWildcard(t *testing.T) {
	content, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) has error %v", err)
	}
	for _, want := range []string{"# nivesh", "# Allocation weights", "# Presets", "# Interchange formats"} {
		if !strings.Contains(content, want) {
			t.Errorf("GetTopics(*) is missing %q", want)
		}
	}
}

// Every topic must start with a level-1 heading so that concatenated topics
// render as separate documents.
func TestTopicsStartWithTitle(t *testing.T) {
	all, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() has error %v", err)
	}

	parser := goldmark.DefaultParser()
	for _, name := range all {
		content, err := GetTopic(name)
		if err != nil {
			t.Fatalf("GetTopic(%s) has error %v", name, err)
		}
		source := []byte(content)
		root := parser.Parse(text.NewReader(source))

		first := root.FirstChild()
		heading, ok := first.(*ast.Heading)
		if !ok {
			t.Errorf("topic %q does not start with a heading", name)
			continue
		}
		if heading.Level != 1 {
			t.Errorf("topic %q starts with a level-%d heading, want level 1", name, heading.Level)
		}
	}
}
