package markup_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/tuimarkup/pkg/markup"
)

func mustParseLine(t *testing.T, line string) []markup.Item {
	t.Helper()

	items, err := markup.ParseLine(line, 1)
	if err != nil {
		t.Fatalf("ParseLine(%q) returned error: %v", line, err)
	}
	return items
}

func TestWalk(t *testing.T) {
	t.Parallel()

	items := mustParseLine(t, "a <b x <i y>> z")

	type visit struct {
		kind  markup.ItemKind
		depth int
	}

	var visited []visit
	err := markup.Walk(items, func(item markup.Item, depth int) error {
		visited = append(visited, visit{item.Kind, depth})
		return nil
	})
	if err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}

	expected := []visit{
		{markup.ItemPlainText, 0},
		{markup.ItemElement, 0},
		{markup.ItemPlainText, 1},
		{markup.ItemElement, 1},
		{markup.ItemPlainText, 2},
		{markup.ItemPlainText, 0},
	}

	if len(visited) != len(expected) {
		t.Fatalf("expected %d visits, got %d", len(expected), len(visited))
	}
	for i, exp := range expected {
		if visited[i] != exp {
			t.Errorf("visit %d: expected %+v, got %+v", i, exp, visited[i])
		}
	}
}

func TestWalk_EarlyStop(t *testing.T) {
	t.Parallel()

	items := mustParseLine(t, "a <b x <i y>> z")
	errStop := errors.New("stop")

	count := 0
	err := markup.Walk(items, func(item markup.Item, _ int) error {
		count++
		if item.IsElement() {
			return errStop
		}
		return nil
	})

	if !errors.Is(err, errStop) {
		t.Errorf("expected errStop, got %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 visits before stop, got %d", count)
	}
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	items := mustParseLine(t, "<red one> two <b,i three <u four>>")

	elements := markup.FindAll(items, markup.Item.IsElement)
	if len(elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elements))
	}

	got := elements[1].TagNames()
	if len(got) != 2 || got[0] != "b" || got[1] != "i" {
		t.Errorf("expected tags [b i], got %v", got)
	}
}

func TestMaxDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     string
		expected int
	}{
		{"", 0},
		{"plain", 0},
		{"<b x>", 1},
		{"<b <i <u x>>> <s y>", 3},
	}

	for _, testCase := range tests {
		items := mustParseLine(t, testCase.line)
		if got := markup.MaxDepth(items); got != testCase.expected {
			t.Errorf("MaxDepth(%q): expected %d, got %d", testCase.line, testCase.expected, got)
		}
	}
}

func TestItemKind_String(t *testing.T) {
	t.Parallel()

	if got := markup.ItemPlainText.String(); got != "PlainText" {
		t.Errorf("expected PlainText, got %q", got)
	}
	if got := markup.ItemElement.String(); got != "Element" {
		t.Errorf("expected Element, got %q", got)
	}
}
