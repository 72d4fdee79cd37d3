package markup_test

import (
	"testing"

	"github.com/yaklabco/tuimarkup/pkg/markup"
)

func TestSpan_Take(t *testing.T) {
	t.Parallel()

	s := markup.NewSpan("hello world", 3)
	head, rest := s.Take(5)

	if head.Fragment() != "hello" || rest.Fragment() != " world" {
		t.Fatalf("unexpected split %q / %q", head.Fragment(), rest.Fragment())
	}
	if rest.Offset() != 5 || rest.Len() != 6 {
		t.Errorf("expected rest offset 5 len 6, got %d %d", rest.Offset(), rest.Len())
	}
	if rest.Line() != 3 || rest.Column() != 6 {
		t.Errorf("expected rest at 3:6, got %d:%d", rest.Line(), rest.Column())
	}

	all, empty := s.Take(100)
	if all.Fragment() != "hello world" || !empty.IsEmpty() {
		t.Errorf("expected clamped take, got %q / %q", all.Fragment(), empty.Fragment())
	}
}

func TestSpan_Column(t *testing.T) {
	t.Parallel()

	line := "aé日x"
	s := markup.NewSpan(line, 1)

	tests := []struct {
		offset int
		column int
	}{
		{0, 1},
		{1, 2},
		{3, 3},
		{6, 4},
	}

	for _, testCase := range tests {
		sub := s.Slice(testCase.offset, len(line))
		if got := sub.Column(); got != testCase.column {
			t.Errorf("offset %d: expected column %d, got %d", testCase.offset, testCase.column, got)
		}
	}
}

func TestSpan_Slice(t *testing.T) {
	t.Parallel()

	_, rest := markup.NewSpan("0123456789", 1).Take(2)

	sub := rest.Slice(1, 4)
	if sub.Fragment() != "345" || sub.Offset() != 3 {
		t.Errorf("expected %q at 3, got %q at %d", "345", sub.Fragment(), sub.Offset())
	}

	clamped := rest.Slice(-5, 50)
	if clamped.Fragment() != "23456789" {
		t.Errorf("expected clamped slice, got %q", clamped.Fragment())
	}

	if !rest.Slice(4, 2).IsEmpty() {
		t.Error("expected inverted bounds to give an empty span")
	}
}

func TestSpan_Runes(t *testing.T) {
	t.Parallel()

	s := markup.NewSpan("<日本>", 1)

	first, ok := s.FirstRune()
	if !ok || first != '<' {
		t.Errorf("expected first rune '<', got %q (%v)", first, ok)
	}
	if !s.HasPrefixRune('>', '<') {
		t.Error("expected prefix match")
	}

	last := s.LastRune()
	if last.Fragment() != ">" || last.Column() != 4 {
		t.Errorf("expected last rune '>' at column 4, got %q at %d", last.Fragment(), last.Column())
	}

	_, inner := s.Take(1)
	mid, _ := inner.Take(6)
	if got := mid.LastRune().Fragment(); got != "本" {
		t.Errorf("expected last rune 本, got %q", got)
	}

	empty := markup.NewSpan("", 1)
	if _, ok := empty.FirstRune(); ok {
		t.Error("expected no first rune in empty span")
	}
	if empty.HasPrefixRune('<') {
		t.Error("expected no prefix in empty span")
	}
	if !empty.LastRune().IsEmpty() {
		t.Error("expected empty last rune span")
	}
}
