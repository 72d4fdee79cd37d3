package tag

import "github.com/yaklabco/tuimarkup/pkg/markup"

// Item is a markup item whose element tags have been converted to T.
type Item[T any] struct {
	Kind     markup.ItemKind
	Text     markup.Span
	Tags     []T
	Children []Item[T]
}

// ConvertLine converts the tags of every element in items.
// It fails with a *Error on the first tag that convert rejects.
func ConvertLine[T any](items []markup.Item, convert func(markup.Span) (T, bool)) ([]Item[T], error) {
	converted := make([]Item[T], 0, len(items))

	for _, item := range items {
		if item.Kind == markup.ItemPlainText {
			converted = append(converted, Item[T]{Kind: markup.ItemPlainText, Text: item.Text})
			continue
		}

		tags := make([]T, 0, len(item.Tags))
		for _, span := range item.Tags {
			tag, ok := convert(span)
			if !ok {
				return nil, &Error{Kind: ErrorKindInvalidTag, Span: span}
			}
			tags = append(tags, tag)
		}

		children, err := ConvertLine(item.Children, convert)
		if err != nil {
			return nil, err
		}

		converted = append(converted, Item[T]{Kind: markup.ItemElement, Tags: tags, Children: children})
	}

	return converted, nil
}

// ConvertAST converts every line of a parsed document.
func ConvertAST[T any](ast [][]markup.Item, convert func(markup.Span) (T, bool)) ([][]Item[T], error) {
	converted := make([][]Item[T], 0, len(ast))

	for _, line := range ast {
		items, err := ConvertLine(line, convert)
		if err != nil {
			return nil, err
		}
		converted = append(converted, items)
	}

	return converted, nil
}
