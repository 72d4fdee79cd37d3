package markup

import "strings"

// WalkFunc is the function signature for Walk callbacks.
// depth is 0 for top-level items. Return a non-nil error to stop the walk.
type WalkFunc func(item Item, depth int) error

// Walk performs a pre-order traversal of items and their children.
// If walkFunc returns a non-nil error, the walk stops immediately and returns that error.
func Walk(items []Item, walkFunc WalkFunc) error {
	return walk(items, 0, walkFunc)
}

func walk(items []Item, depth int, walkFunc WalkFunc) error {
	for _, item := range items {
		if err := walkFunc(item, depth); err != nil {
			return err
		}
		if item.Kind == ItemElement {
			if err := walk(item.Children, depth+1, walkFunc); err != nil {
				return err
			}
		}
	}
	return nil
}

// FindAll returns all items matching the predicate, in pre-order.
func FindAll(items []Item, predicate func(Item) bool) []Item {
	var result []Item

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(items, func(item Item, _ int) error {
		if predicate(item) {
			result = append(result, item)
		}
		return nil
	})

	return result
}

// MaxDepth returns the deepest element nesting level in items.
// Plain text at the top level has depth 0.
func MaxDepth(items []Item) int {
	deepest := 0

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(items, func(item Item, depth int) error {
		if item.Kind == ItemElement && depth+1 > deepest {
			deepest = depth + 1
		}
		return nil
	})

	return deepest
}

// Source rebuilds the source line from items.
// For any line accepted by the parser, Source(items) equals the original line.
func Source(items []Item) string {
	var builder strings.Builder
	writeSource(&builder, items)
	return builder.String()
}

func writeSource(builder *strings.Builder, items []Item) {
	for _, item := range items {
		switch item.Kind {
		case ItemPlainText:
			builder.WriteString(item.Text.Fragment())
		case ItemElement:
			builder.WriteRune(elementOpen)
			for i, tag := range item.Tags {
				if i > 0 {
					builder.WriteRune(tagSeparator)
				}
				builder.WriteString(tag.Fragment())
			}
			builder.WriteRune(headerEnd)
			writeSource(builder, item.Children)
			builder.WriteRune(elementClose)
		}
	}
}
