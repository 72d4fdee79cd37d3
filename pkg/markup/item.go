package markup

// ItemKind classifies an AST item.
type ItemKind uint8

// Item kinds.
const (
	ItemPlainText ItemKind = iota
	ItemElement
)

// String returns the kind name.
func (k ItemKind) String() string {
	switch k {
	case ItemPlainText:
		return "PlainText"
	case ItemElement:
		return "Element"
	default:
		return "Unknown"
	}
}

// Item is a node of the markup AST.
//
// A plain-text item holds Text, still in escaped form (`\<` is kept as two characters).
// An element item holds a non-empty, order-preserving list of raw tag spans and its children.
// Each source line parses to a []Item, so a whole document is [][]Item.
type Item struct {
	// Kind identifies what type of item this is.
	Kind ItemKind

	// Text is the escaped run for ItemPlainText.
	Text Span

	// Tags are the raw tag names for ItemElement, in source order.
	Tags []Span

	// Children are the nested items for ItemElement. May be empty.
	Children []Item
}

// PlainText creates a plain-text item.
func PlainText(text Span) Item {
	return Item{Kind: ItemPlainText, Text: text}
}

// Element creates an element item.
func Element(tags []Span, children []Item) Item {
	return Item{Kind: ItemElement, Tags: tags, Children: children}
}

// IsElement returns true if the item is an element.
func (it Item) IsElement() bool {
	return it.Kind == ItemElement
}

// TagNames returns the tag fragments of an element.
func (it Item) TagNames() []string {
	if len(it.Tags) == 0 {
		return nil
	}
	names := make([]string, len(it.Tags))
	for i, tag := range it.Tags {
		names[i] = tag.Fragment()
	}
	return names
}
