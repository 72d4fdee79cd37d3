// Package markup parses the tui markup language into a positioned AST.
//
// The language marks up text with inline, nestable elements:
//
//	I have a <green green text> and a <bg:blue,b <i nested> one>
//
// Grammar, applied to each source line independently:
//
//	line        = item*
//	item        = element | plain_text
//	plain_text  = (normal_char | '\' escapable)+
//	normal_char = any char except '<', '>', '\'
//	escapable   = '<' | '>' | '\'
//	element     = '<' tag_list ' ' item* '>'
//	tag_list    = tag_name (',' tag_name)*
//	tag_name    = (ASCII alnum | ':' | '+' | '-')+
//
// The parser keeps escape sequences in plain text untouched and never interprets
// tag names; see Unescape and the tag package for those steps.
package markup
