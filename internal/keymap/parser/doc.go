// Package parser builds keymap trees from YAML configuration documents.
//
// A document is YAML, or YAML inside the first fenced code block of a
// Markdown file. The schema:
//
//	items:                      # required at root; mapping or null
//	  <key-code>: <command-id and optional description>
//	  <key-code>: null          # removal marker when extending
//	  <key-code>:
//	    description: <string>   # optional on any item
//	    command: <string>       # exactly one of command/file/items
//	  <key-code>:
//	    file: <string>
//	  <key-code>:
//	    clear: <bool>           # group only; drop inherited children
//	    items: { ... }          # nested groups, recursive
//
// Parsing is a pure function from document text to a fresh tree. When an
// extend group is supplied, its children are copied into the new tree
// before the document's entries are merged on top; the extend group itself
// is never mutated, so the previously active tree stays valid while a
// reload is in flight.
//
// Any schema violation aborts the parse and is reported as a *ParseError
// carrying a breadcrumb path into the document and the offending value.
package parser
