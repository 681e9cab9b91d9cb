package parser

import (
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/dshills/leaderkey/internal/input/key"
	"github.com/dshills/leaderkey/internal/keymap"
)

// ParseYAML parses a YAML keymap document into a tree. The document root
// must be a mapping containing an items key.
//
// When extend is non-nil the document is merged onto a copy of it: entries
// replace or add to the inherited children, explicit nulls delete them,
// and nested groups extend recursively. The extend group is never mutated.
func ParseYAML(text string, extend *keymap.Group) (*keymap.Group, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &ParseError{Message: "malformed YAML document", Err: err}
	}

	root := resolve(documentRoot(&doc))
	if root == nil || root.Kind != yaml.MappingNode || mappingValue(root, "items") == nil {
		return nil, newError(nil, "document root must be a mapping with an items key", rawValue(root))
	}

	item, err := parseItem(root, nil, extend)
	if err != nil {
		return nil, err
	}
	group, ok := item.(*keymap.Group)
	if !ok {
		// Unreachable given the items check above; guard anyway.
		return nil, newError(nil, "document root did not produce a group", rawValue(root))
	}
	return group, nil
}

// parseItem converts one document node into a keymap item. The node is
// either a short-form command string or a mapping with exactly one of
// items, command or file.
func parseItem(n *yaml.Node, path Path, extend *keymap.Group) (keymap.Item, error) {
	n = resolve(n)

	if isString(n) {
		return parseShortForm(n, path)
	}
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, newError(path, "expected a string or a mapping", rawValue(n))
	}

	itemsNode := mappingValue(n, "items")
	commandNode := mappingValue(n, "command")
	fileNode := mappingValue(n, "file")

	present := 0
	for _, v := range []*yaml.Node{itemsNode, commandNode, fileNode} {
		if v != nil {
			present++
		}
	}
	if present != 1 {
		return nil, newError(path, "exactly one of items, command or file must be present", rawValue(n))
	}

	var item keymap.Item
	switch {
	case commandNode != nil:
		id, err := requireString(commandNode, path.Child("command"), "command")
		if err != nil {
			return nil, err
		}
		item = keymap.Command{ID: id}

	case fileNode != nil:
		file, err := requireString(fileNode, path.Child("file"), "file")
		if err != nil {
			return nil, err
		}
		item = keymap.FileRef{Path: file}

	default:
		group, err := parseGroup(n, itemsNode, path, extend)
		if err != nil {
			return nil, err
		}
		item = group
	}

	if descNode := mappingValue(n, "description"); descNode != nil {
		desc, err := parseDescription(descNode, path.Child("description"))
		if err != nil {
			return nil, err
		}
		item = withDescription(item, desc)
	}
	return item, nil
}

// parseShortForm handles the string form "command-id optional description".
func parseShortForm(n *yaml.Node, path Path) (keymap.Item, error) {
	s := strings.TrimSpace(n.Value)
	if s == "" {
		return nil, newError(path, "empty string is not allowed", n.Value)
	}

	id, desc := s, ""
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		id, desc = s[:i], strings.TrimSpace(s[i:])
	}
	return keymap.Command{ID: id, Desc: desc}, nil
}

// parseGroup builds a group from a mapping node whose items key is
// present. The items value must itself be a mapping, or null standing in
// for an empty one.
func parseGroup(n, itemsNode *yaml.Node, path Path, extend *keymap.Group) (*keymap.Group, error) {
	itemsNode = resolve(itemsNode)
	if !isNull(itemsNode) && itemsNode.Kind != yaml.MappingNode {
		return nil, newError(path.Child("items"), "items must be a mapping or null", rawValue(itemsNode))
	}

	dropInherited := false
	if clearNode := resolve(mappingValue(n, "clear")); clearNode != nil {
		if clearNode.Kind != yaml.ScalarNode || clearNode.Tag != "!!bool" {
			return nil, newError(path.Child("clear"), "clear must be a boolean", rawValue(clearNode))
		}
		dropInherited = clearNode.Value == "true"
	}

	var group *keymap.Group
	if extend != nil && !dropInherited {
		group = extend.Copy()
	} else {
		group = keymap.NewGroup()
	}
	if isNull(itemsNode) {
		return group, nil
	}

	for i := 0; i+1 < len(itemsNode.Content); i += 2 {
		keyNode, valNode := itemsNode.Content[i], resolve(itemsNode.Content[i+1])
		code := keyNode.Value

		kp, err := key.ParseKeyCode(code)
		if err != nil {
			// Grammar failures are attached at the items mapping, not at
			// the individual key, and carry the grammar's own message.
			return nil, &ParseError{
				Message: err.Error(),
				Path:    path.Child("items"),
				Value:   code,
				Err:     err,
			}
		}

		// An explicit null is a removal marker: it deletes an inherited
		// child when extending, and is a harmless placeholder otherwise.
		if isNull(valNode) {
			group.RemoveChild(kp)
			continue
		}

		var childExtend *keymap.Group
		if existing, ok := group.GetChild(kp).(*keymap.Group); ok {
			childExtend = existing
		}

		item, err := parseItem(valNode, path.Child("items").Child(code), childExtend)
		if err != nil {
			return nil, err
		}
		group.SetChild(kp, item)
	}
	return group, nil
}

// requireString enforces that a command or file value is a non-empty
// string.
func requireString(n *yaml.Node, path Path, field string) (string, error) {
	n = resolve(n)
	if !isString(n) {
		return "", newError(path, fmt.Sprintf("%s must be a string", field), rawValue(n))
	}
	if n.Value == "" {
		return "", newError(path, fmt.Sprintf("%s must not be empty", field), n.Value)
	}
	return n.Value, nil
}

// parseDescription enforces that a description is a string or an explicit
// null. An empty string is treated as no description.
func parseDescription(n *yaml.Node, path Path) (string, error) {
	n = resolve(n)
	if isNull(n) {
		return "", nil
	}
	if !isString(n) {
		return "", newError(path, "description must be a string or null", rawValue(n))
	}
	return n.Value, nil
}

func withDescription(item keymap.Item, desc string) keymap.Item {
	switch it := item.(type) {
	case keymap.Command:
		it.Desc = desc
		return it
	case keymap.FileRef:
		it.Desc = desc
		return it
	case *keymap.Group:
		it.Desc = desc
		return it
	}
	return item
}

// documentRoot returns the root content node of a parsed document, or nil
// for an empty document.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	return doc.Content[0]
}

// resolve follows alias nodes to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// mappingValue returns the value node for a key in a mapping, or nil.
func mappingValue(n *yaml.Node, name string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == name {
			return n.Content[i+1]
		}
	}
	return nil
}

func isString(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.ScalarNode && n.Tag == "!!str"
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

// rawValue decodes a node into a generic Go value for error reporting.
func rawValue(n *yaml.Node) any {
	if n == nil {
		return nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return n.Value
	}
	return v
}
