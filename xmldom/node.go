package xmldom

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Node is a navigable XML element. Name.Space holds the resolved namespace
// URI (encoding/xml resolves prefixes during decoding), so lookups are done
// by (namespace URI, local name) pairs rather than document prefixes.
type Node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Node
	Text     string
}

// Parse builds a node tree from an XML document, returning its root element.
func Parse(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)

	var root *Node
	var stack []*Node

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse XML: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &Node{Name: t.Name, Attrs: t.Copy().Attr}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			} else if root == nil {
				root = node
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("failed to parse XML: no root element")
	}

	trimText(root)

	return root, nil
}

func trimText(n *Node) {
	n.Text = strings.TrimSpace(n.Text)
	for _, child := range n.Children {
		trimText(child)
	}
}

// SelectChild returns the first direct child matching the namespace URI and
// local name, or nil when no child matches.
func (n *Node) SelectChild(space, local string) *Node {
	for _, child := range n.Children {
		if child.Name.Space == space && child.Name.Local == local {
			return child
		}
	}
	return nil
}

// SelectChildren returns all direct children matching the namespace URI and
// local name, in document order.
func (n *Node) SelectChildren(space, local string) []*Node {
	var matched []*Node
	for _, child := range n.Children {
		if child.Name.Space == space && child.Name.Local == local {
			matched = append(matched, child)
		}
	}
	return matched
}

// ChildText returns the text content of the first matching direct child, or
// an empty string when no child matches.
func (n *Node) ChildText(space, local string) string {
	child := n.SelectChild(space, local)
	if child == nil {
		return ""
	}
	return child.Text
}

// Attr returns the value of the named attribute, or an empty string. An
// empty space matches attributes without a namespace.
func (n *Node) Attr(space, local string) string {
	for _, attr := range n.Attrs {
		if attr.Name.Space == space && attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// HasChildIn reports whether any direct child lives in the given namespace.
func (n *Node) HasChildIn(space string) bool {
	for _, child := range n.Children {
		if child.Name.Space == space {
			return true
		}
	}
	return false
}

// ChildNamespaces returns the distinct namespace URIs of the node's direct
// children, in document order. Children without a namespace are skipped.
func (n *Node) ChildNamespaces() []string {
	var spaces []string
	seen := make(map[string]bool)
	for _, child := range n.Children {
		if child.Name.Space == "" || seen[child.Name.Space] {
			continue
		}
		seen[child.Name.Space] = true
		spaces = append(spaces, child.Name.Space)
	}
	return spaces
}
