package output

import (
	"strings"

	"github.com/alycrisco/Core/internal/core"
)

const (
	// Tree characters
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// Description alignment column
	descriptionColumn = 30
)

// TreeNode represents a node in a rendered tree.
type TreeNode struct {
	Name        string
	Description string
	Children    []*TreeNode
}

// SpecTree builds a tree mirroring spec and its subspecs in declaration
// order. Nodes are labeled with their base name and described by their
// summary attribute when present.
func SpecTree(spec *core.Specification) *TreeNode {
	node := &TreeNode{Name: spec.BaseName()}
	if v, ok := spec.Attributes().Get("summary"); ok {
		if s, ok := v.AsString(); ok {
			node.Description = s
		}
	}
	for _, sub := range spec.Subspecs() {
		node.Children = append(node.Children, SpecTree(sub))
	}
	return node
}

// RenderTree renders root with descriptions aligned at column 30. The root
// line carries the root's full name in bold.
func RenderTree(root *TreeNode, styles *Styles) string {
	var sb strings.Builder
	renderNode(&sb, root, "", true, true, styles)
	return sb.String()
}

// renderNode recursively renders a tree node with proper indentation and styling.
func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isRoot, isLast bool, styles *Styles) {
	if isRoot {
		sb.WriteString(styles.Bold.Render(node.Name))
		if node.Description != "" {
			sb.WriteString("  ")
			sb.WriteString(styles.Muted.Render(node.Description))
		}
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		line := prefix + connector + styles.Noun.Render(node.Name)
		if node.Description != "" {
			visible := len([]rune(prefix+connector)) + len(node.Name)
			padding := descriptionColumn - visible
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding)
			line += styles.Muted.Render(node.Description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i, child := range node.Children {
		childIsLast := i == len(node.Children)-1

		var childPrefix string
		switch {
		case isRoot:
			childPrefix = ""
		case isLast:
			childPrefix = prefix + treeSpace
		default:
			childPrefix = prefix + treeVert
		}

		renderNode(sb, child, childPrefix, false, childIsLast, styles)
	}
}
