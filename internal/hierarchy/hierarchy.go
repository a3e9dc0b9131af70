// Package hierarchy builds the chart-of-accounts tree from flat
// (code, name) pairs. Code length encodes depth: the tree has four
// levels with 1, 2, 4 and 6 digit codes, and each code's parent is a
// positional prefix of it.
package hierarchy

import (
	"sort"

	"github.com/bankscope-dev/bankscope/internal/model"
)

// Entry is a distinct (code, name) pair observed in the balance table.
type Entry struct {
	Code string
	Name string
}

// Node is one account in the tree.
type Node struct {
	Code     string
	Name     string
	Children map[string]*Node
}

// Tree indexes the full account hierarchy for drill-down queries.
type Tree struct {
	roots map[string]*Node
	index map[string]*Node
}

// levelLengths are the code lengths admitted per tree level, in attach
// order. Parents must be attached before their children.
var levelLengths = []int{1, 2, 4, 6}

// parentCode returns the positional prefix identifying a code's parent:
// "14" -> "1", "1401" -> "14", "140199" -> "1401".
func parentCode(code string) string {
	switch len(code) {
	case 2:
		return code[:1]
	case 4:
		return code[:2]
	case 6:
		return code[:4]
	default:
		return ""
	}
}

// Build constructs a Tree from distinct (code, name) pairs. Codes that
// are not purely numeric are discarded. Single-digit codes outside the
// root allow-list are excluded. A code whose parent was never seen is
// silently dropped; that is an accepted data-quality gap in the source
// filings, not an error.
func Build(entries []Entry) *Tree {
	byLength := make(map[int][]Entry)
	for _, e := range entries {
		if !isNumeric(e.Code) {
			continue
		}
		byLength[len(e.Code)] = append(byLength[len(e.Code)], e)
	}

	t := &Tree{
		roots: make(map[string]*Node),
		index: make(map[string]*Node),
	}

	allowedRoots := make(map[string]bool, len(model.RootCodes))
	for _, c := range model.RootCodes {
		allowedRoots[c] = true
	}

	for _, length := range levelLengths {
		for _, e := range byLength[length] {
			if _, seen := t.index[e.Code]; seen {
				continue
			}
			node := &Node{Code: e.Code, Name: e.Name, Children: make(map[string]*Node)}

			if length == 1 {
				if !allowedRoots[e.Code] {
					continue
				}
				t.roots[e.Code] = node
				t.index[e.Code] = node
				continue
			}

			parent, ok := t.index[parentCode(e.Code)]
			if !ok {
				continue // orphan, parent never filed
			}
			parent.Children[e.Code] = node
			t.index[e.Code] = node
		}
	}

	return t
}

// Roots returns the root nodes sorted by code.
func (t *Tree) Roots() []*Node {
	return sortNodes(t.roots)
}

// Node returns the node for a code, if present.
func (t *Tree) Node(code string) (*Node, bool) {
	n, ok := t.index[code]
	return n, ok
}

// ChildrenOf returns the direct children of a code sorted by code.
// Unknown codes yield an empty slice.
func (t *Tree) ChildrenOf(code string) []*Node {
	n, ok := t.index[code]
	if !ok {
		return nil
	}
	return sortNodes(n.Children)
}

// PathTo returns the chain of codes from the root down to code,
// inclusive. Unknown codes yield nil.
func (t *Tree) PathTo(code string) []string {
	if _, ok := t.index[code]; !ok {
		return nil
	}

	var path []string
	for c := code; c != ""; c = parentCode(c) {
		path = append([]string{c}, path...)
	}
	return path
}

// IsLeaf reports whether a code exists and has no children. Unknown
// codes report false.
func (t *Tree) IsLeaf(code string) bool {
	n, ok := t.index[code]
	return ok && len(n.Children) == 0
}

// Size returns the number of nodes attached to the tree.
func (t *Tree) Size() int {
	return len(t.index)
}

func sortNodes(m map[string]*Node) []*Node {
	nodes := make([]*Node, 0, len(m))
	for _, n := range m {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Code < nodes[j].Code })
	return nodes
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
