package goquery

import "golang.org/x/net/html"

// Depth returns the depth of the subtree rooted at n. A node with no
// children has depth 0; otherwise depth is one more than the deepest
// child. Text and comment children count the same as elements, so
// <p>text</p> has depth 1.
//
// The traversal is iterative, so arbitrarily deep documents cannot
// exhaust the stack.
func Depth(n *html.Node) int {
	if n == nil || n.FirstChild == nil {
		return 0
	}

	type frame struct {
		node     *html.Node
		expanded bool
	}

	depths := make(map[*html.Node]int)
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.FirstChild == nil {
			depths[f.node] = 0
			continue
		}

		// First visit: requeue behind the children so they resolve first.
		if !f.expanded {
			stack = append(stack, frame{node: f.node, expanded: true})
			for c := f.node.FirstChild; c != nil; c = c.NextSibling {
				stack = append(stack, frame{node: c})
			}
			continue
		}

		deepest := 0
		for c := f.node.FirstChild; c != nil; c = c.NextSibling {
			if d := depths[c]; d > deepest {
				deepest = d
			}
		}
		depths[f.node] = deepest + 1
	}

	return depths[n]
}

// DensityMap returns the depth of every element child of parent, keyed by
// node identity so same-shaped siblings stay distinct. Text and comment
// children get no entry of their own but still count toward the depths.
// A parent with no element children yields an empty map.
func DensityMap(parent *html.Node) map[*html.Node]int {
	m := make(map[*html.Node]int)
	if parent == nil {
		return m
	}
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			m[c] = Depth(c)
		}
	}
	return m
}
