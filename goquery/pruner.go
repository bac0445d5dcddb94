package goquery

import (
	"github.com/mferenc/distill"
	"golang.org/x/net/html"
)

// contentTags are never pruned regardless of density.
var contentTags = map[string]bool{
	"p":  true,
	"h1": true,
	"h2": true,
}

// Pruner removes low-density subtrees from parsed HTML. Density is the
// subtree depth; at every level, element children strictly below the
// level's threshold are detached together with their subtrees.
type Pruner struct {
	opts distill.Options
}

// NewPruner returns a Pruner for the given options.
// Returns EINVALID if the options do not validate.
func NewPruner(opts distill.Options) (*Pruner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Pruner{opts: opts}, nil
}

// Prune mutates the tree rooted at root, removing low-density subtrees
// level by level. Content tags (p, h1, h2), nodes containing an h1, and
// under forced mode nodes containing more than three paragraphs survive
// regardless of density. Survivors are pruned recursively.
func (p *Pruner) Prune(root *html.Node) {
	if root == nil {
		return
	}
	p.pruneChildren(root)
}

func (p *Pruner) pruneChildren(parent *html.Node) {
	densities := DensityMap(parent)
	if len(densities) == 0 {
		return
	}
	threshold := p.threshold(densities)

	// Snapshot the element children so removal cannot skip siblings.
	children := make([]*html.Node, 0, len(densities))
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}

	for _, c := range children {
		if !p.exempt(c) && float64(densities[c]) < threshold {
			parent.RemoveChild(c)
			continue
		}
		p.pruneChildren(c)
	}
}

// threshold derives the pruning cutoff from the level's densities.
func (p *Pruner) threshold(densities map[*html.Node]int) float64 {
	sum := 0
	for _, d := range densities {
		sum += d
	}
	if p.opts.Strategy == distill.StrategyAverage {
		return float64(sum) / float64(len(densities))
	}
	return float64(sum) * p.opts.Coefficient
}

func (p *Pruner) exempt(n *html.Node) bool {
	if contentTags[n.Data] {
		return true
	}
	if containsTag(n, "h1") {
		return true
	}
	if p.opts.Forced && countTag(n, "p") > 3 {
		return true
	}
	return false
}

// containsTag reports whether n has a descendant element with the tag.
func containsTag(n *html.Node, tag string) bool {
	stack := []*html.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				return true
			}
			stack = append(stack, c)
		}
	}
	return false
}

// countTag returns the number of descendant elements with the tag.
func countTag(n *html.Node, tag string) int {
	count := 0
	stack := []*html.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				count++
			}
			stack = append(stack, c)
		}
	}
	return count
}
