// Package tree provides a decision-tree representation with prediction
// and cost-complexity pruning. Trees arrive pre-built (loaded or
// constructed by a caller); this package never grows them.
package tree

import (
	"fmt"

	"github.com/statlearn/modelselect/core/model"
	"github.com/statlearn/modelselect/dataset"
	"github.com/statlearn/modelselect/pkg/errors"
)

// Node is one tree node. Interior nodes split on a feature: numeric
// splits send values <= Threshold left; categorical splits send labels
// contained in Categories left. Every node, interior or not, carries the
// value and training risk it would have as a leaf, which is what pruning
// collapses to.
type Node struct {
	Feature    string
	Threshold  float64
	Categories []string

	Left  *Node
	Right *Node

	// Value is the prediction at this node when it is (or becomes) a leaf.
	Value dataset.Value
	// Risk is the training risk of this node collapsed to a leaf
	// (misclassified count or squared-error sum).
	Risk float64
	// Samples is the number of training records that reached this node.
	Samples int
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Left = n.Left.clone()
	c.Right = n.Right.clone()
	if n.Categories != nil {
		c.Categories = make([]string, len(n.Categories))
		copy(c.Categories, n.Categories)
	}
	return &c
}

// Tree is a fitted decision tree.
type Tree struct {
	Root *Node
}

// New wraps a root node. The root must be non-nil.
func New(root *Node) (*Tree, error) {
	if root == nil {
		return nil, errors.NewValueError("tree.New", "nil root")
	}
	return &Tree{Root: root}, nil
}

// Predict routes the record down the tree and returns the leaf value.
func (t *Tree) Predict(rec dataset.Record) (dataset.Value, error) {
	node := t.Root
	for !node.IsLeaf() {
		v, ok := rec[node.Feature]
		if !ok {
			return dataset.Value{}, errors.Wrapf(errors.ErrUnknownFeature, "tree: split feature %q", node.Feature)
		}
		if node.Categories != nil {
			if v.Kind != dataset.Categorical {
				return dataset.Value{}, errors.Newf("tree: feature %q: categorical split on numeric value", node.Feature)
			}
			if containsLabel(node.Categories, v.Cat) {
				node = node.Left
			} else {
				node = node.Right
			}
			continue
		}
		if v.Kind != dataset.Numeric {
			return dataset.Value{}, errors.Newf("tree: feature %q: numeric split on categorical value", node.Feature)
		}
		if v.Num <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Value, nil
}

// Leaves returns the number of terminal nodes.
func (t *Tree) Leaves() int {
	return countLeaves(t.Root)
}

// Clone returns a deep copy. Pruning works on clones so a reference tree
// can be shared across concurrent fold evaluations.
func (t *Tree) Clone() *Tree {
	return &Tree{Root: t.Root.clone()}
}

// Explain reports the tree family and its terminal node count.
func (t *Tree) Explain() model.Summary {
	leaves := t.Leaves()
	return model.Summary{
		Family:     "tree",
		Complexity: leaves,
		Detail:     fmt.Sprintf("decision tree with %d terminal nodes", leaves),
	}
}

var _ model.Model = (*Tree)(nil)

func countLeaves(n *Node) int {
	if n.IsLeaf() {
		return 1
	}
	return countLeaves(n.Left) + countLeaves(n.Right)
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
