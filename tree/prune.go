package tree

import (
	"math"

	"github.com/statlearn/modelselect/pkg/errors"
)

// Prune returns a copy of the tree cut down to at most maxLeaves terminal
// nodes by weakest-link cost-complexity pruning: repeatedly collapse the
// interior node whose removal raises training risk the least per leaf
// removed, until the tree is small enough. The receiver is not modified.
func (t *Tree) Prune(maxLeaves int) (*Tree, error) {
	if maxLeaves < 1 {
		return nil, errors.NewValueError("tree.Prune", "maxLeaves must be >= 1")
	}

	pruned := t.Clone()
	for countLeaves(pruned.Root) > maxLeaves {
		weakest := weakestLink(pruned.Root)
		if weakest == nil {
			break
		}
		weakest.Left = nil
		weakest.Right = nil
	}
	return pruned, nil
}

// linkStats aggregates a subtree: summed leaf risk and leaf count.
type linkStats struct {
	risk   float64
	leaves int
}

// weakestLink finds the interior node with the smallest cost-complexity
// measure alpha = (Risk(node) - Risk(subtree)) / (leaves - 1). Ties keep
// the first candidate encountered so pruning is deterministic.
func weakestLink(root *Node) *Node {
	var best *Node
	bestAlpha := math.Inf(1)

	var walk func(n *Node) linkStats
	walk = func(n *Node) linkStats {
		if n.IsLeaf() {
			return linkStats{risk: n.Risk, leaves: 1}
		}
		left := walk(n.Left)
		right := walk(n.Right)
		sub := linkStats{risk: left.risk + right.risk, leaves: left.leaves + right.leaves}

		alpha := (n.Risk - sub.risk) / float64(sub.leaves-1)
		if alpha < bestAlpha {
			bestAlpha = alpha
			best = n
		}
		return sub
	}
	walk(root)
	return best
}
