package tree

import (
	"fmt"
	"strings"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
	"github.com/pkg/errors"
)

// Tree represents a binary classification tree. It is
// composed of a NodeStore where all its nodes are stored,
// the id for the root node of the tree and the maximum
// depth it was allowed to grow to.
type Tree struct {
	NodeStore
	RootID   int
	MaxDepth int
}

// New takes the ID for the root Node, a NodeStore and the maximum depth
// and returns a tree composed of the nodes in the NodeStore connected to
// the node with the given root ID.
func New(rootID int, nodeStore NodeStore, maxDepth int) *Tree {
	return &Tree{nodeStore, rootID, maxDepth}
}

// Predict takes a sample and returns the label the tree predicts for it,
// or an error if the prediction could not be made: the tree is nil, one
// of its nodes cannot be retrieved or the sample lacks a feature the tree
// evaluates.
func (t *Tree) Predict(s dataset.Sample) (int, error) {
	if t == nil || t.NodeStore == nil {
		return 0, ErrNilTree
	}
	n, err := t.Get(t.RootID)
	if err != nil {
		return 0, errors.Wrap(err, "predicting sample")
	}
	for !n.Leaf {
		if n.Feature < 0 || n.Feature >= len(s) {
			return 0, errors.Wrapf(ErrFeatureOutOfRange, "predicting sample with %d features: node %d evaluates X%d", len(s), n.ID, n.Feature)
		}
		nextID := n.RightID
		if s[n.Feature] <= n.Threshold {
			nextID = n.LeftID
		}
		n, err = t.Get(nextID)
		if err != nil {
			return 0, errors.Wrap(err, "predicting sample")
		}
	}
	return n.Label, nil
}

/*
Test takes a dataset and returns an Evaluation of the predictions of
the tree for its samples against their labels, or an error if a
prediction cannot be made.
*/
func (t *Tree) Test(s *dataset.Dataset) (*Evaluation, error) {
	e := &Evaluation{}
	for i := 0; i < s.Count(); i++ {
		p, err := t.Predict(s.Sample(i))
		if err != nil {
			return nil, errors.Wrapf(err, "testing sample %d", i)
		}
		e.Confusion[s.Label(i)][p]++
	}
	return e, nil
}

// Traverse takes a bottomup boolean and an error-returning
// function that takes a node and its depth on the tree as
// parameters, and goes through the tree running the
// function with every traversed node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true. Left
// children are traversed before right ones.
// If a node cannot be retrieved from the tree's node store,
// the obtained error is returned. If the call to the function
// returns an error, the traversing is aborted and the error is
// returned. Otherwise, when the traversing is over, nil is
// returned.
func (t *Tree) Traverse(bottomup bool, f func(*Node, int) error) error {
	if t == nil || t.NodeStore == nil {
		return ErrNilTree
	}
	n, err := t.NodeStore.Get(t.RootID)
	if err != nil {
		return err
	}
	return t.traverse(n, 0, bottomup, f)
}

func (t *Tree) traverse(n *Node, depth int, bottomup bool, f func(*Node, int) error) error {
	var err error
	if !bottomup {
		err = f(n, depth)
	}
	if err != nil {
		return err
	}
	if !n.Leaf {
		for _, snID := range []int{n.LeftID, n.RightID} {
			sn, err := t.NodeStore.Get(snID)
			if err != nil {
				return err
			}
			err = t.traverse(sn, depth+1, bottomup, f)
			if err != nil {
				return err
			}
		}
	}
	if bottomup {
		err = f(n, depth)
	}
	return err
}

// Depth returns the number of edges on the longest path from
// the root of the tree to a leaf, or an error if the tree
// cannot be traversed.
func (t *Tree) Depth() (int, error) {
	var maxDepth int
	err := t.Traverse(false, func(n *Node, depth int) error {
		if depth > maxDepth {
			maxDepth = depth
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return maxDepth, nil
}

func (t *Tree) String() string {
	return t.Format(nil)
}

// Format returns a representation of the tree naming the
// evaluated features with the given slice of features. Features
// missing from the slice get the default X0, X1... names.
func (t *Tree) Format(features []feature.Feature) string {
	if t == nil || t.NodeStore == nil {
		return fmt.Sprintf("ERROR: %s\n", ErrNilTree.Error())
	}
	return t.subtreeString(t.RootID, "", features)
}

func (t *Tree) subtreeString(nodeID int, criterion string, features []feature.Feature) string {
	n, err := t.NodeStore.Get(nodeID)
	if err != nil {
		return fmt.Sprintf("ERROR: %s\n", err.Error())
	}
	result := fmt.Sprintf("[%d]\n", nodeID)
	if criterion != "" {
		result = fmt.Sprintf("%s{ %s }\n", result, criterion)
	}
	if n.Leaf {
		return fmt.Sprintf("%s{ label=%d samples=%d gini=%f }\n \n", result, n.Label, n.Samples, n.Impurity)
	}
	result = fmt.Sprintf("%s{ samples=%d gini=%f }\n|\n", result, n.Samples, n.Impurity)
	name := feature.NameFor(features, n.Feature)
	subtrees := []struct {
		id        int
		criterion string
	}{
		{n.LeftID, fmt.Sprintf("%s <= %f", name, n.Threshold)},
		{n.RightID, fmt.Sprintf("%s > %f", name, n.Threshold)},
	}
	for i, st := range subtrees {
		for j, line := range strings.Split(t.subtreeString(st.id, st.criterion, features), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == len(subtrees)-1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}
