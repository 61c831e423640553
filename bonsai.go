package bonsai

import (
	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/tree"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultMaxDepth is the maximum depth trees are grown to
// unless told otherwise.
const DefaultMaxDepth = 5

// GrowError represents an error growing a tree
type GrowError string

/*
ErrCannotGrowFromEmptyDataset is the error returned by Grow when
given a dataset without samples.
*/
const ErrCannotGrowFromEmptyDataset = GrowError("cannot grow a tree from an empty dataset")

func (ge GrowError) Error() string {
	return string(ge)
}

var log = logrus.WithField("component", "bonsai")

// Grow takes a dataset and a maximum depth and returns a tree
// predicting the labels of the dataset from its samples, grown
// by recursively splitting the dataset on the split with the
// lowest weighted Gini impurity.
// A branch stops growing into a leaf when its samples all share
// the same label or it reaches the maximum depth, and then predicts
// the label of its first sample. It also stops when no split leaves
// samples on both sides, predicting the majority label of its samples.
// Grow returns a nil tree and ErrCannotGrowFromEmptyDataset if the
// dataset has no samples.
func Grow(s *dataset.Dataset, maxDepth int) (*tree.Tree, error) {
	if s == nil || s.Count() == 0 {
		return nil, ErrCannotGrowFromEmptyDataset
	}
	ns := tree.NewMemoryNodeStore()
	rootID, err := branchOut(s, ns, 0, maxDepth)
	if err != nil {
		return nil, err
	}
	log.Debugf("grew tree with %d nodes from %v", ns.Count(), s)
	return tree.New(rootID, ns, maxDepth), nil
}

// branchOut grows the subtree for the given dataset at the given depth
// and returns the ID of its root node on the node store. Children are
// created before their parent.
func branchOut(s *dataset.Dataset, ns tree.NodeStore, depth, maxDepth int) (int, error) {
	if s.Count() == 0 {
		return 0, ErrCannotGrowFromEmptyDataset
	}
	impurity, err := s.Gini()
	if err != nil {
		return 0, err
	}
	if impurity == 0.0 || depth >= maxDepth {
		return createNode(ns, tree.NewLeaf(s.Label(0), s.Count(), impurity), depth)
	}
	split, ok, err := BestSplit(s)
	if err != nil {
		return 0, errors.Wrapf(err, "splitting dataset %v at depth %d", s, depth)
	}
	if !ok {
		return createNode(ns, tree.NewLeaf(s.MajorityLabel(), s.Count(), impurity), depth)
	}
	left, right := s.Partition(split.Feature, split.Threshold)
	if left.Count() == 0 || right.Count() == 0 {
		return createNode(ns, tree.NewLeaf(s.MajorityLabel(), s.Count(), impurity), depth)
	}
	log.Debugf("splitting %v on %v at depth %d", s, split, depth)
	leftID, err := branchOut(left, ns, depth+1, maxDepth)
	if err != nil {
		return 0, err
	}
	rightID, err := branchOut(right, ns, depth+1, maxDepth)
	if err != nil {
		return 0, err
	}
	return createNode(ns, tree.NewInternal(split.Feature, split.Threshold, leftID, rightID, s.Count(), impurity), depth)
}

func createNode(ns tree.NodeStore, n *tree.Node, depth int) (int, error) {
	err := ns.Create(n)
	if err != nil {
		return 0, errors.Wrapf(err, "creating node at depth %d", depth)
	}
	log.Debugf("created node %v at depth %d", n, depth)
	return n.ID, nil
}
