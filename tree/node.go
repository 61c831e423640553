package tree

import "fmt"

/*
Node is a node of the tree. It is either a leaf assigning a class label
to the samples that reach it, or an internal node sending samples to one
of its two children depending on the value of a feature.
*/
type Node struct {
	// An ID to identify the node on its NodeStore
	ID int
	// Whether the node is a leaf. Leaves only define Label, internal nodes
	// only define Feature, Threshold, LeftID and RightID.
	Leaf bool
	// The class label predicted for samples reaching this leaf
	Label int
	// The index of the feature evaluated on samples reaching this internal node
	Feature int
	// Samples whose value for Feature is lower or equal to Threshold continue
	// on the node with LeftID, the rest on the node with RightID.
	Threshold float64
	LeftID    int
	RightID   int
	// The number of training samples that reached the node and their Gini
	// impurity.
	Samples  int
	Impurity float64
}

// NewLeaf returns a leaf Node predicting the given label.
func NewLeaf(label, samples int, impurity float64) *Node {
	return &Node{Leaf: true, Label: label, Samples: samples, Impurity: impurity}
}

// NewInternal returns an internal Node that splits samples on the given
// feature and threshold between the nodes with the given IDs.
func NewInternal(feature int, threshold float64, leftID, rightID, samples int, impurity float64) *Node {
	return &Node{
		Feature:   feature,
		Threshold: threshold,
		LeftID:    leftID,
		RightID:   rightID,
		Samples:   samples,
		Impurity:  impurity,
	}
}

func (n *Node) String() string {
	if n.Leaf {
		return fmt.Sprintf("{Leaf %d: label=%d samples=%d gini=%f}", n.ID, n.Label, n.Samples, n.Impurity)
	}
	return fmt.Sprintf("{Node %d: X%d <= %f ? %d : %d samples=%d gini=%f}", n.ID, n.Feature, n.Threshold, n.LeftID, n.RightID, n.Samples, n.Impurity)
}
