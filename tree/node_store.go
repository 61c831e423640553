package tree

import (
	"github.com/pkg/errors"
)

/*
NodeStore is an interface to manage a store
where the nodes of a tree are created and
retrieved.

Nodes are stored by value: once created they
cannot be altered through the store or through
the nodes it returns.
*/
type NodeStore interface {
	// Create takes a node and stores a copy of it
	// for the first time in the store, creating an
	// ID for it and setting it for the node. It
	// returns an error if the node cannot be stored.
	Create(n *Node) error
	// Get takes an id and returns a copy of the
	// node in the store with that id or an error
	// wrapping ErrNodeNotFound if there is none.
	Get(id int) (*Node, error)
	// Count returns the number of nodes in the store
	Count() int
}

type memoryNodeStore struct {
	nodes []Node
	owned []bool
}

// NewMemoryNodeStore returns an implementation
// of NodeStore with the process memory space
// as underlying backend: an arena of nodes
// addressed by their index on it
func NewMemoryNodeStore() NodeStore {
	return &memoryNodeStore{}
}

func (mns *memoryNodeStore) Create(n *Node) error {
	if n == nil {
		return errors.New("creating node: nil node")
	}
	if !n.Leaf {
		for _, id := range []int{n.LeftID, n.RightID} {
			if id < 0 || id >= len(mns.nodes) {
				return errors.Wrapf(ErrNodeNotFound, "creating node: child %d", id)
			}
			if mns.owned[id] {
				return errors.Errorf("creating node: child %d already has a parent", id)
			}
		}
		if n.LeftID == n.RightID {
			return errors.Errorf("creating node: both children are node %d", n.LeftID)
		}
		mns.owned[n.LeftID] = true
		mns.owned[n.RightID] = true
	}
	n.ID = len(mns.nodes)
	mns.nodes = append(mns.nodes, *n)
	mns.owned = append(mns.owned, false)
	return nil
}

func (mns *memoryNodeStore) Get(id int) (*Node, error) {
	if id < 0 || id >= len(mns.nodes) {
		return nil, errors.Wrapf(ErrNodeNotFound, "retrieving node %d", id)
	}
	n := mns.nodes[id]
	return &n, nil
}

func (mns *memoryNodeStore) Count() int {
	return len(mns.nodes)
}
