// SPDX-License-Identifier: MIT

package linkage

import "errors"

// ErrInvalidClusterCount indicates a requested flat cluster count below 1.
var ErrInvalidClusterCount = errors.New("linkage: cluster count must be >= 1")

// ErrInvalidDendrogram indicates a merge that refers to an unknown or
// already merged node.
var ErrInvalidDendrogram = errors.New("linkage: invalid dendrogram")

// Merge is one agglomeration step.
//
// Fields:
//   - Left, Right: ids of the merged nodes, Left < Right. Leaves are 0..N-1;
//     the node created by merge s has id N+s.
//   - Distance:    complete-linkage distance between the two nodes.
//   - Size:        number of leaves under the new node.
type Merge struct {
	Left     int     `json:"left" yaml:"left"`
	Right    int     `json:"right" yaml:"right"`
	Distance float64 `json:"distance" yaml:"distance"`
	Size     int     `json:"size" yaml:"size"`
}

// Dendrogram is the merge tree over N leaves.
// A complete tree has N-1 merges; merge distances are non-decreasing.
type Dendrogram struct {
	N      int     `json:"n" yaml:"n"`
	Merges []Merge `json:"merges" yaml:"merges"`
}

// LinkageMatrix returns the merges as SciPy linkage rows:
// [left, right, distance, size].
func (d *Dendrogram) LinkageMatrix() [][4]float64 {
	out := make([][4]float64, len(d.Merges))
	for s, m := range d.Merges {
		out[s] = [4]float64{float64(m.Left), float64(m.Right), m.Distance, float64(m.Size)}
	}

	return out
}

// Heights returns the merge distances in merge order.
func (d *Dendrogram) Heights() []float64 {
	out := make([]float64, len(d.Merges))
	for s, m := range d.Merges {
		out[s] = m.Distance
	}

	return out
}

// Leaves returns the left-to-right leaf order of the rendered tree.
// Unmerged roots (partial trees) are laid out by ascending id.
// Returns nil when the merges do not describe a valid tree.
func (d *Dendrogram) Leaves() []int {
	if err := d.validate(); err != nil {
		return nil
	}
	total := d.N + len(d.Merges)
	hasParent := make([]bool, total)
	for _, m := range d.Merges {
		hasParent[m.Left] = true
		hasParent[m.Right] = true
	}

	leaves := make([]int, 0, d.N)
	stack := make([]int, 0, total)
	for root := 0; root < total; root++ {
		if hasParent[root] {
			continue
		}
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if node < d.N {
				leaves = append(leaves, node)
				continue
			}
			m := d.Merges[node-d.N]
			stack = append(stack, m.Right, m.Left) // Left is popped first
		}
	}

	return leaves
}

// validate checks every merge joins two distinct, existing, unmerged nodes.
func (d *Dendrogram) validate() error {
	if d.N < 1 || len(d.Merges) > d.N-1 {
		return ErrInvalidDendrogram
	}
	merged := make([]bool, d.N+len(d.Merges))
	for s, m := range d.Merges {
		limit := d.N + s // ids minted so far
		if m.Left < 0 || m.Right < 0 || m.Left >= limit || m.Right >= limit || m.Left == m.Right {
			return ErrInvalidDendrogram
		}
		if merged[m.Left] || merged[m.Right] {
			return ErrInvalidDendrogram
		}
		merged[m.Left], merged[m.Right] = true, true
	}

	return nil
}
