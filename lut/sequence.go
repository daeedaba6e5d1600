// seehuhn.de/go/colour - a library for colour science computations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package lut

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Sequence is an ordered chain of processing nodes, for example a shaper
// curve followed by a three-dimensional table.  Sequence itself
// implements [ProcessNode].
type Sequence struct {
	nodes []ProcessNode
}

// NewSequence returns a sequence of the given nodes.
func NewSequence(nodes ...ProcessNode) *Sequence {
	return &Sequence{nodes: slices.Clone(nodes)}
}

// Len returns the number of nodes.
func (s *Sequence) Len() int {
	return len(s.nodes)
}

// Node returns the i-th node.
func (s *Sequence) Node(i int) ProcessNode {
	return s.nodes[i]
}

// Append adds a node at the end of the sequence.
func (s *Sequence) Append(node ProcessNode) {
	s.nodes = append(s.nodes, node)
}

// Insert adds a node before position i.
func (s *Sequence) Insert(i int, node ProcessNode) {
	s.nodes = slices.Insert(s.nodes, i, node)
}

// Remove deletes the node at position i.
func (s *Sequence) Remove(i int) {
	s.nodes = slices.Delete(s.nodes, i, i+1)
}

// Apply maps one colour triplet through every node in order.
func (s *Sequence) Apply(rgb [3]float64, opts *ApplyOptions) ([3]float64, error) {
	var err error
	for i, node := range s.nodes {
		rgb, err = node.Apply(rgb, opts)
		if err != nil {
			return [3]float64{}, fmt.Errorf("node %d: %w", i, err)
		}
	}
	return rgb, nil
}

// Copy returns a sequence with the same nodes.  The nodes themselves are
// shared.
func (s *Sequence) Copy() *Sequence {
	return NewSequence(s.nodes...)
}

func (s *Sequence) String() string {
	parts := make([]string, len(s.nodes))
	for i, node := range s.nodes {
		parts[i] = fmt.Sprint(node)
	}
	return "Sequence[" + strings.Join(parts, " -> ") + "]"
}
