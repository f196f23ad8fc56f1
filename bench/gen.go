// Package bench builds randomly shaped trees at scale for demos and
// benchmarks of the trees package. Generation is deterministic per seed
// so runs are reproducible and comparable.
package bench

import (
	"fmt"
	"math/rand"
)

// Insert is a single generated attachment. Parent is the index of a
// previously created node in creation order; -1 means the root.
type Insert struct {
	Parent int
	Label  string
}

// TreeGenerator describes a deterministic random tree. The same
// configuration always produces the same sequence of inserts.
type TreeGenerator struct {
	Seed        int64
	Nodes       int
	MaxChildren int // 0 means unbounded branching
	LabelMean   int
	LabelStdDev int
}

// ShallowWideGenerator allows unbounded branching, which tends toward
// short bushy trees.
func ShallowWideGenerator(seed int64, nodes int) TreeGenerator {
	return TreeGenerator{
		Seed:        seed,
		Nodes:       nodes,
		MaxChildren: 0,
		LabelMean:   12,
		LabelStdDev: 4,
	}
}

// DeepNarrowGenerator caps branching at 2, producing tall trees.
func DeepNarrowGenerator(seed int64, nodes int) TreeGenerator {
	return TreeGenerator{
		Seed:        seed,
		Nodes:       nodes,
		MaxChildren: 2,
		LabelMean:   12,
		LabelStdDev: 4,
	}
}

// Iterator returns an iterator over the generator's insert sequence.
func (g TreeGenerator) Iterator() (*InsertIterator, error) {
	if g.Nodes < 1 {
		return nil, fmt.Errorf("node count must be at least 1, got %d", g.Nodes)
	}
	if g.MaxChildren < 0 {
		return nil, fmt.Errorf("max children must not be negative, got %d", g.MaxChildren)
	}
	itr := &InsertIterator{
		gen:        g,
		rand:       rand.New(rand.NewSource(g.Seed)),
		childCount: map[int]int{},
	}
	itr.Next()
	return itr, nil
}

// InsertIterator yields the inserts of a TreeGenerator one at a time.
type InsertIterator struct {
	Insert Insert

	gen   TreeGenerator
	rand  *rand.Rand
	count int
	// open lists indices of nodes that can still accept children.
	open       []int
	childCount map[int]int
	done       bool
}

// Valid reports whether Insert holds the current element.
func (itr *InsertIterator) Valid() bool {
	return !itr.done
}

// Next advances the iterator.
func (itr *InsertIterator) Next() {
	if itr.count >= itr.gen.Nodes {
		itr.done = true
		return
	}

	if itr.count == 0 {
		itr.Insert = Insert{Parent: -1, Label: itr.genLabel()}
	} else {
		j := itr.rand.Intn(len(itr.open))
		parent := itr.open[j]
		itr.Insert = Insert{Parent: parent, Label: itr.genLabel()}
		itr.childCount[parent]++
		if itr.gen.MaxChildren > 0 && itr.childCount[parent] >= itr.gen.MaxChildren {
			itr.open = append(itr.open[:j], itr.open[j+1:]...)
		}
	}
	itr.open = append(itr.open, itr.count)
	itr.count++
}

const labelAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// genLabel draws a label whose length is normally distributed. Lengths
// below 1 are redrawn closer to the mean rather than clamped, which would
// skew the distribution toward the floor.
func (itr *InsertIterator) genLabel() string {
	mean, stdDev := itr.gen.LabelMean, itr.gen.LabelStdDev
	length := int(itr.rand.NormFloat64()*float64(stdDev) + float64(mean))
	if length < 1 {
		length = int(itr.rand.NormFloat64()*float64(mean/3) + float64(mean))
		if length < 1 {
			length = 1
		}
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = labelAlphabet[itr.rand.Intn(len(labelAlphabet))]
	}
	return string(b)
}
