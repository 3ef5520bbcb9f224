package value

import (
	"iter"

	"github.com/simfony-tools/valuekit/internal/dag"
)

// PreOrder yields every node of the tree, parents before children.
func (v *Value) PreOrder() iter.Seq[*Value] {
	return dag.PreOrder(v)
}

// PostOrder yields every node of the tree, children before parents.
func (v *Value) PostOrder() iter.Seq[*Value] {
	return dag.PostOrder(v)
}

// IterBits yields the value's bit sequence in encoding order: a left
// injection contributes a 0 before its child's bits, a right injection
// a 1; units and products contribute nothing of their own. Each call
// returns a fresh iterator.
func (v *Value) IterBits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for node := range dag.PreOrder(v) {
			switch node.kind {
			case KindLeft:
				if !yield(false) {
					return
				}
			case KindRight:
				if !yield(true) {
					return
				}
			}
		}
	}
}
