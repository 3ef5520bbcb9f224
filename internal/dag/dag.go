package dag

import "iter"

// TreeLike is implemented by tree nodes that expose their children.
// Children returns the first and second child plus the child count n.
// For n == 0 both returned nodes are meaningless; for n == 1 only the
// first is valid.
type TreeLike[T any] interface {
	Children() (first, second T, n int)
}

// VisitData pairs a node with the number of its children already yielded
// at this visit. A node with n children is yielded n+1 times: once before
// any child (ChildrenYielded == 0), then once after each child completes.
type VisitData[T TreeLike[T]] struct {
	Node            T
	ChildrenYielded int
}

// PreOrder yields every node of the tree rooted at root, parents before
// children, left child before right. Iterative; tolerates arbitrarily
// deep trees.
func PreOrder[T TreeLike[T]](root T) iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := []T{root}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(node) {
				return
			}
			first, second, n := node.Children()
			if n == 2 {
				stack = append(stack, second)
			}
			if n >= 1 {
				stack = append(stack, first)
			}
		}
	}
}

// PostOrder yields every node of the tree rooted at root, children before
// parents, left subtree before right.
func PostOrder[T TreeLike[T]](root T) iter.Seq[T] {
	type frame struct {
		node     T
		expanded bool
	}
	return func(yield func(T) bool) {
		stack := []frame{{node: root}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.expanded {
				stack = stack[:len(stack)-1]
				if !yield(top.node) {
					return
				}
				continue
			}
			stack[len(stack)-1].expanded = true
			first, second, n := top.node.Children()
			if n == 2 {
				stack = append(stack, frame{node: second}, frame{node: first})
			} else if n == 1 {
				stack = append(stack, frame{node: first})
			}
		}
	}
}

// VerbosePreOrder yields each node once before its children and once more
// after each child subtree completes, reporting how many children have
// been yielded so far. Renderers use the counts to place brackets and
// separators without recursion.
func VerbosePreOrder[T TreeLike[T]](root T) iter.Seq[VisitData[T]] {
	type frame struct {
		node    T
		yielded int
	}
	return func(yield func(VisitData[T]) bool) {
		stack := []frame{{node: root}}
		for len(stack) > 0 {
			i := len(stack) - 1
			if !yield(VisitData[T]{Node: stack[i].node, ChildrenYielded: stack[i].yielded}) {
				return
			}
			first, second, n := stack[i].node.Children()
			switch {
			case stack[i].yielded == 0 && n >= 1:
				stack[i].yielded++
				stack = append(stack, frame{node: first})
			case stack[i].yielded == 1 && n == 2:
				stack[i].yielded++
				stack = append(stack, frame{node: second})
			default:
				stack = stack[:i]
			}
		}
	}
}
