package extval

import (
	"github.com/simfony-tools/valuekit/errors"
	"github.com/simfony-tools/valuekit/types"
)

// Decoding runs on an explicit task stack so deep types cannot overflow
// the call stack.
type taskKind uint8

const (
	taskDecode taskKind = iota
	taskWrapLeft
	taskWrapRight
	taskMakeProduct
)

type task struct {
	kind taskKind
	ty   *types.Type
}

// FromBits builds the value of type ty from a bit stream: nothing for
// the unit type, one tag bit choosing the component of a sum, both
// components in order for a product. The stream must hold at least the
// bits the value needs; running out fails with an out-of-bits error.
// Surplus bits are left unread for the caller.
//
// The result is a fully explicit tree. Compacting it into runs is a
// separate step: pass the bits through FromValue, or decode into the
// generic form and convert.
func FromBits(ty *types.Type, r BitReader) (*Value, error) {
	tasks := []task{{kind: taskDecode, ty: ty}}
	var results []*Value

	for len(tasks) > 0 {
		t := tasks[len(tasks)-1]
		tasks = tasks[:len(tasks)-1]

		switch t.kind {
		case taskDecode:
			if t.ty.IsUnit() {
				results = append(results, unit)
				break
			}
			if left, right, ok := t.ty.SumParts(); ok {
				bit, ok := r.Next()
				if !ok {
					return nil, errors.OutOfBits(t.ty.String())
				}
				if bit {
					tasks = append(tasks, task{kind: taskWrapRight}, task{kind: taskDecode, ty: right})
				} else {
					tasks = append(tasks, task{kind: taskWrapLeft}, task{kind: taskDecode, ty: left})
				}
				break
			}
			if left, right, ok := t.ty.ProductParts(); ok {
				// left decodes first, consuming the leading bits
				tasks = append(tasks,
					task{kind: taskMakeProduct},
					task{kind: taskDecode, ty: right},
					task{kind: taskDecode, ty: left},
				)
			}

		case taskWrapLeft:
			results[len(results)-1] = Left(results[len(results)-1])

		case taskWrapRight:
			results[len(results)-1] = Right(results[len(results)-1])

		case taskMakeProduct:
			right := results[len(results)-1]
			left := results[len(results)-2]
			results = results[:len(results)-1]
			results[len(results)-1] = Product(left, right)
		}
	}

	debugf("decoded value of type %s", ty)
	return results[0], nil
}
