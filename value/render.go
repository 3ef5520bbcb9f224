package value

import (
	"strings"

	"github.com/simfony-tools/valuekit/internal/dag"
)

// String renders the tree: "●" for unit, "L"/"R" before injected
// children, "(left, right)" for products.
func (v *Value) String() string {
	var sb strings.Builder
	for data := range dag.VerbosePreOrder(v) {
		switch data.Node.kind {
		case KindUnit:
			sb.WriteString("●")
		case KindLeft:
			if data.ChildrenYielded == 0 {
				sb.WriteString("L")
			}
		case KindRight:
			if data.ChildrenYielded == 0 {
				sb.WriteString("R")
			}
		case KindProduct:
			switch data.ChildrenYielded {
			case 0:
				sb.WriteString("(")
			case 1:
				sb.WriteString(", ")
			default:
				sb.WriteString(")")
			}
		}
	}
	return sb.String()
}
