package extval

import (
	"strings"

	"github.com/simfony-tools/valuekit/internal/dag"
)

// String renders the value deterministically: "●" for unit, "L"/"R"
// before the child of an injection, "(left, right)" for products, runs
// in their own notation ("0b...", "0x...").
func (v *Value) String() string {
	var sb strings.Builder
	for data := range dag.VerbosePreOrder(v) {
		switch data.Node.kind {
		case kindUnit:
			sb.WriteString("●")
		case kindLeft:
			if data.ChildrenYielded == 0 {
				sb.WriteString("L")
			}
		case kindRight:
			if data.ChildrenYielded == 0 {
				sb.WriteString("R")
			}
		case kindProduct:
			switch data.ChildrenYielded {
			case 0:
				sb.WriteString("(")
			case 1:
				sb.WriteString(", ")
			default:
				sb.WriteString(")")
			}
		case kindBitRun:
			sb.WriteString(data.Node.bits.String())
		case kindByteRun:
			sb.WriteString(data.Node.bytes.String())
		}
	}
	return sb.String()
}
