package types

import (
	"strconv"
	"strings"

	"github.com/simfony-tools/valuekit/internal/dag"
)

// renderNode treats word types as leaves so a 32-bit word prints as 2^32
// instead of a page of nested sums and products.
type renderNode struct {
	t *Type
}

func (r renderNode) Children() (renderNode, renderNode, int) {
	if r.t.word || r.t.kind == KindUnit {
		return renderNode{}, renderNode{}, 0
	}
	return renderNode{r.t.left}, renderNode{r.t.right}, 2
}

// String renders the descriptor: "1" for unit, "2" for the bit type,
// "2^n" for wider word types, "(A + B)" for sums and "(A * B)" for
// products. The output parses back via Parse.
func (t *Type) String() string {
	var sb strings.Builder
	for data := range dag.VerbosePreOrder(renderNode{t}) {
		node := data.Node.t
		if node.word {
			if node.width == 1 {
				sb.WriteString("2")
			} else {
				sb.WriteString("2^")
				sb.WriteString(strconv.Itoa(node.width))
			}
			continue
		}
		switch node.kind {
		case KindUnit:
			sb.WriteString("1")
		case KindSum:
			switch data.ChildrenYielded {
			case 0:
				sb.WriteString("(")
			case 1:
				sb.WriteString(" + ")
			default:
				sb.WriteString(")")
			}
		case KindProduct:
			switch data.ChildrenYielded {
			case 0:
				sb.WriteString("(")
			case 1:
				sb.WriteString(" * ")
			default:
				sb.WriteString(")")
			}
		}
	}
	return sb.String()
}
