package twentyfour

import (
	"strconv"
	"strings"
)

// render writes the expression rooted at arena[idx] with the fewest
// parentheses that preserve its meaning:
//   - a child binding weaker than its parent is wrapped
//   - the right child of - or / is wrapped when it binds equally
//
// Operators are surrounded by single spaces, e.g. "(7 - 8 / 8) x 4".
func (s *search) render(idx int) string {
	var sb strings.Builder
	s.writeNode(&sb, idx, 0, false, Add)
	return sb.String()
}

func (s *search) writeNode(sb *strings.Builder, idx int, parentPrec Precedence, isRight bool, parentOp Operator) {
	n := s.arena[idx]
	if n.leaf {
		sb.WriteString(strconv.FormatInt(n.value.Num, 10))
		return
	}

	prec := n.op.Precedence()
	wrap := prec < parentPrec ||
		(isRight && prec == parentPrec && !parentOp.Commutative())

	if wrap {
		sb.WriteByte('(')
	}
	s.writeNode(sb, n.left, prec, false, n.op)
	sb.WriteByte(' ')
	sb.WriteRune(n.op.Symbol())
	sb.WriteByte(' ')
	s.writeNode(sb, n.right, prec, true, n.op)
	if wrap {
		sb.WriteByte(')')
	}
}
