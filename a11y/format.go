package a11y

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Style is the set of characters used to draw a document.
type Style struct {
	Horizontal   rune
	Vertical     rune
	Connector    rune
	EndConnector rune
}

// SingleLine mimics the output of the tree(1) command.
var SingleLine = Style{
	Horizontal:   '─',
	Vertical:     '│',
	Connector:    '├',
	EndConnector: '└',
}

// ASCII draws with plain ASCII for terminals without box drawing glyphs.
var ASCII = Style{
	Horizontal:   '-',
	Vertical:     '|',
	Connector:    '+',
	EndConnector: '`',
}

// Format writes one line per node, in preorder, as
// "<branches>── <role>(<child count>)".
func (n *Node) Format(w io.Writer, style Style) error {
	type item struct {
		node  *Node
		depth int
		last  bool
	}

	bw := bufio.NewWriter(w)
	// lastAt[d] reports whether the ancestor at depth d+1 on the current
	// path is the last of its siblings.
	var lastAt []bool
	stack := []item{{node: n}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if it.depth > 0 {
			lastAt = append(lastAt[:it.depth-1], it.last)
			for _, last := range lastAt[:len(lastAt)-1] {
				if last {
					bw.WriteString("    ")
				} else {
					bw.WriteRune(style.Vertical)
					bw.WriteString("   ")
				}
			}
			if it.last {
				bw.WriteRune(style.EndConnector)
			} else {
				bw.WriteRune(style.Connector)
			}
		}

		bw.WriteRune(style.Horizontal)
		bw.WriteRune(style.Horizontal)
		bw.WriteByte(' ')
		bw.WriteString(it.node.Role.String())
		bw.WriteByte('(')
		bw.WriteString(strconv.Itoa(len(it.node.Children)))
		bw.WriteString(")\n")

		children := it.node.Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, item{node: &children[i], depth: it.depth + 1, last: i == len(children)-1})
		}
	}
	return bw.Flush()
}

// String renders the document in the SingleLine style.
func (n *Node) String() string {
	var sb strings.Builder
	_ = n.Format(&sb, SingleLine)
	return sb.String()
}
