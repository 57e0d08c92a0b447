package a11y

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/roletree/codec"
	"github.com/hupe1980/roletree/role"
)

var (
	// ErrEmptyDocument is returned when the input holds no document at all.
	ErrEmptyDocument = errors.New("empty document")
	// ErrMalformedDocument is returned when a node lacks its role or its
	// children list, or a children list holds null.
	ErrMalformedDocument = errors.New("malformed document")
)

// Node is one element of a document.
//
// On the wire every node carries both keys; leaves have an empty children
// list. In memory a leaf has nil Children.
type Node struct {
	Role     role.Role `json:"role"`
	Children []Node    `json:"children"`
}

// New returns a node with the given children, in order.
func New(r role.Role, children ...Node) Node {
	return Node{Role: r, Children: children}
}

// wireNode mirrors Node with pointers so absent keys and null entries stay
// visible after decoding.
type wireNode struct {
	Role     *role.Role   `json:"role"`
	Children *[]*wireNode `json:"children"`
}

// Decode reads one document from r using c (codec.Default when nil).
//
// Both codecs bound JSON nesting, so documents deeper than roughly 5000
// levels fail to decode even though trees built in memory have no depth
// limit.
func Decode(r io.Reader, c codec.Codec) (Node, error) {
	if c == nil {
		c = codec.Default
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Node{}, fmt.Errorf("a11y: read document: %w", err)
	}
	return Unmarshal(data, c)
}

// Unmarshal decodes one document from data using c (codec.Default when nil).
// Every node must have a role and a children list; see Decode for the
// depth limit.
func Unmarshal(data []byte, c codec.Codec) (Node, error) {
	if c == nil {
		c = codec.Default
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Node{}, ErrEmptyDocument
	}
	var w wireNode
	if err := c.Unmarshal(data, &w); err != nil {
		return Node{}, fmt.Errorf("a11y: decode document (%s): %w", c.Name(), err)
	}
	return fromWire(&w)
}

// wireItem is one pending node of fromWire.
type wireItem struct {
	src    *wireNode
	dst    *Node
	parent int
	index  int
}

// fromWire converts and checks a decoded document without recursion.
func fromWire(root *wireNode) (Node, error) {
	var out Node
	items := []wireItem{{src: root, dst: &out, parent: -1}}
	for i := 0; i < len(items); i++ {
		it := items[i]
		if it.src.Role == nil {
			return Node{}, fmt.Errorf("%w: node %s has no role", ErrMalformedDocument, wirePath(items, i))
		}
		if it.src.Children == nil {
			return Node{}, fmt.Errorf("%w: node %s has no children list", ErrMalformedDocument, wirePath(items, i))
		}
		it.dst.Role = *it.src.Role

		children := *it.src.Children
		if len(children) == 0 {
			continue
		}
		it.dst.Children = make([]Node, len(children))
		for j, c := range children {
			if c == nil {
				return Node{}, fmt.Errorf("%w: child %d of node %s is null", ErrMalformedDocument, j, wirePath(items, i))
			}
			items = append(items, wireItem{src: c, dst: &it.dst.Children[j], parent: i, index: j})
		}
	}
	return out, nil
}

// wirePath renders the child indexes leading to items[i], "/" for the root.
func wirePath(items []wireItem, i int) string {
	var idx []int
	for ; items[i].parent >= 0; i = items[i].parent {
		idx = append(idx, items[i].index)
	}
	if len(idx) == 0 {
		return "/"
	}
	var sb strings.Builder
	for k := len(idx) - 1; k >= 0; k-- {
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(idx[k]))
	}
	return sb.String()
}

// Encode writes n to w using c (codec.Default when nil). Leaves are
// written with an empty children list.
func Encode(w io.Writer, n Node, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}
	data, err := c.Marshal(toWire(&n))
	if err != nil {
		return fmt.Errorf("a11y: encode document (%s): %w", c.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("a11y: write document: %w", err)
	}
	return nil
}

// outNode is the encoded form of Node; Children is never nil.
type outNode struct {
	Role     role.Role `json:"role"`
	Children []outNode `json:"children"`
}

func toWire(n *Node) *outNode {
	type item struct {
		src *Node
		dst *outNode
	}

	out := &outNode{}
	stack := []item{{n, out}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		it.dst.Role = it.src.Role
		it.dst.Children = make([]outNode, len(it.src.Children))
		for i := range it.src.Children {
			stack = append(stack, item{&it.src.Children[i], &it.dst.Children[i]})
		}
	}
	return out
}

// Stats describes the shape of a document.
type Stats struct {
	Nodes    int `json:"nodes"`
	Leaves   int `json:"leaves"`
	MaxDepth int `json:"max_depth"`
}

// Stats walks the document once. The root has depth 0.
func (n *Node) Stats() Stats {
	type item struct {
		node  *Node
		depth int
	}

	var s Stats
	stack := []item{{n, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s.Nodes++
		s.MaxDepth = max(s.MaxDepth, it.depth)
		if len(it.node.Children) == 0 {
			s.Leaves++
			continue
		}
		for i := range it.node.Children {
			stack = append(stack, item{&it.node.Children[i], it.depth + 1})
		}
	}
	return s
}

// Walk calls fn for every node in preorder with its depth. Returning false
// skips the node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	type item struct {
		node  *Node
		depth int
	}

	stack := []item{{n, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(it.node, it.depth) {
			continue
		}
		for i := len(it.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{&it.node.Children[i], it.depth + 1})
		}
	}
}
