package ranktree

import (
	"fmt"
	"io"
)

type nodeids[K, V, R any] struct {
	idTable map[*node[K, V, R]]int
	max     int
}

func newtable[K, V, R any]() nodeids[K, V, R] {
	return nodeids[K, V, R]{
		idTable: make(map[*node[K, V, R]]int),
		max:     1,
	}
}

func (ids *nodeids[K, V, R]) alloc(n *node[K, V, R]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// placeholder allocates an id for an absent child.
func (ids *nodeids[K, V, R]) placeholder() int {
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labeled with key, subtree size and height.
func Tree2Dot[K, V, R any](tree *Tree[K, V, R], w io.Writer) error {
	ids := newtable[K, V, R]()
	nodelist, edgelist := "", ""
	var walk func(n *node[K, V, R]) int
	walk = func(n *node[K, V, R]) int {
		id := ids.alloc(n)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%v\\nn=%d h=%d\" %s];\n",
			id, n.key, n.size, n.height, nodeDotStyles(n))
		for _, child := range []*node[K, V, R]{n.left, n.right} {
			if child == nil {
				nilid := ids.placeholder()
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, walk(child))
		}
		return id
	}
	if !tree.IsEmpty() {
		walk(tree.root)
	}
	_, err := io.WriteString(w, "strict digraph {\n"+
		"\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist+edgelist+"}\n")
	if err != nil {
		T().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles[K, V, R any](n *node[K, V, R]) string {
	s := ",style=filled,shape=circle,color=black"
	if n.balanceFactor() == 0 {
		s += ",fillcolor=\"#a3d7e4\""
	} else {
		s += ",fillcolor=\"#FFCCAA\""
	}
	return s
}
