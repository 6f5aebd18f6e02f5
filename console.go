package ranktree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// palette holds the colors used by Fprint.
type palette struct {
	balanced *color.Color // nodes with balance factor 0
	leaning  *color.Color // nodes with balance factor ±1
	stats    *color.Color // subtree statistics
}

// newPalette creates a palette for w. Colors are enabled only if w is a terminal.
func newPalette(w io.Writer) palette {
	p := palette{
		balanced: color.New(color.FgGreen),
		leaning:  color.New(color.FgYellow, color.Bold),
		stats:    color.New(color.Faint),
	}
	colored := isTerminal(w)
	for _, c := range []*color.Color{p.balanced, p.leaning, p.stats} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Fprint draws a tree to w, rotated counter-clockwise: the root is at the
// left margin, right subtrees above and left subtrees below their parent.
// Every node is annotated with its subtree size, height and rank aggregate.
// Output to a terminal is colored by balance factor.
func Fprint[K, V, R any](w io.Writer, tree *Tree[K, V, R]) error {
	if tree.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	p := newPalette(w)
	var err error
	var draw func(n *node[K, V, R], depth int)
	draw = func(n *node[K, V, R], depth int) {
		if n == nil || err != nil {
			return
		}
		draw(n.right, depth+1)
		c := p.balanced
		if n.balanceFactor() != 0 {
			c = p.leaning
		}
		if _, err = io.WriteString(w, strings.Repeat("    ", depth)); err != nil {
			return
		}
		if _, err = c.Fprintf(w, "%v", n.key); err != nil {
			return
		}
		if _, err = p.stats.Fprintf(w, " [n=%d h=%d r=%v]\n", n.size, n.height, n.rank); err != nil {
			return
		}
		draw(n.left, depth+1)
	}
	draw(tree.root, 0)
	if err == nil {
		_, err = fmt.Fprintf(w, "%s\n", tree)
	}
	return err
}
