package garden

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame animation metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	transformTime time.Duration
	animateTime   time.Duration
	running       int
	finished      int
}

// debugLog prints timing and animation stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[garden] transforms: %v | animate: %v | total: %v\n",
		stats.transformTime, stats.animateTime, stats.transformTime+stats.animateTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[garden] running: %d | finished: %d\n",
		stats.running, stats.finished)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("garden debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns on stderr if n sits deeper than debugMaxTreeDepth.
// Every level multiplies into EffectiveSpeed on each animation tick.
func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[garden] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[garden] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
