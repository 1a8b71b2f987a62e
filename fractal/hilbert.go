package fractal

import "github.com/avoskan/graphrat/randutil"

// curveState is one of the 12 orientation states of the Hilbert
// curve-continuity automaton. The four primary states A–D each shrink
// both dimensions over two levels; the eight intermediate states (A1,
// A2, …) are the half-step orientations between them. The automaton is
// closed: every state's transition names only states in this table.
type curveState uint8

const (
	stateNone curveState = iota
	stateA
	stateB
	stateC
	stateD
	stateA1
	stateA2
	stateB1
	stateB2
	stateC1
	stateC2
	stateD1
	stateD2
)

var curveStateNames = [...]string{
	"None", "A", "B", "C", "D",
	"A1", "A2", "B1", "B2", "C1", "C2", "D1", "D2",
}

func (s curveState) String() string { return curveStateNames[s] }

// splitDir is the geometric action a state prescribes: which axis is
// bisected and which half receives the first child.
type splitDir uint8

const (
	splitRight splitDir = iota // bisect X, first child on the left
	splitLeft                  // bisect X, first child on the right
	splitUp                    // bisect Y, first child below
	splitDown                  // bisect Y, first child above
)

// horizontal reports whether the direction bisects the X axis.
func (d splitDir) horizontal() bool { return d == splitRight || d == splitLeft }

// transition maps a state to its split direction and child states.
type transition struct {
	dir           splitDir
	first, second curveState
}

// curveRules is the automaton's transition table, indexed by curveState.
var curveRules = map[curveState]transition{
	stateA: {splitRight, stateA1, stateA2},
	stateB: {splitDown, stateB1, stateB2},
	stateC: {splitLeft, stateC1, stateC2},
	stateD: {splitUp, stateD1, stateD2},

	stateA1: {splitUp, stateD, stateA},
	stateA2: {splitDown, stateA, stateB},
	stateB1: {splitLeft, stateC, stateB},
	stateB2: {splitRight, stateB, stateA},
	stateC1: {splitDown, stateB, stateC},
	stateC2: {splitUp, stateC, stateD},
	stateD1: {splitRight, stateA, stateD},
	stateD2: {splitLeft, stateD, stateC},
}

// maxPowerOf2 returns the exponent of the largest power of two dividing x.
func maxPowerOf2(x int) int {
	if x == 0 {
		return 0
	}
	val := 0
	for x%2 == 0 {
		val++
		x /= 2
	}
	return val
}

// rootStates returns the admissible starting states for a width×height
// root. Whichever dimension carries more factors of two must shrink
// first, so only the intermediate states oriented that way are
// admissible; with equal factors the four primary states are.
func rootStates(width, height int) []curveState {
	wp2, hp2 := maxPowerOf2(width), maxPowerOf2(height)
	switch {
	case wp2 > hp2:
		return []curveState{stateB1, stateB2, stateD1, stateD2}
	case wp2 < hp2:
		return []curveState{stateA1, stateA2, stateC1, stateC2}
	default:
		return []curveState{stateA, stateB, stateC, stateD}
	}
}

// branchHilbert attempts to bisect n as dictated by its automaton state.
// A fresh root draws its state from rootStates first, the only RNG draw
// Hilbert branching ever makes. The attempt fails, leaving n a leaf,
// when the required axis has odd length; the curve stays continuous only
// where exact bisection is possible.
func (t *Tree) branchHilbert(rng *randutil.RNG, n *Node) bool {
	if n.state == stateNone && n.Parent == 0 {
		s, err := randutil.Pick(rng, rootStates(n.Width, n.Height))
		if err != nil {
			return false
		}
		n.state = s
	}
	rule, ok := curveRules[n.state]
	if !ok {
		return false
	}
	if rule.dir.horizontal() {
		if n.Width%2 != 0 {
			return false
		}
		n.Kind = SplitVertical
		w := n.Width / 2
		firstX, secondX := n.LeftX, n.LeftX+w
		if rule.dir == splitLeft {
			firstX, secondX = secondX, firstX
		}
		first := t.newNode(Rect{Width: w, Height: n.Height, LeftX: firstX, UpperY: n.UpperY})
		first.state = rule.first
		second := t.newNode(Rect{Width: w, Height: n.Height, LeftX: secondX, UpperY: n.UpperY})
		second.state = rule.second
		t.addChild(n, first)
		t.addChild(n, second)
		return true
	}
	if n.Height%2 != 0 {
		return false
	}
	n.Kind = SplitHorizontal
	h := n.Height / 2
	firstY, secondY := n.UpperY, n.UpperY+h
	if rule.dir == splitUp {
		firstY, secondY = secondY, firstY
	}
	first := t.newNode(Rect{Width: n.Width, Height: h, LeftX: n.LeftX, UpperY: firstY})
	first.state = rule.first
	second := t.newNode(Rect{Width: n.Width, Height: h, LeftX: n.LeftX, UpperY: secondY})
	second.state = rule.second
	t.addChild(n, first)
	t.addChild(n, second)
	return true
}
