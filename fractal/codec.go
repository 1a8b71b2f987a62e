// Tree file codec.
//
// One record per node:
//
//	Kind Id Width Height LeftX UpperY ChildCount Child1 ... ChildN
//
// Records are written in strictly descending id order. The root is
// always id 1 (first allocation), so every child record precedes its
// parent's and the root record is last; loading resolves children in a
// single pass. Lines whose first non-blank character is '#' are
// provenance comments and are ignored on load.
package fractal

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// recordFields is the minimum field count of a node record: kind, id,
// four rectangle coordinates, and the child count.
const recordFields = 7

// isComment reports whether a line carries no record: blank, or '#' after
// optional leading whitespace.
func isComment(line string) bool {
	s := strings.TrimLeft(line, " \t")
	return len(s) == 0 || s[0] == '#'
}

// Store writes the tree in the text format above. The comments, followed
// by the tree's own HeaderLines and a column legend, become the leading
// '#' block. Store itself adds no timestamp, so a stored tree is
// byte-reproducible; callers wanting provenance pass it in comments.
func (t *Tree) Store(w io.Writer, comments ...string) error {
	bw := bufio.NewWriter(w)
	header := append(append([]string{}, comments...), t.HeaderLines()...)
	header = append(header, "", "Kind Id Width Height LeftX UpperY ChildCount Children...")
	for _, line := range header {
		if line == "" {
			fmt.Fprintln(bw, "#")
			continue
		}
		fmt.Fprintf(bw, "# %s\n", line)
	}

	ids := make([]int, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))
	for _, id := range ids {
		n := t.nodes[id]
		fmt.Fprintf(bw, "%s %d %d %d %d %d %d", n.Kind, n.ID, n.Width, n.Height, n.LeftX, n.UpperY, len(n.Children))
		for _, cid := range n.Children {
			fmt.Fprintf(bw, " %d", cid)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// Load parses a stored tree. It fails, returning no tree, when a record
// cannot be parsed, a child id is referenced before its own record,
// a node claims itself or an already-claimed node as a child, or no
// node with id 1 exists by end of input.
func Load(r io.Reader) (*Tree, error) {
	t := newTree(0)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if isComment(line) {
			continue
		}
		if err := t.loadRecord(line, lineNo); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fractal: reading tree: %w", err)
	}
	root, ok := t.nodes[1]
	if !ok {
		return nil, ErrNoRoot
	}
	t.rootID = root.ID
	t.finish()
	return t, nil
}

// loadRecord parses one node record into the arena.
func (t *Tree) loadRecord(line string, lineNo int) error {
	fields := strings.Fields(line)
	if len(fields) < recordFields {
		return fmt.Errorf("fractal: line %d %q: %w", lineNo, line, ErrBadRecord)
	}
	kind, ok := parseKind(fields[0])
	if !ok {
		return fmt.Errorf("fractal: line %d: unknown kind %q: %w", lineNo, fields[0], ErrBadRecord)
	}
	nums := make([]int, len(fields)-1)
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("fractal: line %d %q: %w", lineNo, line, ErrBadRecord)
		}
		nums[i] = v
	}
	childCount := nums[5]
	children := nums[6:]
	if childCount < 0 || childCount != len(children) {
		return fmt.Errorf("fractal: line %d: child count %d, got %d children: %w",
			lineNo, childCount, len(children), ErrBadRecord)
	}
	n := &Node{
		ID:       nums[0],
		Kind:     kind,
		Rect:     Rect{Width: nums[1], Height: nums[2], LeftX: nums[3], UpperY: nums[4]},
		Children: []int{},
	}
	t.nodes[n.ID] = n
	if n.ID >= t.nextID {
		t.nextID = n.ID
	}
	for _, cid := range children {
		if cid == n.ID {
			return fmt.Errorf("fractal: line %d: node %d lists itself as a child: %w", lineNo, n.ID, ErrBadRecord)
		}
		child, ok := t.nodes[cid]
		if !ok {
			return fmt.Errorf("fractal: line %d: child id %d: %w", lineNo, cid, ErrUnknownChild)
		}
		if child.Parent != 0 {
			return fmt.Errorf("fractal: line %d: child id %d already has parent %d: %w",
				lineNo, cid, child.Parent, ErrBadRecord)
		}
		t.addChild(n, child)
	}
	return nil
}
