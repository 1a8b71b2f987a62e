// Graph file codec.
//
// Layout: '# ' comment block, a `Width Height EdgeCount [RegionCount]`
// header, `n id ilf` per node in id order, `e i j` per directed edge in
// ascending order, optional `r x y w h` per region. The header's counts
// are a contract: Load fails on any mismatch and returns no graph.
package maze

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// defaultILF fills node slots before their `n` records arrive.
const defaultILF = 1.5

// isComment reports a blank line or one starting with '#' after
// optional leading whitespace.
func isComment(line string) bool {
	s := strings.TrimLeft(line, " \t")
	return len(s) == 0 || s[0] == '#'
}

// Store writes the graph. Output is fully determined by the graph's
// contents; Comments carry all provenance.
func (g *Graph) Store(w io.Writer) error {
	bw := bufio.NewWriter(w)
	legend := "Width Height Edges"
	if len(g.Regions) > 0 {
		legend = "Width Height Edges Regions"
	}
	for _, line := range append(append([]string{}, g.Comments...), "", legend) {
		if line == "" {
			fmt.Fprintln(bw, "#")
			continue
		}
		fmt.Fprintf(bw, "# %s\n", line)
	}
	if len(g.Regions) > 0 {
		fmt.Fprintf(bw, "%d %d %d %d\n", g.Width, g.Height, g.EdgeCount(), len(g.Regions))
	} else {
		fmt.Fprintf(bw, "%d %d %d\n", g.Width, g.Height, g.EdgeCount())
	}
	for i, ilf := range g.ILF {
		fmt.Fprintf(bw, "n %d %.5f\n", i, ilf)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "e %d %d\n", e[0], e[1])
	}
	for _, r := range g.Regions {
		fmt.Fprintf(bw, "r %d %d %d %d\n", r.X, r.Y, r.W, r.H)
	}
	return bw.Flush()
}

// Load parses a stored graph under strict structural validation: the
// number of n, e, and r records must match the header exactly, any
// mismatch discards the partial graph with ErrCountMismatch naming the
// expected and actual counts.
func Load(r io.Reader) (*Graph, error) {
	g := &Graph{
		edges:     make(map[[2]int]struct{}),
		maxHubs:   DefaultMaxHubs,
		minAspect: DefaultMinAspect,
	}
	var wantEdges, wantRegions int
	var gotNodes, gotEdges, gotRegions int
	haveHeader := false

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if isComment(line) {
			continue
		}
		fields := strings.Fields(line)
		if !haveHeader {
			var err error
			if wantEdges, wantRegions, err = g.loadHeader(fields, lineNo); err != nil {
				return nil, err
			}
			haveHeader = true
			continue
		}
		switch fields[0] {
		case "n":
			id, ilf, err := parseNodeRecord(fields)
			if err != nil {
				return nil, fmt.Errorf("maze: line %d %q: %w", lineNo, line, err)
			}
			// Node records arrive in id order; a shuffled or repeated id
			// would silently misassign load factors.
			if id != gotNodes {
				return nil, fmt.Errorf("maze: line %d: node id %d, expected %d: %w", lineNo, id, gotNodes, ErrBadRecord)
			}
			if gotNodes < len(g.ILF) {
				g.ILF[gotNodes] = ilf
			}
			gotNodes++
		case "e":
			i, j, err := parseEdgeRecord(fields)
			if err != nil {
				return nil, fmt.Errorf("maze: line %d %q: %w", lineNo, line, err)
			}
			// Both directions arrive as separate lines; only the first
			// insertion of a pair counts, as two directed edges.
			if g.addEdge(i, j) {
				gotEdges += 2
			}
		case "r":
			reg, err := parseRegionRecord(fields)
			if err != nil {
				return nil, fmt.Errorf("maze: line %d %q: %w", lineNo, line, err)
			}
			reg.ID = gotRegions
			g.Regions = append(g.Regions, reg)
			gotRegions++
		default:
			return nil, fmt.Errorf("maze: line %d %q: %w", lineNo, line, ErrBadRecord)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: reading graph: %w", err)
	}
	if !haveHeader {
		return nil, fmt.Errorf("maze: empty input: %w", ErrBadHeader)
	}
	if gotNodes != g.NodeCount() {
		return nil, fmt.Errorf("maze: expected %d nodes, found %d: %w", g.NodeCount(), gotNodes, ErrCountMismatch)
	}
	if gotEdges != wantEdges {
		return nil, fmt.Errorf("maze: expected %d edges, found %d: %w", wantEdges, gotEdges, ErrCountMismatch)
	}
	if gotRegions != wantRegions {
		return nil, fmt.Errorf("maze: expected %d regions, found %d: %w", wantRegions, gotRegions, ErrCountMismatch)
	}
	return g, nil
}

// loadHeader parses `Width Height EdgeCount [RegionCount]` and sizes the
// node array, returning the declared edge and region counts.
func (g *Graph) loadHeader(fields []string, lineNo int) (edges, regions int, err error) {
	if len(fields) < 3 || len(fields) > 4 {
		return 0, 0, fmt.Errorf("maze: line %d: %w", lineNo, ErrBadHeader)
	}
	nums := make([]int, len(fields))
	for i, f := range fields {
		v, convErr := strconv.Atoi(f)
		if convErr != nil {
			return 0, 0, fmt.Errorf("maze: line %d: %w", lineNo, ErrBadHeader)
		}
		nums[i] = v
	}
	if nums[0] < 1 || nums[1] < 1 || nums[2] < 0 {
		return 0, 0, fmt.Errorf("maze: line %d: %w", lineNo, ErrBadHeader)
	}
	g.Width, g.Height = nums[0], nums[1]
	if len(nums) == 4 {
		regions = nums[3]
	}
	g.ILF = make([]float64, g.NodeCount())
	for i := range g.ILF {
		g.ILF[i] = defaultILF
	}
	return nums[2], regions, nil
}

func parseNodeRecord(fields []string) (int, float64, error) {
	if len(fields) != 3 {
		return 0, 0, ErrBadRecord
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, ErrBadRecord
	}
	ilf, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, ErrBadRecord
	}
	return id, ilf, nil
}

func parseEdgeRecord(fields []string) (int, int, error) {
	if len(fields) != 3 {
		return 0, 0, ErrBadRecord
	}
	i, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, ErrBadRecord
	}
	j, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, ErrBadRecord
	}
	return i, j, nil
}

func parseRegionRecord(fields []string) (Region, error) {
	if len(fields) != 5 {
		return Region{}, ErrBadRecord
	}
	nums := make([]int, 4)
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Region{}, ErrBadRecord
		}
		nums[i] = v
	}
	return Region{X: nums[0], Y: nums[1], W: nums[2], H: nums[3], Zone: -1}, nil
}
