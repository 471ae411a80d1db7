package point

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseLine parses a single "x,y,z" line. Whitespace around the line and
// around each coordinate is ignored.
func ParseLine(s string) (Point, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w: %q", ErrMalformedPoint, s)
	}

	var coords [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Point{}, fmt.Errorf("%w: %q: %v", ErrMalformedPoint, s, err)
		}
		coords[i] = v
	}

	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// Parse reads one point per line from r, skipping blank lines.
// Points are returned in input order; duplicates are kept.
func Parse(r io.Reader) ([]Point, error) {
	var (
		points []Point
		line   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		p, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read input: %w", err)
	}

	return points, nil
}
