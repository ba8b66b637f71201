package pressure

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var valveRx = regexp.MustCompile(`^Valve (\S+) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)

// ParseLine parses a single line of the form
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
func ParseLine(line string) (Valve, error) {
	m := valveRx.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Valve{}, fmt.Errorf("%w: %q", ErrSyntax, line)
	}
	rate, err := strconv.Atoi(m[2])
	if err != nil {
		return Valve{}, fmt.Errorf("%w: rate %q: %v", ErrSyntax, m[2], err)
	}
	v := Valve{Name: m[1], Rate: rate}
	for _, t := range strings.Split(m[3], ",") {
		if t = strings.TrimSpace(t); t != "" {
			v.Tunnels = append(v.Tunnels, t)
		}
	}
	return v, nil
}

// Parse reads one valve per line from r. Blank lines are skipped.
func Parse(r io.Reader) (*Network, error) {
	var valves []Valve
	s := bufio.NewScanner(r)
	y := 0
	for s.Scan() {
		y++
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", y, err)
		}
		valves = append(valves, v)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return NewNetwork(valves)
}
