package pressure

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want Valve
	}{
		{
			line: "Valve AA has flow rate=0; tunnels lead to valves DD, II, BB",
			want: Valve{Name: "AA", Rate: 0, Tunnels: []string{"DD", "II", "BB"}},
		},
		{
			line: "Valve HH has flow rate=22; tunnel leads to valve GG",
			want: Valve{Name: "HH", Rate: 22, Tunnels: []string{"GG"}},
		},
		{
			line: "  Valve JJ has flow rate=21; tunnel leads to valve II  ",
			want: Valve{Name: "JJ", Rate: 21, Tunnels: []string{"II"}},
		},
	}
	for _, tt := range tests {
		got, err := ParseLine(tt.line)
		if err != nil {
			t.Errorf("ParseLine(%q): %v", tt.line, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestParseLineErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"Valve AA has flow rate=-3; tunnels lead to valves BB",
		"Valve AA has flow rate=x; tunnels lead to valves BB",
		"Valve AA has flow rate=1",
		"valve AA has flow rate=1; tunnels lead to valves BB",
	} {
		if _, err := ParseLine(line); !errors.Is(err, ErrSyntax) {
			t.Errorf("ParseLine(%q) error = %v, want ErrSyntax", line, err)
		}
	}
}

func TestParse(t *testing.T) {
	n, err := Parse(strings.NewReader("\n" + sample + "\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := n.Len(), 10; got != want {
		t.Errorf("Len = %d, want %d", got, want)
	}
	if got, want := n.Interesting(), 6; got != want {
		t.Errorf("Interesting = %d, want %d", got, want)
	}

	_, err = Parse(strings.NewReader("Valve AA has flow rate=0; tunnels lead to valves BB\nnonsense\n"))
	if !errors.Is(err, ErrSyntax) || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Parse error = %v, want ErrSyntax on line 2", err)
	}

	_, err = Parse(strings.NewReader("Valve AA has flow rate=0; tunnels lead to valves BB\n"))
	if !errors.Is(err, ErrUnknownTunnel) {
		t.Errorf("Parse error = %v, want ErrUnknownTunnel", err)
	}
}
