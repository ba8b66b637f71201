package cli

import "testing"

func TestParseSample(t *testing.T) {
	tests := []struct {
		text string
		want sample
	}{
		{
			text: `want=1

some-input
`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			text: `
want=1651 1707

Valve AA has flow rate=0; tunnels lead to valves BB
Valve BB has flow rate=1; tunnels lead to valves AA
`,
			want: sample{
				want: "1651 1707",
				input: `Valve AA has flow rate=0; tunnels lead to valves BB
Valve BB has flow rate=1; tunnels lead to valves AA
`,
			},
		},
		{
			text: "want=1 2\n\nline one\nline two",
			want: sample{want: "1 2", input: "line one\nline two\n"},
		},
		{
			text: "want=??? 5\n",
			want: sample{want: "??? 5"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.text); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %+v, want %+v", tt.text, got, tt.want)
		}
	}
	if _, ok := parseSample("no header\n"); ok {
		t.Error("parseSample without want= succeeded")
	}
}

func TestEmbeddedSample(t *testing.T) {
	s, ok := parseSample(embeddedSample)
	if !ok {
		t.Fatal("embedded sample has no want= line")
	}
	if s.want != "1651 1707" {
		t.Errorf("want = %q", s.want)
	}
	if s.input == "" {
		t.Error("embedded sample has no input")
	}
}
