package pressure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

func sampleNetwork(t testing.TB) *Network {
	t.Helper()
	n, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	return n
}

func sampleIndex(t testing.TB) *Index {
	t.Helper()
	ix, err := NewIndex(sampleNetwork(t), DefaultStart)
	require.NoError(t, err)
	return ix
}
