package pressure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNetworkErrors(t *testing.T) {
	tests := []struct {
		name   string
		valves []Valve
		want   error
	}{
		{"empty name", []Valve{{Name: ""}}, ErrEmptyName},
		{"duplicate", []Valve{{Name: "AA"}, {Name: "AA"}}, ErrDuplicateValve},
		{"negative rate", []Valve{{Name: "AA", Rate: -1}}, ErrNegativeRate},
		{"dangling tunnel", []Valve{{Name: "AA", Tunnels: []string{"ZZ"}}}, ErrUnknownTunnel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNetwork(tt.valves)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNetworkIsImmutable(t *testing.T) {
	in := []Valve{
		{Name: "AA", Tunnels: []string{"BB"}},
		{Name: "BB", Rate: 5, Tunnels: []string{"AA"}},
	}
	n, err := NewNetwork(in)
	require.NoError(t, err)

	in[0].Tunnels[0] = "XX"
	out := n.Valves()
	out[1].Tunnels[0] = "YY"

	aa, ok := n.Valve("AA")
	require.True(t, ok)
	assert.Equal(t, []string{"BB"}, aa.Tunnels)
	bb, ok := n.Valve("BB")
	require.True(t, ok)
	assert.Equal(t, []string{"AA"}, bb.Tunnels)

	_, ok = n.Valve("CC")
	assert.False(t, ok)
}
