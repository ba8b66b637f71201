// Package pressure finds the most pressure that can be released from a
// network of valves in a fixed number of minutes, by one actor or by two
// actors who split the valves between them.
//
// Moving through a tunnel takes a minute, opening a valve takes a minute,
// and an open valve releases its flow rate every minute that remains.
package pressure

import (
	"fmt"
	"slices"
)

// Valve is a single valve and the tunnels leading out of it.
type Valve struct {
	Name    string
	Rate    int
	Tunnels []string
}

// Network is a validated, immutable set of valves.
type Network struct {
	valves []Valve
	byName map[string]int
}

// NewNetwork returns a Network holding a copy of valves. Every tunnel must
// lead to a valve in the list.
func NewNetwork(valves []Valve) (*Network, error) {
	n := &Network{
		valves: make([]Valve, 0, len(valves)),
		byName: make(map[string]int, len(valves)),
	}
	for _, v := range valves {
		if v.Name == "" {
			return nil, ErrEmptyName
		}
		if _, ok := n.byName[v.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateValve, v.Name)
		}
		if v.Rate < 0 {
			return nil, fmt.Errorf("%w: %s has rate %d", ErrNegativeRate, v.Name, v.Rate)
		}
		v.Tunnels = slices.Clone(v.Tunnels)
		n.byName[v.Name] = len(n.valves)
		n.valves = append(n.valves, v)
	}
	for _, v := range n.valves {
		for _, t := range v.Tunnels {
			if _, ok := n.byName[t]; !ok {
				return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownTunnel, v.Name, t)
			}
		}
	}
	return n, nil
}

// Len returns the number of valves.
func (n *Network) Len() int {
	return len(n.valves)
}

// Valves returns the valves in input order.
func (n *Network) Valves() []Valve {
	out := make([]Valve, len(n.valves))
	for i, v := range n.valves {
		v.Tunnels = slices.Clone(v.Tunnels)
		out[i] = v
	}
	return out
}

// Valve returns the valve called name.
func (n *Network) Valve(name string) (Valve, bool) {
	i, ok := n.byName[name]
	if !ok {
		return Valve{}, false
	}
	v := n.valves[i]
	v.Tunnels = slices.Clone(v.Tunnels)
	return v, true
}

// Interesting returns the number of valves with a positive flow rate.
func (n *Network) Interesting() int {
	k := 0
	for _, v := range n.valves {
		if v.Rate > 0 {
			k++
		}
	}
	return k
}
