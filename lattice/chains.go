package lattice

import (
	"fmt"
	"strings"
)

// Heads returns the first node of every chain with at least one link,
// in arena order.
func (l *Lattice) Heads() []int {
	var heads []int
	for i := range l.nodes {
		if l.nodes[i].Prev == None && l.nodes[i].Next != None {
			heads = append(heads, i)
		}
	}
	return heads
}

// Chains walks Next from every head and returns the node sequences.
// Complexity: O(Len()).
func (l *Lattice) Chains() [][]int {
	heads := l.Heads()
	chains := make([][]int, 0, len(heads))
	for _, h := range heads {
		chain := []int{h}
		for cur := l.nodes[h].Next; cur != None && len(chain) <= len(l.nodes); cur = l.nodes[cur].Next {
			chain = append(chain, cur)
		}
		chains = append(chains, chain)
	}
	return chains
}

// Edges flattens Chains into consecutive (from, to) pairs.
func (l *Lattice) Edges() [][2]int {
	edges := make([][2]int, 0, l.links)
	for _, chain := range l.Chains() {
		for k := 1; k < len(chain); k++ {
			edges = append(edges, [2]int{chain[k-1], chain[k]})
		}
	}
	return edges
}

// Terminals returns the active nodes missing a successor or a predecessor,
// which includes chain ends and unlinked nodes.
func (l *Lattice) Terminals() []int {
	var out []int
	for i := range l.nodes {
		n := l.nodes[i]
		if n.Active && (n.Next == None || n.Prev == None) {
			out = append(out, i)
		}
	}
	return out
}

// Validate checks the link structure: every Next has a matching Prev and
// the successor graph is acyclic.
// Returns ErrAsymmetricLink or ErrCycle (wrapped) with the offending index.
// Complexity: O(Len()).
func (l *Lattice) Validate() error {
	for i := range l.nodes {
		if nx := l.nodes[i].Next; nx != None {
			if nx < 0 || nx >= len(l.nodes) || l.nodes[nx].Prev != i {
				return fmt.Errorf("node %d: %w", i, ErrAsymmetricLink)
			}
		}
		if pv := l.nodes[i].Prev; pv != None {
			if pv < 0 || pv >= len(l.nodes) || l.nodes[pv].Next != i {
				return fmt.Errorf("node %d: %w", i, ErrAsymmetricLink)
			}
		}
	}
	// With symmetric single links every linked node lies on exactly one chain.
	// Nodes unreachable from a head belong to a cycle.
	seen := make([]bool, len(l.nodes))
	for _, chain := range l.Chains() {
		for _, i := range chain {
			seen[i] = true
		}
	}
	for i := range l.nodes {
		if l.nodes[i].Next != None && !seen[i] {
			return fmt.Errorf("node %d: %w", i, ErrCycle)
		}
	}
	return nil
}

// Fingerprint returns a canonical dump of all links ("a>b;" in arena order).
// Equal fingerprints mean identical networks.
func (l *Lattice) Fingerprint() string {
	var sb strings.Builder
	for i := range l.nodes {
		if nx := l.nodes[i].Next; nx != None {
			fmt.Fprintf(&sb, "%d>%d;", i, nx)
		}
	}
	return sb.String()
}
