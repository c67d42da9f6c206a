package roads

// Len returns the number of accepted roads.
func (n *Network) Len() int { return len(n.Roads) }

// Walk calls fn for every road in generation order, following Next from
// First, until fn returns false.
func (n *Network) Walk(fn func(r *Road) bool) {
	for i, steps := n.First, 0; i != None && steps < len(n.Roads); i, steps = n.Roads[i].Next, steps+1 {
		if !fn(&n.Roads[i]) {
			return
		}
	}
}

// TotalLength sums the length of all roads.
func (n *Network) TotalLength() float64 {
	total := 0.0
	for i := range n.Roads {
		total += n.Roads[i].Length
	}
	return total
}

// BuildingCount returns the number of buildings attached to all roads.
func (n *Network) BuildingCount() int {
	c := 0
	for i := range n.Roads {
		c += len(n.Roads[i].Buildings)
	}
	return c
}
