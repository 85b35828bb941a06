// SPDX-License-Identifier: MIT

package tilemap

// ConnectedComponents finds every group of mutually reachable tiles under
// the map's step rules. Water (Empty) and impassable tiles belong to no
// component. Each component lists tile IDs in BFS discovery order, and
// components are ordered by their smallest ID.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for labels and output.
func (m *Map) ConnectedComponents() [][]int {
	_, comps := m.components()

	return comps
}

// components labels each tile with the index of its component, or -1, and
// collects the members of every component.
func (m *Map) components() (labels []int, comps [][]int) {
	labels = make([]int, len(m.tiles))
	for i := range labels {
		labels[i] = -1
	}

	for i := range m.tiles {
		t := &m.tiles[i]
		if labels[i] >= 0 || t.Is(Empty) || !t.Passable() {
			continue
		}
		// BFS to collect component
		label := len(comps)
		labels[i] = label
		queue := []*Tile{t}
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u.ID)
			for side := Down; side < sideCount; side++ {
				next, _, ok := m.step(u, side)
				if !ok || labels[next.ID] >= 0 {
					continue
				}
				labels[next.ID] = label
				queue = append(queue, next)
			}
		}
		comps = append(comps, comp)
	}

	return labels, comps
}

// Connected reports whether a and b share a component.
func (m *Map) Connected(a, b *Tile) bool {
	if !m.owns(a) || !m.owns(b) {
		return false
	}
	labels, _ := m.components()

	return labels[a.ID] >= 0 && labels[a.ID] == labels[b.ID]
}
