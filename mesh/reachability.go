// Package mesh - reachability queries over the online subgraph.
//
// Both queries run plain breadth-first search restricted to online nodes,
// mirroring the candidate rules the routing strategies use: a node that
// routing would skip is invisible here too.
package mesh

import "sort"

// Reachable reports whether an online path connects a and b. A node is
// trivially reachable from itself when it is online. Unknown or
// non-online endpoints are never reachable.
//
// Complexity: O(V + E).
func (t *Topology) Reachable(a, b string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	na, okA := t.nodes[a]
	nb, okB := t.nodes[b]
	if !okA || !okB || na.status != StatusOnline || nb.status != StatusOnline {
		return false
	}
	if a == b {
		return true
	}

	visited := map[string]bool{a: true}
	queue := []string{a}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for nbr := range t.adj[curr] {
			if visited[nbr] || t.nodes[nbr].status != StatusOnline {
				continue
			}
			if nbr == b {
				return true
			}
			visited[nbr] = true
			queue = append(queue, nbr)
		}
	}

	return false
}

// Components returns the connected components of the online subgraph.
// Each component lists ids ascending; components are ordered by their
// smallest id, so the result is deterministic.
//
// Complexity: O(V log V + E).
func (t *Topology) Components() [][]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]string, 0, len(t.nodes))
	for id, n := range t.nodes {
		if n.status == StatusOnline {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	visited := make(map[string]bool, len(ids))
	var components [][]string
	for _, start := range ids {
		if visited[start] {
			continue
		}
		// BFS flood from the smallest unvisited id.
		comp := []string{}
		queue := []string{start}
		visited[start] = true
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			comp = append(comp, curr)
			for nbr := range t.adj[curr] {
				if visited[nbr] || t.nodes[nbr].status != StatusOnline {
					continue
				}
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
		sort.Strings(comp)
		components = append(components, comp)
	}

	return components
}
