package wugraph

import "sort"

// ConnectedComponents computes the connected components of the
// undirected graph formed by nodes and edges, using iterative BFS (no
// recursion, no general graph library).
//
// Nodes not mentioned in edges but present in nodes form singleton
// components. The returned components are sorted by their smallest
// member node, and each component's members are sorted ascending, for
// deterministic output.
//
// Complexity: O(V + E).
func ConnectedComponents(nodes []Node, edges []Pair) [][]Node {
	adjacency := make(map[Node][]Node, len(nodes))
	for _, n := range nodes {
		if _, ok := adjacency[n]; !ok {
			adjacency[n] = nil
		}
	}
	for _, e := range edges {
		adjacency[e.U] = append(adjacency[e.U], e.V)
		adjacency[e.V] = append(adjacency[e.V], e.U)
	}

	visited := make(map[Node]bool, len(nodes))
	var components [][]Node

	for _, start := range nodes {
		if visited[start] {
			continue
		}

		var component []Node
		queue := []Node{start}
		visited[start] = true

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			component = append(component, cur)

			for _, neigh := range adjacency[cur] {
				if !visited[neigh] {
					visited[neigh] = true
					queue = append(queue, neigh)
				}
			}
		}

		sort.Ints(component)
		components = append(components, component)
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i][0] < components[j][0]
	})

	return components
}
