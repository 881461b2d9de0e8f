package graph

// FindCycles returns every dependency cycle in the graph, immediate or
// transitive. The search is a depth-first traversal driven by an explicit
// frame stack rather than call-stack recursion, so graph depth is bounded
// by memory, not by the runtime stack.
//
// Start nodes are tried in index order, which the builder assigns in
// lexical path order, so two runs over an unchanged graph return the same
// cycle list. A node visited by an earlier search is never restarted as a
// new root; each cycle is therefore reported exactly once, not once per
// participant.
func FindCycles(g *Graph) [][]int {
	n := g.Len()
	visited := make([]bool, n)
	onStack := make([]bool, n)

	type frame struct {
		node int
		next int // index of the next neighbor to try
	}

	var cycles [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		stack := []frame{{node: start}}
		visited[start] = true
		onStack[start] = true

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			edges := g.Edges(f.node)

			if f.next >= len(edges) {
				onStack[f.node] = false
				stack = stack[:len(stack)-1]
				continue
			}

			neighbor := edges[f.next]
			f.next++

			if !visited[neighbor] {
				visited[neighbor] = true
				onStack[neighbor] = true
				stack = append(stack, frame{node: neighbor})
				continue
			}

			if onStack[neighbor] {
				// The cycle is the stack slice from the neighbor's
				// position up to the top of the stack.
				pos := -1
				for i := len(stack) - 1; i >= 0; i-- {
					if stack[i].node == neighbor {
						pos = i
						break
					}
				}
				if pos >= 0 {
					cycle := make([]int, 0, len(stack)-pos)
					for i := pos; i < len(stack); i++ {
						cycle = append(cycle, stack[i].node)
					}
					cycles = append(cycles, cycle)
				}
			}
		}
	}

	return cycles
}
