package game

// Unreachable is returned by Distance when the goal cannot be reached.
const Unreachable = -1

type pathNode struct {
	pos    Position
	parent int // index into the visit order, -1 for the start
	steps  int
}

// ShortestPath runs a breadth-first search over diagonal moves and returns
// the path from start to goal, both inclusive. ok is false when goal is
// unreachable.
func ShortestPath(start, goal Position, boardSize int, forwardOnly bool) (path []Position, ok bool) {
	if !InBounds(start, boardSize) || !InBounds(goal, boardSize) {
		return nil, false
	}

	// The queue doubles as the parent table: nodes are never removed, only
	// the head index advances.
	queue := []pathNode{{pos: start, parent: -1}}
	visited := map[Position]bool{start: true}

	for head := 0; head < len(queue); head++ {
		current := queue[head]
		if current.pos == goal {
			return rebuild(queue, head), true
		}

		for _, next := range DiagonalMoves(current.pos, boardSize, forwardOnly) {
			if visited[next] {
				continue
			}
			// Mark on enqueue so a cell never sits in the frontier twice
			visited[next] = true
			queue = append(queue, pathNode{pos: next, parent: head, steps: current.steps + 1})
		}
	}
	return nil, false
}

func rebuild(nodes []pathNode, last int) []Position {
	path := make([]Position, nodes[last].steps+1)
	for i := last; i >= 0; i = nodes[i].parent {
		path[nodes[i].steps] = nodes[i].pos
	}
	return path
}

// Distance returns the minimum number of diagonal steps from start to goal,
// or Unreachable.
func Distance(start, goal Position, boardSize int, forwardOnly bool) int {
	path, ok := ShortestPath(start, goal, boardSize, forwardOnly)
	if !ok {
		return Unreachable
	}
	return len(path) - 1
}

// Reachable returns every cell reachable from start in at most maxSteps
// moves, start included, in BFS order.
func Reachable(start Position, maxSteps, boardSize int, forwardOnly bool) []Position {
	if !InBounds(start, boardSize) {
		return nil
	}

	type entry struct {
		pos   Position
		steps int
	}
	queue := []entry{{pos: start}}
	visited := map[Position]bool{start: true}
	reachable := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		// Budget exhausted: keep the cell recorded but stop expanding it
		if current.steps >= maxSteps {
			continue
		}

		for _, next := range DiagonalMoves(current.pos, boardSize, forwardOnly) {
			if visited[next] {
				continue
			}
			visited[next] = true
			reachable = append(reachable, next)
			queue = append(queue, entry{pos: next, steps: current.steps + 1})
		}
	}
	return reachable
}
