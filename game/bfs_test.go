package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// relaxDistances computes all-pairs step counts by repeated relaxation.
func relaxDistances(size int, forwardOnly bool) map[[2]Position]int {
	dist := map[[2]Position]int{}
	var cells []Position
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pos := Position{Row: row, Col: col}
			cells = append(cells, pos)
			dist[[2]Position{pos, pos}] = 0
		}
	}

	for changed := true; changed; {
		changed = false
		for _, from := range cells {
			for _, to := range cells {
				d, ok := dist[[2]Position{from, to}]
				if !ok {
					continue
				}
				for _, next := range DiagonalMoves(to, size, forwardOnly) {
					key := [2]Position{from, next}
					if old, ok := dist[key]; !ok || d+1 < old {
						dist[key] = d + 1
						changed = true
					}
				}
			}
		}
	}
	return dist
}

func TestShortestPath(t *testing.T) {
	t.Run("forward distance across the board", func(t *testing.T) {
		require.Equal(t, 7, Distance(Position{Row: 7, Col: 0}, Position{Row: 0, Col: 1}, SmallBoard, true), "Police should need 7 steps")
	})

	t.Run("matches exhaustive search", func(t *testing.T) {
		const size = 4
		for _, forwardOnly := range []bool{false, true} {
			want := relaxDistances(size, forwardOnly)
			for row := 0; row < size; row++ {
				for col := 0; col < size; col++ {
					start := Position{Row: row, Col: col}
					for r := 0; r < size; r++ {
						for c := 0; c < size; c++ {
							goal := Position{Row: r, Col: c}
							d, ok := want[[2]Position{start, goal}]
							if !ok {
								d = Unreachable
							}
							require.Equal(t, d, Distance(start, goal, size, forwardOnly),
								"Distance from %v to %v (forward=%v)", start, goal, forwardOnly)
						}
					}
				}
			}
		}
	})

	t.Run("path is a chain of diagonal steps", func(t *testing.T) {
		start, goal := Position{Row: 7, Col: 1}, Position{Row: 2, Col: 4}
		path, ok := ShortestPath(start, goal, SmallBoard, true)
		require.True(t, ok, "Goal should be reachable")
		require.Equal(t, start, path[0], "Path should begin at the start")
		require.Equal(t, goal, path[len(path)-1], "Path should end at the goal")
		for i := 1; i < len(path); i++ {
			require.True(t, IsDiagonalStep(path[i-1], path[i]), "Consecutive cells should be one diagonal apart")
			require.Equal(t, path[i-1].Row-1, path[i].Row, "Forward path should only decrease the row")
		}
	})

	t.Run("unreachable goals", func(t *testing.T) {
		require.Equal(t, Unreachable, Distance(Position{Row: 2, Col: 2}, Position{Row: 5, Col: 5}, SmallBoard, true), "Behind a forward-only piece")
		require.Equal(t, Unreachable, Distance(Position{Row: 0, Col: 0}, Position{Row: 0, Col: 1}, SmallBoard, false), "Other color class")
		require.Equal(t, Unreachable, Distance(Position{Row: 0, Col: 0}, Position{Row: 9, Col: 9}, SmallBoard, false), "Off the board")
	})

	t.Run("start is goal", func(t *testing.T) {
		path, ok := ShortestPath(Position{Row: 3, Col: 3}, Position{Row: 3, Col: 3}, SmallBoard, true)
		require.True(t, ok, "Start should reach itself")
		require.Equal(t, []Position{{Row: 3, Col: 3}}, path, "Path should hold only the start")
	})
}

func TestReachable(t *testing.T) {
	t.Run("zero steps", func(t *testing.T) {
		require.Equal(t, []Position{{Row: 4, Col: 4}}, Reachable(Position{Row: 4, Col: 4}, 0, SmallBoard, false), "Only the start")
	})

	t.Run("bounded by steps", func(t *testing.T) {
		start := Position{Row: 4, Col: 4}
		cells := Reachable(start, 2, SmallBoard, false)
		require.Equal(t, start, cells[0], "Start comes first")
		for _, c := range cells {
			d := Distance(start, c, SmallBoard, false)
			require.True(t, d >= 0 && d <= 2, "Every cell should be within two steps")
		}
		// 1 start + 4 at one step + 8 at two steps
		require.Len(t, cells, 13, "Every cell within two steps should be listed")
	})

	t.Run("forward only", func(t *testing.T) {
		cells := Reachable(Position{Row: 7, Col: 1}, 2, SmallBoard, true)
		require.ElementsMatch(t, []Position{
			{Row: 7, Col: 1},
			{Row: 6, Col: 0}, {Row: 6, Col: 2},
			{Row: 5, Col: 1}, {Row: 5, Col: 3},
		}, cells, "Forward cells within two steps")
	})

	t.Run("off board start", func(t *testing.T) {
		require.Nil(t, Reachable(Position{Row: -1, Col: 0}, 3, SmallBoard, false), "Nothing is reachable")
	})
}
