package strategy

import (
	"testing"

	"pursuit/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandomThief(t *testing.T) {
	t.Run("needs a generator", func(t *testing.T) {
		require.Panics(t, func() { NewRandomThief(nil) }, "A nil generator is a programming error")
	})

	t.Run("only free moves", func(t *testing.T) {
		r := NewRandomThief(rand.New(rand.NewSource(3)))
		pieces := game.Pieces{
			Police:  cops(game.Position{Row: 3, Col: 3}),
			Thieves: thieves(game.Position{Row: 2, Col: 2}, game.Position{Row: 1, Col: 1}),
		}
		seen := map[game.Position]bool{}
		for i := 0; i < 100; i++ {
			to, ok := r.Choose(game.SmallBoard, pieces, pieces.Thieves[0])
			require.True(t, ok, "A free move exists")
			seen[to] = true
		}
		require.Equal(t, map[game.Position]bool{
			{Row: 1, Col: 3}: true,
			{Row: 3, Col: 1}: true,
		}, seen, "Every free move and nothing else should be picked")
	})

	t.Run("blocked", func(t *testing.T) {
		r := NewRandomThief(rand.New(rand.NewSource(3)))
		pieces := game.Pieces{
			Police:  cops(game.Position{Row: 1, Col: 1}),
			Thieves: thieves(game.Position{Row: 0, Col: 0}),
		}
		_, ok := r.Choose(game.SmallBoard, pieces, pieces.Thieves[0])
		require.False(t, ok, "A cornered thief has no move")
	})

	t.Run("seeded", func(t *testing.T) {
		pieces := game.Pieces{
			Police:  cops(game.Position{Row: 7, Col: 7}),
			Thieves: thieves(game.Position{Row: 4, Col: 4}),
		}
		pick := func() []game.Position {
			r := NewRandomThief(rand.New(rand.NewSource(9)))
			var out []game.Position
			for i := 0; i < 20; i++ {
				to, _ := r.Choose(game.SmallBoard, pieces, pieces.Thieves[0])
				out = append(out, to)
			}
			return out
		}
		require.Equal(t, pick(), pick(), "Same seed should give the same choices")
	})
}

func TestEscapeThief(t *testing.T) {
	e := NewEscapeThief()

	t.Run("takes the goal", func(t *testing.T) {
		pieces := game.Pieces{
			Police:  cops(game.Position{Row: 7, Col: 1}),
			Thieves: thieves(game.Position{Row: 6, Col: 4}),
		}
		to, ok := e.Choose(game.SmallBoard, pieces, pieces.Thieves[0])
		require.True(t, ok, "A move exists")
		require.Equal(t, 7, to.Row, "The last row should be taken")
	})

	t.Run("keeps away", func(t *testing.T) {
		pieces := game.Pieces{
			Police:  cops(game.Position{Row: 4, Col: 4}),
			Thieves: thieves(game.Position{Row: 2, Col: 2}),
		}
		to, ok := e.Choose(game.SmallBoard, pieces, pieces.Thieves[0])
		require.True(t, ok, "A move exists")
		require.Equal(t, game.Position{Row: 1, Col: 1}, to, "Distance from the police should dominate")
	})

	t.Run("advances when safe", func(t *testing.T) {
		pieces := game.Pieces{
			Police:  cops(game.Position{Row: 0, Col: 6}),
			Thieves: thieves(game.Position{Row: 2, Col: 0}),
		}
		to, ok := e.Choose(game.SmallBoard, pieces, pieces.Thieves[0])
		require.True(t, ok, "A move exists")
		require.Equal(t, game.Position{Row: 3, Col: 1}, to, "Rows toward the goal should count")
	})

	t.Run("blocked", func(t *testing.T) {
		pieces := game.Pieces{
			Police:  cops(game.Position{Row: 1, Col: 1}),
			Thieves: thieves(game.Position{Row: 0, Col: 0}),
		}
		_, ok := e.Choose(game.SmallBoard, pieces, pieces.Thieves[0])
		require.False(t, ok, "A cornered thief has no move")
	})
}
