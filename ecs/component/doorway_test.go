package component

import (
	"testing"

	"github.com/AIalchemistART/AIalchemistsLAIR/scene"
)

func TestWallSideFor(t *testing.T) {
	cases := []struct {
		dir  scene.Direction
		want WallSide
	}{
		{scene.North, WallSideNorth},
		{scene.South, WallSideNorth},
		{scene.East, WallSideWest},
		{scene.West, WallSideWest},
	}
	for _, c := range cases {
		if got := WallSideFor(c.dir); got != c.want {
			t.Fatalf("WallSideFor(%s) = %s, want %s", c.dir, got, c.want)
		}
	}
}
