package system

import (
	"testing"

	"github.com/AIalchemistART/AIalchemistsLAIR/scene"
)

func TestChordDirection(t *testing.T) {
	cases := []struct {
		name  string
		chord keyChord
		want  scene.Direction
	}{
		{"no_shift", keyChord{northPressed: true}, ""},
		{"shift_only", keyChord{shift: true}, ""},
		{"north", keyChord{shift: true, northPressed: true}, scene.North},
		{"south", keyChord{shift: true, southPressed: true}, scene.South},
		{"west", keyChord{shift: true, westPressed: true}, scene.West},
		{"east", keyChord{shift: true, eastPressed: true}, scene.East},
		{"simultaneous_resolves_north_first", keyChord{shift: true, northPressed: true, southPressed: true, eastPressed: true}, scene.North},
		{"simultaneous_south_over_west", keyChord{shift: true, southPressed: true, westPressed: true}, scene.South},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := chordDirection(c.chord); got != c.want {
				t.Fatalf("chordDirection(%+v) = %q, want %q", c.chord, got, c.want)
			}
		})
	}
}
