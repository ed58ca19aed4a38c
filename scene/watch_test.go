package scene

import "testing"

func TestClassifyEvent(t *testing.T) {
	cases := []struct {
		name string
		path string
		want Event
		ok   bool
	}{
		{
			name: "scene_yaml",
			path: "scene/scenes/lair.yaml",
			want: Event{Path: "scene/scenes/lair.yaml", Name: "lair", Kind: EventScene},
			ok:   true,
		},
		{
			name: "scene_yml_uppercase_ext",
			path: "scene/scenes/studio.YML",
			want: Event{Path: "scene/scenes/studio.YML", Name: "studio", Kind: EventScene},
			ok:   true,
		},
		{
			name: "hook_script",
			path: "scene/scripts/lair.tengo",
			want: Event{Path: "scene/scripts/lair.tengo", Name: "lair", Kind: EventScript},
			ok:   true,
		},
		{name: "stray_text_file", path: "scene/scenes/notes.txt"},
		{name: "editor_swap_file", path: "scene/scenes/.lair.yaml.swp"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := classifyEvent(c.path)
			if ok != c.ok {
				t.Fatalf("ok = %v, want %v", ok, c.ok)
			}
			if ok && got != c.want {
				t.Fatalf("event = %+v, want %+v", got, c.want)
			}
		})
	}
}
