package romset

import (
	"testing"

	"dat2lpl/internal/dat"
)

func TestParseArchiveFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    ArchiveFormat
		wantErr bool
	}{
		{"none", ArchiveNone, false},
		{"", ArchiveNone, false},
		{"zip", ArchiveZip, false},
		{".zip", ArchiveZip, false},
		{"7z", Archive7z, false},
		{".7z", Archive7z, false},
		{"7Z", Archive7z, false},
		{"rar", "", true},
	}

	for _, tt := range tests {
		got, err := ParseArchiveFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseArchiveFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseArchiveFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseStorageMode(t *testing.T) {
	tests := []struct {
		input   string
		want    StorageMode
		wantErr bool
	}{
		{"merged", ModeMerged, false},
		{"", ModeMerged, false},
		{"split", ModeSplit, false},
		{"non-merged", ModeNonMerged, false},
		{"nonmerged", ModeNonMerged, false},
		{"Merged", ModeMerged, false},
		{"full", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStorageMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStorageMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStorageMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolveSplit(t *testing.T) {
	game := dat.Game{
		Name: "Alpha (USA)",
		ROMs: []dat.ROM{{Name: "sub/Game.sfc"}},
	}

	tests := []struct {
		name   string
		format ArchiveFormat
		mode   StorageMode
		want   string
	}{
		{"loose split", ArchiveNone, ModeSplit, "R/sub/Game.sfc"},
		{"loose non-merged", ArchiveNone, ModeNonMerged, "R/sub/Game.sfc"},
		{"7z split", Archive7z, ModeSplit, "R/sub/Game.7z#Game.sfc"},
		{"zip split", ArchiveZip, ModeSplit, "R/sub/Game.zip#Game.sfc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver("R", tt.format, tt.mode, nil)
			got, ok := r.Resolve(game)
			if !ok {
				t.Fatal("Resolve() ok = false, want true")
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveMerged(t *testing.T) {
	parents := map[string]string{"1": "Alpha (USA)"}

	parent := dat.Game{Name: "Alpha (USA)", ID: "1", ROMs: []dat.ROM{{Name: "Alpha (USA).sfc"}}}
	clone := dat.Game{Name: "Alpha (Europe)", ID: "2", CloneOfID: "1", ROMs: []dat.ROM{{Name: "Alpha (Europe).sfc"}}}
	orphan := dat.Game{Name: "Beta", ID: "3", CloneOfID: "9", ROMs: []dat.ROM{{Name: "Beta.sfc"}}}

	tests := []struct {
		name   string
		format ArchiveFormat
		game   dat.Game
		want   string
	}{
		{"parent loose", ArchiveNone, parent, "R/Alpha (USA)/Alpha (USA).sfc"},
		{"clone collapses into parent dir", ArchiveNone, clone, "R/Alpha (USA)/Alpha (Europe).sfc"},
		{"parent 7z", Archive7z, parent, "R/Alpha (USA).7z#Alpha (USA).sfc"},
		{"clone collapses into parent archive", Archive7z, clone, "R/Alpha (USA).7z#Alpha (Europe).sfc"},
		{"unresolvable clone id falls back to own name", Archive7z, orphan, "R/Beta.7z#Beta.sfc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver("R", tt.format, ModeMerged, parents)
			got, ok := r.Resolve(tt.game)
			if !ok {
				t.Fatal("Resolve() ok = false, want true")
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitEntryPath(t *testing.T) {
	tests := []struct {
		ref       string
		wantPath  string
		wantEntry string
	}{
		{"R/sub/Game.7z#Game.sfc", "R/sub/Game.7z", "Game.sfc"},
		{"R/sub/Game.sfc", "R/sub/Game.sfc", ""},
		{"R/a#b#c", "R/a#b", "c"},
	}

	for _, tt := range tests {
		path, entry := SplitEntryPath(tt.ref)
		if path != tt.wantPath || entry != tt.wantEntry {
			t.Errorf("SplitEntryPath(%q) = (%q, %q), want (%q, %q)", tt.ref, path, entry, tt.wantPath, tt.wantEntry)
		}
	}
}

func TestResolveNoROMs(t *testing.T) {
	r := NewResolver("R", Archive7z, ModeMerged, nil)
	if _, ok := r.Resolve(dat.Game{Name: "Empty"}); ok {
		t.Error("Resolve() ok = true for game without ROMs, want false")
	}
}
