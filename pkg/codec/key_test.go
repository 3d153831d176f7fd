package codec

import "testing"

func TestMakeKeyCaseInsensitive(t *testing.T) {
	k1 := MakeKey("Data.ADK.BIN", true, ADK)
	k2 := MakeKey("data.adk.bin", true, ADK)
	if k1 != k2 {
		t.Errorf("keys differ by case: %x vs %x", k1, k2)
	}
}

func TestMakeKeyNoRandomize(t *testing.T) {
	got := MakeKey("save.s2m", false, ADK)
	want := gameKeys[ADK]
	if got != want {
		t.Errorf("got %x, want constant key %x", got, want)
	}
}

func TestShouldRandomize(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"save.s2m", false},
		{"save.sav", false},
		{"archive.cmp.adk", true},
		{"SAVE.S2M", false},
	}
	for _, c := range cases {
		if got := shouldRandomize(c.name); got != c.want {
			t.Errorf("shouldRandomize(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestGameFromFilename(t *testing.T) {
	cases := []struct {
		name    string
		want    Game
		wantErr bool
	}{
		{"data.adk.bin", ADK, false},
		{"data.dng.bin", DNG, false},
		{"data.bin", 0, true},
		{"data.adk.dng.bin", 0, true},
	}
	for _, c := range cases {
		got, err := GameFromFilename(c.name)
		if c.wantErr {
			if err == nil {
				t.Errorf("GameFromFilename(%q): expected error", c.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("GameFromFilename(%q): unexpected error %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("GameFromFilename(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestGameFromTypeTag(t *testing.T) {
	if g, err := GameFromTypeTag(typeTagADK); err != nil || g != ADK {
		t.Errorf("GameFromTypeTag(ADK tag) = %v, %v", g, err)
	}
	if g, err := GameFromTypeTag(typeTagDNG); err != nil || g != DNG {
		t.Errorf("GameFromTypeTag(DNG tag) = %v, %v", g, err)
	}
	if _, err := GameFromTypeTag(0); err != ErrUnknownTypeTag {
		t.Errorf("GameFromTypeTag(0) error = %v, want ErrUnknownTypeTag", err)
	}
}

func TestStripMarkers(t *testing.T) {
	if got := stripCmpMarker("archive.cmp.sav"); got != "archive.sav" {
		t.Errorf("stripCmpMarker = %q", got)
	}
	if got := stripGameMarker("data.adk.bin", ADK); got != "data.bin" {
		t.Errorf("stripGameMarker = %q", got)
	}
}
