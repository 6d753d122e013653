package media

import "testing"

func TestMediaTypeString(t *testing.T) {
	if Video.String() != "video" {
		t.Errorf("Video.String() = %q, want video", Video.String())
	}
	if Playlist.String() != "playlist" {
		t.Errorf("Playlist.String() = %q, want playlist", Playlist.String())
	}
	if MediaType(9).String() != "unknown" {
		t.Errorf("MediaType(9).String() = %q, want unknown", MediaType(9).String())
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    Size
		wantErr bool
	}{
		{"invisible", Invisible, false},
		{"Tiny", Tiny, false},
		{" small ", Small, false},
		{"MEDIUM", Medium, false},
		{"large", Large, false},
		{"0", Invisible, false},
		{"4", Large, false},
		{"5", 0, true},
		{"-1", 0, true},
		{"huge", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSizeValidAndControls(t *testing.T) {
	if Size(5).Valid() || Size(-1).Valid() {
		t.Error("out-of-range sizes should be invalid")
	}
	if Size(7).String() != "unknown" {
		t.Errorf("Size(7).String() = %q, want unknown", Size(7).String())
	}
	for _, s := range []Size{Invisible, Tiny} {
		if s.HasControls() {
			t.Errorf("%v should not have controls", s)
		}
	}
	for _, s := range []Size{Small, Medium, Large} {
		if !s.HasControls() {
			t.Errorf("%v should have controls", s)
		}
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input   string
		want    Theme
		wantErr bool
	}{
		{"light", Light, false},
		{"Dark", Dark, false},
		{"random value", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTheme(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTheme(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTheme(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
