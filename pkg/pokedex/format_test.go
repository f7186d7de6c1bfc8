package pokedex

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

func TestStatPercentage(t *testing.T) {
	tests := []struct {
		base int
		want int
	}{
		{0, 0},
		{1, 0},
		{3, 1},
		{35, 13},
		{128, 50},
		{254, 99},
		{255, 100},
		{300, 100},
		{-10, 0},
	}

	for _, tt := range tests {
		if got := StatPercentage(tt.base); got != tt.want {
			t.Errorf("StatPercentage(%d) = %d, want %d", tt.base, got, tt.want)
		}
	}
}

func TestStatPercentageBounds(t *testing.T) {
	for v := -300; v <= 1000; v++ {
		got := StatPercentage(v)
		if got < 0 || got > 100 {
			t.Fatalf("StatPercentage(%d) = %d, out of [0,100]", v, got)
		}
		if v >= 0 && v < 255 && got != v*100/255 {
			t.Fatalf("StatPercentage(%d) = %d, want floor %d", v, got, v*100/255)
		}
	}
}

func TestFormatDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"pikachu", "Pikachu"},
		{"mr-mime", "Mr Mime"},
		{"special-attack", "Special Attack"},
		{"tapu-koko", "Tapu Koko"},
		{"ho-oh", "Ho Oh"},
		{"porygon-z", "Porygon Z"},
		{"Already", "Already"},
		{"flabébé", "Flabébé"},
	}

	for _, tt := range tests {
		if got := FormatDisplayName(tt.in); got != tt.want {
			t.Errorf("FormatDisplayName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDisplayNameProperty(t *testing.T) {
	inputs := []string{
		"bulbasaur", "nidoran-f", "mr-mime", "type-null", "jangmo-o",
		"great-tusk", "iron-valiant", "ting-lu", "a-b-c-d", "x",
	}

	for _, in := range inputs {
		out := FormatDisplayName(in)
		if strings.Contains(out, "-") {
			t.Errorf("FormatDisplayName(%q) = %q contains a hyphen", in, out)
		}
		orig := strings.Split(in, "-")
		tokens := strings.Split(out, " ")
		if len(tokens) != len(orig) {
			t.Fatalf("FormatDisplayName(%q) = %q: %d tokens, want %d", in, out, len(tokens), len(orig))
		}
		for i, tok := range tokens {
			r, _ := utf8.DecodeRuneInString(tok)
			o, _ := utf8.DecodeRuneInString(orig[i])
			if !unicode.IsUpper(r) || r != unicode.ToUpper(o) {
				t.Errorf("token %q of %q does not start with upper-case %q", tok, out, unicode.ToUpper(o))
			}
		}
	}
}

func TestFormatStatLabel(t *testing.T) {
	tests := map[string]string{
		"hp":              "HP",
		"attack":          "Attack",
		"defense":         "Defense",
		"special-attack":  "Sp. Atk",
		"special-defense": "Sp. Def",
		"speed":           "Speed",
		"unknown-key":     "unknown-key",
		"accuracy":        "accuracy",
		"":                "",
	}

	for in, want := range tests {
		if got := FormatStatLabel(in); got != want {
			t.Errorf("FormatStatLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing slash", "https://host/api/v2/pokemon/25/", "25"},
		{"no trailing slash", "https://host/api/v2/pokemon/25", "25"},
		{"different prefix", "http://localhost:8080/pokeapi/v3/x/y/pokemon/151/", "151"},
		{"query string", "https://host/api/v2/pokemon/7/?lang=en", "7"},
		{"double slash", "https://host/api/v2//pokemon//4//", "4"},
		{"relative path", "/api/v2/type/fire/", "fire"},
		{"bare id", "25", "25"},
		{"empty", "", ""},
		{"root only", "https://host/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractID(tt.in); got != tt.want {
				t.Errorf("ExtractID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestImageURL(t *testing.T) {
	want := "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/25.png"
	if got := ImageURL("25"); got != want {
		t.Errorf("ImageURL(25) = %q, want %q", got, want)
	}

	if got := ImageURLFrom("https://cdn.test/{id}/{id}.webp", "7"); got != "https://cdn.test/7/7.webp" {
		t.Errorf("ImageURLFrom custom = %q", got)
	}
	if got := ImageURLFrom("", "1"); got != ImageURL("1") {
		t.Errorf("ImageURLFrom empty template = %q", got)
	}
}
