package pokedex

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultSpriteTemplate is the official artwork location on the sprite
// host. "{id}" is replaced with the numeric creature id.
const DefaultSpriteTemplate = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/{id}.png"

// maxBaseStat is the highest base stat PokeAPI reports; it maps to 100%.
const maxBaseStat = 255

var statLabels = map[string]string{
	"hp":              "HP",
	"attack":          "Attack",
	"defense":         "Defense",
	"special-attack":  "Sp. Atk",
	"special-defense": "Sp. Def",
	"speed":           "Speed",
}

// FormatDisplayName turns a hyphenated upstream name into display form:
// "mr-mime" becomes "Mr Mime". Only the first character of each segment
// changes case.
func FormatDisplayName(raw string) string {
	if raw == "" {
		return ""
	}
	parts := strings.Split(raw, "-")
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		if size == 0 {
			continue
		}
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	return strings.Join(parts, " ")
}

// FormatStatLabel maps a stat key to its short label. Unknown keys are
// returned unchanged.
func FormatStatLabel(key string) string {
	if label, ok := statLabels[key]; ok {
		return label
	}
	return key
}

// StatPercentage converts a base stat to a bar width in [0,100],
// flooring base/255*100.
func StatPercentage(base int) int {
	switch {
	case base <= 0:
		return 0
	case base >= maxBaseStat:
		return 100
	}
	return base * 100 / maxBaseStat
}

// ImageURL returns the official artwork URL for id.
func ImageURL(id string) string {
	return ImageURLFrom(DefaultSpriteTemplate, id)
}

// ImageURLFrom expands "{id}" in template. An empty template selects
// [DefaultSpriteTemplate].
func ImageURLFrom(template, id string) string {
	if template == "" {
		template = DefaultSpriteTemplate
	}
	return strings.ReplaceAll(template, "{id}", id)
}

// ExtractID returns the last non-empty path segment of a resource URL,
// so "https://pokeapi.co/api/v2/pokemon/25/" yields "25". Query strings
// and fragments are ignored. It returns "" when there is no segment.
func ExtractID(resourceURL string) string {
	path := resourceURL
	if u, err := url.Parse(resourceURL); err == nil {
		path = u.Path
	}
	var last string
	for seg := range strings.SplitSeq(path, "/") {
		if seg != "" {
			last = seg
		}
	}
	return last
}
