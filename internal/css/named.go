package css

import "strings"

// namedColors maps lowercase CSS color names to their specified values.
// The set is closed and the map is never mutated after initialization, so
// concurrent lookups need no coordination. Values follow the CSS spec:
// "green" is (0,128,0), not full-intensity (0,255,0).
var namedColors = map[string]Color{
	"black":         {R: 0, G: 0, B: 0},
	"white":         {R: 255, G: 255, B: 255},
	"red":           {R: 255, G: 0, B: 0},
	"green":         {R: 0, G: 128, B: 0},
	"blue":          {R: 0, G: 0, B: 255},
	"yellow":        {R: 255, G: 255, B: 0},
	"cyan":          {R: 0, G: 255, B: 255},
	"magenta":       {R: 255, G: 0, B: 255},
	"gray":          {R: 128, G: 128, B: 128},
	"grey":          {R: 128, G: 128, B: 128},
	"rebeccapurple": {R: 102, G: 51, B: 153},
}

// LookupName reports the color registered under name, matching
// case-insensitively. An unknown name is not an error here; the dispatcher
// falls through to the other grammar branches.
func LookupName(name string) (Color, bool) {
	c, ok := namedColors[strings.ToLower(name)]
	return c, ok
}
