package object

// Layer is one sprite of a piece composite. Offsets are logical pixels
// relative to the top-left corner of the piece's hit-box rectangle.
type Layer struct {
	Sprite  string
	XOffset float64
	YOffset float64
	Ratio   float64
}

// Variant is an ordered layer set making up one piece look. The first layer
// is the hit-box layer: its sprite sizes the piece and its ratio scales the
// collision circle.
type Variant []Layer

// variants catalogs every piece template by kind.
var variants = map[Kind][]Variant{
	Head: {
		{{Sprite: "head-1", Ratio: 0.9}},
		{{Sprite: "head-2", Ratio: 0.9}},
		{{Sprite: "head-3", Ratio: 0.9}},
	},
	Arms: {
		{
			{Sprite: "torso-1", Ratio: 0.8},
			{Sprite: "arms-1", XOffset: -46, YOffset: -40, Ratio: 0.8},
		},
		{
			{Sprite: "torso-1", Ratio: 0.8},
			{Sprite: "arms-2", XOffset: -45, YOffset: -55, Ratio: 0.8},
		},
		{
			{Sprite: "torso-2", Ratio: 0.8},
			{Sprite: "arms-3", XOffset: -78, YOffset: -55, Ratio: 0.8},
		},
	},
	Legs: {
		{{Sprite: "legs-1", Ratio: 0.9}},
		{{Sprite: "legs-2", Ratio: 0.9}},
		{{Sprite: "legs-3", Ratio: 0.9}},
	},
}

// VariantsFor returns the catalog templates for a kind.
func VariantsFor(k Kind) []Variant {
	return variants[k]
}

// SpriteNames returns every sprite name the catalog references, for
// preloading at startup.
func SpriteNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, kind := range []Kind{Head, Arms, Legs} {
		for _, v := range variants[kind] {
			for _, layer := range v {
				if !seen[layer.Sprite] {
					seen[layer.Sprite] = true
					names = append(names, layer.Sprite)
				}
			}
		}
	}
	return names
}
