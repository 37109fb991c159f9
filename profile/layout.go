package profile

// Style is how a facies is drawn: a fill color ("#rrggbb") and a hatch
// pattern made of the characters . - | / \ o * (empty means solid).
type Style struct {
	Color string `yaml:"color" json:"color"`
	Hatch string `yaml:"hatch" json:"hatch"`
}

// Layout maps facies labels to styles.
type Layout map[string]Style

// palette is used for facies without an explicit style.
var palette = []string{
	"#FFD700", "#DAA520", "#D2691E", "#A0522D", "#800080", "#800000",
	"#9ACD32", "#00FA9A", "#00BFFF", "#6495ED", "#4169E1", "#000080",
}

// Resolve returns a layout covering classes: explicit entries are kept, the
// rest take palette colors in class order.
func (l Layout) Resolve(classes []string) Layout {
	out := make(Layout, len(classes))
	next := 0
	for _, c := range classes {
		if s, ok := l[c]; ok && s.Color != "" {
			out[c] = s
			continue
		}
		out[c] = Style{Color: palette[next%len(palette)]}
		next++
	}

	return out
}
