package locg

// Publishers maps canonical publisher names to the site's numeric publisher
// IDs. The table is consulted read-only by ResolvePublishers.
var Publishers = map[string]int{
	"DC Comics":              1,
	"Marvel Comics":          2,
	"Dark Horse Comics":      5,
	"IDW Publishing":         6,
	"Image Comics":           7,
	"Boom! Studios":          8,
	"Dynamite":               12,
	"Oni Press":              13,
	"Archie Comics":          14,
	"Valiant":                15,
	"Zenescope":              16,
	"Titan Books":            18,
	"Aftershock Comics":      19,
	"Vault Comics":           20,
	"Black Mask Studios":     21,
	"Action Lab Comics":      22,
	"Ahoy Comics":            23,
	"American Mythology":     24,
	"Scout Comics":           26,
	"Source Point Press":     27,
	"Mad Cave Studios":       28,
	"Red 5 Comics":           29,
	"Antarctic Press":        30,
	"Udon":                   31,
	"Aspen Comics":           33,
	"Avatar Press":           34,
	"Humanoids":              36,
	"Magnetic Press":         38,
	"Heavy Metal":            41,
	"Abstract Studios":       44,
	"Albatross Funnybooks":   45,
	"Behemoth Entertainment": 48,
	"Comics Experience":      50,
}

// PublisherID looks up the numeric site ID for a canonical publisher name.
func PublisherID(name string) (int, bool) {
	id, ok := Publishers[name]
	return id, ok
}
