package domain

// Tag is a named, colored category embedded in a trip's tag list.
// ColorID references the fixed palette below; unknown IDs render with the
// first palette entry rather than failing.
type Tag struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ColorID string `json:"color_id"`
}

// PaletteColor is one entry of the fixed rendering palette.
type PaletteColor struct {
	ID     string `json:"id"`
	Bg     string `json:"bg"`
	Text   string `json:"text"`
	Border string `json:"border"`
	Name   string `json:"name"`
}

// Palette is the fixed set of tag colors. The first entry doubles as the
// fallback for dangling or unknown color references.
var Palette = []PaletteColor{
	{ID: "green", Bg: "#e2ebe0", Text: "#4a5e45", Border: "#7a9e75", Name: "forest green"},
	{ID: "blue", Bg: "#e0e8eb", Text: "#45525e", Border: "#75909e", Name: "misty blue"},
	{ID: "yellow", Bg: "#f7f0e1", Text: "#7d6842", Border: "#d4b06a", Name: "milk tea"},
	{ID: "red", Bg: "#ebe0e0", Text: "#5e4545", Border: "#9e7575", Name: "dried rose"},
	{ID: "purple", Bg: "#ebe0eb", Text: "#5e455c", Border: "#8e759e", Name: "lavender"},
	{ID: "gray", Bg: "#ebebeb", Text: "#5e5e5e", Border: "#9e9e9e", Name: "graphite"},
}

// DefaultTags is the tag list seeded onto every new trip that does not
// supply its own.
func DefaultTags() []Tag {
	return []Tag{
		{ID: "sightseeing", Name: "Sightseeing", ColorID: "green"},
		{ID: "transport", Name: "Transport", ColorID: "blue"},
		{ID: "food", Name: "Food", ColorID: "yellow"},
	}
}

// ColorByID resolves a palette color by ID, falling back to the first
// palette entry for unknown or empty IDs. This is a deliberate
// lookup-with-default: Event.TagID may dangle after a tag is removed and
// rendering must keep working.
func ColorByID(id string) PaletteColor {
	for _, c := range Palette {
		if c.ID == id {
			return c
		}
	}
	return Palette[0]
}

// ColorForTag resolves the palette color for an event's tag reference
// against a trip's tag list. Missing tags and missing colors both fall
// back to the default palette entry.
func ColorForTag(tags []Tag, tagID string) PaletteColor {
	for _, t := range tags {
		if t.ID == tagID {
			return ColorByID(t.ColorID)
		}
	}
	return Palette[0]
}
