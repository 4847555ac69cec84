package schedule

const eventTextColor = "#ffffff"

// Fixed palette for class background colors. Order matters: ClassColor
// indexes into it, so reordering or resizing would recolor every class.
var classPalette = [...]string{
	"#216869", // dark teal
	"#49A078", // jungle green
	"#74C0FC", // blue
	"#FFD43B", // yellow
	"#FF6B6B", // red
	"#9CC5A1", // light green
	"#1F2421", // eerie black
	"#9b59b6", // purple
}

// Per-type accent colors for the calendar dot markers.
var typeDotColors = map[string]string{
	"lecture":    "#74C0FC",
	"meeting":    "#74C0FC",
	"assignment": "#FFD43B",
	"exam":       "#FF6B6B",
	"study":      "#9CC5A1",
	"custom":     "#49A078",
}

// ClassColor deterministically maps a class display label into the palette.
// Same label, same color, across calls and process restarts.
func ClassColor(label string) string {
	sum := 0
	for _, r := range label {
		sum += int(r)
	}
	return classPalette[sum%len(classPalette)]
}

// DotColor returns the accent color for an event type, defaulting to the
// custom accent for unknown types.
func DotColor(eventType string) string {
	if c, ok := typeDotColors[eventType]; ok {
		return c
	}
	return typeDotColors["custom"]
}
