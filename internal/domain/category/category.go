package category

// Category is a programming-language topic a quiz can be played in.
type Category struct {
	ID   string
	Name string
	Icon string
}

// Builtin is the fixed set of playable categories.
var Builtin = []Category{
	{ID: "html", Name: "HTML", Icon: "🌐"},
	{ID: "css", Name: "CSS", Icon: "🎨"},
	{ID: "javascript", Name: "JavaScript", Icon: "⚡"},
	{ID: "python", Name: "Python", Icon: "🐍"},
	{ID: "cpp", Name: "C++", Icon: "⚙️"},
	{ID: "java", Name: "Java", Icon: "☕"},
}

// ByID looks up a builtin category.
func ByID(id string) (Category, bool) {
	for _, c := range Builtin {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// DisplayName returns the human name for a category id, falling back to the
// id itself for unknown categories.
func DisplayName(id string) string {
	if c, ok := ByID(id); ok {
		return c.Name
	}
	return id
}
