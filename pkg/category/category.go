// Package category classifies relative file paths into one of three buckets
// (docs, src, other) using glob patterns compiled at startup.
package category

// Category identifies which output block a file belongs to.
type Category int

const (
	Docs Category = iota
	Src
	Other
)

// All lists the categories in their fixed output order.
var All = []Category{Docs, Src, Other}

func (c Category) String() string {
	switch c {
	case Docs:
		return "docs"
	case Src:
		return "src"
	default:
		return "other"
	}
}

// Description returns the human-readable blurb emitted inside the
// <description> element for the category.
func (c Category) Description() string {
	switch c {
	case Docs:
		return "Immutable documentation. Provided FOR REFERENCE ONLY."
	case Src:
		return "Source code files."
	default:
		return "Other files."
	}
}
