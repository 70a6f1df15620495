package room

import "strings"

// CategoryAny matches every room in a category filter.
const CategoryAny = "Any"

// Category is free text; the catalog never restricts it to a fixed set.
type Category struct {
	value string
}

func NewCategory(value string) (Category, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Category{}, ErrEmptyCategory
	}
	return Category{value: value}, nil
}

func (c Category) String() string {
	return c.value
}

// Matches reports whether the category passes the given filter.
// An empty filter behaves like CategoryAny.
func (c Category) Matches(filter string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, CategoryAny) {
		return true
	}
	return strings.EqualFold(c.value, filter)
}
