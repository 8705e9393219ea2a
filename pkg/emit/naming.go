package emit

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// PascalCase turns a snake_case screen name into an exported-style identifier
// ("home_screen" -> "HomeScreen", "Screen_1" -> "Screen1").
func PascalCase(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(titleCaser.String(strings.ToLower(part)))
	}
	return b.String()
}

// TitleWords turns a snake_case screen name into display text
// ("home_screen" -> "Home Screen").
func TitleWords(name string) string {
	return titleCaser.String(strings.ReplaceAll(strings.ToLower(name), "_", " "))
}

// IDAllocator hands out deterministic, screen-unique identifiers during a
// tree walk. Nodes keep their advisory IDs when free; colliding or missing
// IDs get the walk index appended, so repeated walks over the same tree
// produce the same names.
type IDAllocator struct {
	taken map[string]struct{}
	index int
}

// NewIDAllocator creates an allocator scoped to one screen.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{taken: make(map[string]struct{})}
}

// Claim returns the identifier for node at this walk position.
func (a *IDAllocator) Claim(kind, preferred string) string {
	a.index++
	id := preferred
	if id == "" {
		id = fmt.Sprintf("%s_%d", kind, a.index)
	}
	if _, dup := a.taken[id]; dup {
		id = fmt.Sprintf("%s_%d", id, a.index)
	}
	a.taken[id] = struct{}{}
	return id
}
