package entity

import (
	"time"
)

// Favorite is a recipe pinned by a user. The descriptive fields are copied
// verbatim from the upstream catalog at creation time; a favorite is never
// mutated in place, only created and deleted.
type Favorite struct {
	ID        string
	UserID    string
	RecipeID  string
	Name      string
	Thumbnail string
	CreatedAt time.Time
}
