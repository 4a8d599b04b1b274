package models

import "time"

// Favorite links a user to a catalog character. The (UserID, CharacterID)
// pair is unique in storage; deleting a user cascades to their favorites.
type Favorite struct {
	ID          int64
	UserID      int64
	CharacterID int64
	CreatedAt   time.Time
}
