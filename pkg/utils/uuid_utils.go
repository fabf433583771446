package utils

import "github.com/google/uuid"

// GenerateUUIDv7 returns a time-ordered UUID. Rows keyed with v7 ids
// sort by creation time, which keeps queue listings index friendly.
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
