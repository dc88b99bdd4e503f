package util

import (
	"crypto/md5"

	"github.com/google/uuid"
)

// ContentUUID derives a stable UUID from a canonical content string, such as
// a tile's comma-joined pixel encoding. Equal content always maps to the
// same UUID.
func ContentUUID(content string) string {
	hash := md5.Sum([]byte(content))
	id, err := uuid.FromBytes(hash[:])
	if err != nil {
		return ""
	}
	return id.String()
}
