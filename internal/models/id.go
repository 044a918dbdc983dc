package models

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID returns a prefixed record identifier, e.g. "u_3f2c1b0a9d4e".
func NewID(prefix string) string {
	u := uuid.New()
	return prefix + "_" + hex.EncodeToString(u[:6])
}
