package config

import (
	"log/slog"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Task ID styles
const (
	IDStyleUUID   = "uuid"
	IDStyleNanoID = "nanoid"
)

// GenerateTaskID returns a fresh opaque task ID in the given style.
// uuid produces an RFC 4122 v4 string; nanoid a 21-character URL-safe string.
func GenerateTaskID(style string) string {
	if style == IDStyleNanoID {
		id, err := gonanoid.New()
		if err == nil {
			return id
		}
		slog.Warn("nanoid generation failed, falling back to uuid", "error", err)
	}
	return uuid.NewString()
}
