package uuid

import (
	"github.com/google/uuid"
)

// UUID is a thin wrapper around google's uuid.UUID.
type UUID uuid.UUID

// NewUUID creates a new random UUID.
func NewUUID() UUID {
	return UUID(uuid.New())
}

// FromURL derives a deterministic UUID (v5, URL namespace) from a URL. The
// same URL always maps to the same ID, which is what makes enqueueing
// idempotent per URL.
func FromURL(url string) UUID {
	return UUID(uuid.NewSHA1(uuid.NameSpaceURL, []byte(url)))
}

func (u UUID) String() string {
	return uuid.UUID(u).String()
}

func (u UUID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(u).String()), nil
}

func (u *UUID) UnmarshalText(text []byte) error {
	parsed, err := uuid.ParseBytes(text)
	if err != nil {
		return err
	}
	*u = UUID(parsed)
	return nil
}
