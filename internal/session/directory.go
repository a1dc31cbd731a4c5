package session

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pixelthorn/gdx/internal/models"
	"github.com/pixelthorn/gdx/internal/storage"
)

// Directory is the durable list of registered credentials, persisted as a
// JSON array under its own storage key. Only the session store consults it.
type Directory struct {
	kv     storage.KV
	key    string
	logger *log.Logger
	users  []models.User
}

// NewDirectory loads the user directory from storage. Absent or malformed
// data yields an empty directory.
func NewDirectory(kv storage.KV, key string, logger *log.Logger) *Directory {
	d := &Directory{kv: kv, key: key, logger: logger}

	raw, ok, err := kv.Get(key)
	if err != nil {
		logger.Warn("failed to read user directory, starting empty", "key", key, "error", err)
		return d
	}
	if !ok {
		return d
	}

	if err := json.Unmarshal(raw, &d.users); err != nil {
		logger.Warn("malformed user directory, starting empty", "key", key, "error", err)
		d.users = nil
	}
	return d
}

// All returns the registered users, newest last.
func (d *Directory) All() []models.User {
	out := make([]models.User, len(d.users))
	copy(out, d.users)
	return out
}

// Len returns the number of registered users.
func (d *Directory) Len() int { return len(d.users) }

// FindByEmail scans for a user with exactly the given email.
// The match is case-sensitive with no normalization; the directory stays
// small enough that a linear scan is fine.
func (d *Directory) FindByEmail(email string) (models.User, bool) {
	for _, u := range d.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// Append adds user to the directory and persists the whole list.
// A failed persist leaves the in-memory list unchanged.
func (d *Directory) Append(user models.User) error {
	next := append(d.All(), user)

	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode user directory: %w", err)
	}
	if err := d.kv.Set(d.key, raw); err != nil {
		return fmt.Errorf("failed to persist user directory: %w", err)
	}

	d.users = next
	return nil
}
