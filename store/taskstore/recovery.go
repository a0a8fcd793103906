package taskstore

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/boolean-maybe/todos/store/kv"
)

// BackupKey returns the key a corrupt value under key is moved to
func BackupKey(key string, now time.Time) string {
	return fmt.Sprintf("%s.corrupt-%d", key, now.Unix())
}

// RecoverCorrupt copies the value under key to a backup key and removes key,
// so the next NewTaskStore starts with an empty list. Returns the backup key.
func RecoverCorrupt(storage kv.Storage, key string, now time.Time) (string, error) {
	value, ok, err := storage.GetItem(key)
	if err != nil {
		return "", fmt.Errorf("reading key %q: %w", key, err)
	}
	if !ok {
		return "", nil
	}

	backup := BackupKey(key, now)
	if err := storage.SetItem(backup, value); err != nil {
		return "", fmt.Errorf("backing up key %q: %w", key, err)
	}
	if err := storage.RemoveItem(key); err != nil {
		return backup, fmt.Errorf("removing key %q: %w", key, err)
	}

	slog.Warn("corrupt task list moved aside", "key", key, "backup_key", backup)
	return backup, nil
}
