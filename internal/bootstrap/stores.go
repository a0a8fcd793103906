package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/boolean-maybe/todos/config"
	"github.com/boolean-maybe/todos/store/kv"
	"github.com/boolean-maybe/todos/store/taskstore"
)

// ErrRecoveryDeclined is returned when the user chose not to replace an unreadable task list
var ErrRecoveryDeclined = errors.New("unreadable task list left untouched")

// Hooks for tests; production uses the terminal prompt.
var (
	isInteractive     = config.IsInteractive
	promptForRecovery = config.PromptForRecovery
)

// InitStores opens the key-value storage and loads the task store from it.
// An unreadable task list aborts startup unless resetCorrupt is set or the user
// confirms the recovery prompt; recovery backs the value up under a new key first.
func InitStores(resetCorrupt bool) (*kv.FileStorage, *taskstore.TaskStore, error) {
	path := config.GetStorageFile()
	key := config.GetStorageKey()

	storage, err := kv.NewFileStorage(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage %s: %w", path, err)
	}

	opts := []taskstore.Option{taskstore.WithIDStyle(config.GetIDStyle())}
	taskStore, err := taskstore.NewTaskStore(storage, key, opts...)
	if err == nil {
		return storage, taskStore, nil
	}
	if !errors.Is(err, taskstore.ErrCorruptSnapshot) {
		return nil, nil, fmt.Errorf("initialize task store: %w", err)
	}

	proceed := resetCorrupt
	if !proceed {
		if !isInteractive() {
			return nil, nil, fmt.Errorf("%s: %w (run with --%s to back it up and start empty)", path, err, config.FlagResetCorrupt)
		}
		proceed, err = promptForRecovery(path, key, err)
		if err != nil {
			return nil, nil, fmt.Errorf("recovery prompt: %w", err)
		}
		if !proceed {
			return nil, nil, fmt.Errorf("%s: %w", path, ErrRecoveryDeclined)
		}
	}

	backupKey, err := taskstore.RecoverCorrupt(storage, key, time.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("recover task list: %w", err)
	}
	slog.Warn("unreadable task list backed up", "file", path, "key", key, "backup_key", backupKey)

	taskStore, err = taskstore.NewTaskStore(storage, key, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize task store: %w", err)
	}
	return storage, taskStore, nil
}
