package database

import (
	"encoding/json"
	"sync"

	"focusmate/api/models"
)

// MemoryDB keeps the activity document in memory. Tests use it in place of
// JSONFileDB so they never touch the filesystem. Documents round-trip
// through JSON on every Load and Save, giving callers the same
// fresh-copy semantics as the file-backed client.
type MemoryDB struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{}
}

func (db *MemoryDB) Load() models.ActivityData {
	db.mu.Lock()
	defer db.mu.Unlock()

	if len(db.data) == 0 {
		return models.ActivityData{}
	}

	var data models.ActivityData
	if err := json.Unmarshal(db.data, &data); err != nil || data == nil {
		return models.ActivityData{}
	}
	return data
}

func (db *MemoryDB) Save(data models.ActivityData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	db.mu.Lock()
	db.data = raw
	db.mu.Unlock()
	return nil
}
