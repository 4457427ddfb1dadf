package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"focusmate/api/models"
)

// JSONFileDB persists the whole activity map as one pretty-printed JSON
// document on disk. It is the durable backend for production runs.
type JSONFileDB struct {
	Path string
}

func NewJSONFileDB(path string) (*JSONFileDB, error) {
	if path == "" {
		return nil, fmt.Errorf("activity data file path cannot be empty")
	}

	if _, err := os.Stat(path); err == nil {
		log.Printf("Using existing activity data file: %s", path)
	} else {
		log.Printf("Activity data file %s not found, starting with an empty store.", path)
	}

	return &JSONFileDB{Path: path}, nil
}

// Load reads the activity document from disk. A missing file, an unreadable
// file, and malformed JSON all degrade to an empty store rather than an
// error; past data may be lost but the tracker keeps running.
func (db *JSONFileDB) Load() models.ActivityData {
	raw, err := os.ReadFile(db.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading activity data file %s: %v", db.Path, err)
		}
		return models.ActivityData{}
	}

	var data models.ActivityData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Printf("Error parsing activity data file %s, treating as empty: %v", db.Path, err)
		return models.ActivityData{}
	}
	if data == nil {
		data = models.ActivityData{}
	}
	return data
}

// Save writes the full activity document back to disk, indented so the file
// stays inspectable by hand.
func (db *JSONFileDB) Save(data models.ActivityData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode activity data: %w", err)
	}

	if err := os.WriteFile(db.Path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write activity data file %s: %w", db.Path, err)
	}
	return nil
}
