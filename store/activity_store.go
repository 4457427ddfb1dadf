// api/store/activity_store.go
package store

import (
	"fmt"
	"log"
	"sync"
	"time"

	"focusmate/api/classifier"
	"focusmate/api/models"
	"focusmate/api/utils"
)

// Backend loads and saves the durable activity document. Load must return a
// document independent of the backend's own state: the store hands loaded
// documents to readers that run outside its lock, so a shared map would race
// with concurrent writes. JSONFileDB in the database package is the production
// implementation; tests swap in MemoryDB.
type Backend interface {
	Load() models.ActivityData
	Save(models.ActivityData) error
}

// TrackResult reports how one event was recorded.
type TrackResult struct {
	Host  string
	Class classifier.Class
}

// ActivityStore owns all mutation of the activity document. Every
// read-modify-write runs under one store-wide mutex so concurrent requests
// cannot lose each other's updates.
type ActivityStore struct {
	mu      sync.Mutex
	backend Backend
	now     func() time.Time
}

func NewActivityStore(backend Backend) *ActivityStore {
	return &ActivityStore{
		backend: backend,
		now:     time.Now,
	}
}

// RecordEvent classifies one activity event and folds its duration into
// today's record for the event's user. Productive and unproductive seconds
// go to their counters; every host, neutral ones included, accumulates in
// the sites map. A failed save is logged and swallowed, the tracker is
// best-effort. Unexpected panics are converted to an error so the transport
// layer always gets a well-formed result.
func (s *ActivityStore) RecordEvent(event models.ActivityEvent) (result TrackResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to record activity event: %v", r)
		}
	}()

	host := utils.ExtractHost(event.URL)
	class := classifier.Classify(host)

	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.backend.Load()
	record := dayRecord(data, s.now().Format(models.DateFormat), event.User)

	switch class {
	case classifier.Productive:
		record.Productive += event.Duration
	case classifier.Unproductive:
		record.Unproductive += event.Duration
	}
	record.Sites[host] += event.Duration

	if err := s.backend.Save(data); err != nil {
		log.Printf("Error saving activity data: %v", err)
	}

	return TrackResult{Host: host, Class: class}, nil
}

// Snapshot returns the current activity document for read-only use. It holds
// the mutex only across the load, so a concurrent in-flight write may be
// missed; reports tolerate that staleness.
func (s *ActivityStore) Snapshot() models.ActivityData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Load()
}

// dayRecord returns the record for (date, user), creating it and any missing
// parent maps on first use. A nil sites map from a hand-edited data file is
// replaced so accumulation cannot panic.
func dayRecord(data models.ActivityData, date, user string) *models.DayUserRecord {
	day, ok := data[date]
	if !ok {
		day = map[string]*models.DayUserRecord{}
		data[date] = day
	}

	record, ok := day[user]
	if !ok {
		record = &models.DayUserRecord{Sites: map[string]int64{}}
		day[user] = record
	}
	if record.Sites == nil {
		record.Sites = map[string]int64{}
	}
	return record
}
