package portal

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// RecordStore caches the signed-in user's medical records, same contract as
// the appointment cache: refresh replaces, create appends the server row,
// delete removes locally only after the server confirmed.
type RecordStore struct {
	mu     sync.RWMutex
	client *Client
	log    zerolog.Logger
	items  []MedicalRecord
}

func NewRecordStore(client *Client, log zerolog.Logger) *RecordStore {
	return &RecordStore{client: client, log: log}
}

// Refresh replaces the cache with the server list. Failures are logged and
// leave the cache untouched.
func (s *RecordStore) Refresh(ctx context.Context) {
	items, err := s.client.Records(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to refresh records")
		return
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Create uploads a record reference and appends the server-returned row.
func (s *RecordStore) Create(ctx context.Context, draft RecordDraft) bool {
	m, err := s.client.CreateRecord(ctx, draft)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create record")
		return false
	}
	s.mu.Lock()
	s.items = append(s.items, m)
	s.mu.Unlock()
	return true
}

// Delete removes a record server-side, then drops it from the cache.
func (s *RecordStore) Delete(ctx context.Context, id string) bool {
	if err := s.client.DeleteRecord(ctx, id); err != nil {
		s.log.Error().Err(err).Msg("failed to delete record")
		return false
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return true
}

// All returns a copy of the cached list.
func (s *RecordStore) All() []MedicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MedicalRecord, len(s.items))
	copy(out, s.items)
	return out
}
