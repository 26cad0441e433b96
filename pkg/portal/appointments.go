package portal

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// AppointmentStore is the client-side appointment cache the reference UIs
// render from. It mirrors the server list for the signed-in principal:
// Refresh replaces it wholesale, Create appends the server-returned row,
// UpdateStatus swaps the matching entry in place so list positions stay
// stable across status changes.
type AppointmentStore struct {
	mu     sync.RWMutex
	client *Client
	log    zerolog.Logger
	items  []Appointment
}

func NewAppointmentStore(client *Client, log zerolog.Logger) *AppointmentStore {
	return &AppointmentStore{client: client, log: log}
}

// Refresh replaces the cache with the server list. On failure the cache is
// left untouched and the error is logged; the UI keeps showing the last
// good data.
func (s *AppointmentStore) Refresh(ctx context.Context) {
	items, err := s.client.Appointments(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to refresh appointments")
		return
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Create books an appointment and appends the server-returned record to the
// cache. Returns false when booking failed; the cache is unchanged then.
func (s *AppointmentStore) Create(ctx context.Context, draft AppointmentDraft) bool {
	a, err := s.client.CreateAppointment(ctx, draft)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create appointment")
		return false
	}
	s.mu.Lock()
	s.items = append(s.items, a)
	s.mu.Unlock()
	return true
}

// UpdateStatus applies a status change and replaces the matching cache
// entry with the server representation, keeping its position. An id not in
// the cache still updates server-side; the change lands on the next
// Refresh.
func (s *AppointmentStore) UpdateStatus(ctx context.Context, id, status, notes string) bool {
	a, err := s.client.UpdateAppointment(ctx, id, status, notes)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to update appointment")
		return false
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = a
			break
		}
	}
	s.mu.Unlock()
	return true
}

// All returns a copy of the cached list.
func (s *AppointmentStore) All() []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Appointment, len(s.items))
	copy(out, s.items)
	return out
}

// ForPatient filters the cache by owner. Pure and synchronous, no remote
// call.
func (s *AppointmentStore) ForPatient(patientID string) []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Appointment
	for _, a := range s.items {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out
}

// AvailableActions returns the status transitions the UI should offer for
// an appointment. Only pending appointments have actions: admins can
// approve or reject them, and the owner or an admin can cancel. Every
// other status is terminal as far as the UI is concerned; the server's
// generic update path stays permissive regardless.
func AvailableActions(user User, a Appointment) []string {
	if a.Status != StatusPending {
		return nil
	}
	var actions []string
	if user.Role == "admin" {
		actions = append(actions, StatusApproved, StatusRejected)
	}
	if user.Role == "admin" || user.ID == a.PatientID {
		actions = append(actions, StatusCancelled)
	}
	return actions
}
