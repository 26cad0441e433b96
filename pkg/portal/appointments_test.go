package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a minimal in-memory appointments backend.
type fakeAPI struct {
	mu    sync.Mutex
	appts []Appointment
	next  int
	fail  bool
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		if f.fail {
			jsonResponse(t, w, http.StatusInternalServerError, map[string]string{"message": "Something went wrong!"})
			return
		}

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/appointments":
			jsonResponse(t, w, http.StatusOK, f.appts)
		case r.Method == http.MethodPost && r.URL.Path == "/api/appointments":
			var draft AppointmentDraft
			require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
			f.next++
			a := Appointment{
				ID:       string(rune('a' + f.next - 1)),
				DoctorID: draft.DoctorID,
				Date:     draft.Date,
				Time:     draft.Time,
				Reason:   draft.Reason,
				Status:   StatusPending,
			}
			f.appts = append(f.appts, a)
			jsonResponse(t, w, http.StatusCreated, a)
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/appointments/"):
			id := strings.TrimPrefix(r.URL.Path, "/api/appointments/")
			var in struct {
				Status string `json:"status"`
				Notes  string `json:"notes"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			for i := range f.appts {
				if f.appts[i].ID == id {
					if in.Status != "" {
						f.appts[i].Status = in.Status
					}
					if in.Notes != "" {
						f.appts[i].Notes = in.Notes
					}
					jsonResponse(t, w, http.StatusOK, f.appts[i])
					return
				}
			}
			jsonResponse(t, w, http.StatusNotFound, map[string]string{"message": "Appointment not found"})
		default:
			jsonResponse(t, w, http.StatusNotFound, map[string]string{"message": "not found"})
		}
	})
}

func newTestStore(t *testing.T) (*AppointmentStore, *fakeAPI, func()) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler(t))
	client := NewClient(srv.URL, NewSession())
	return NewAppointmentStore(client, zerolog.Nop()), api, srv.Close
}

func TestAppointmentStore_Refresh(t *testing.T) {
	store, api, done := newTestStore(t)
	defer done()

	api.appts = []Appointment{
		{ID: "a1", Status: StatusPending},
		{ID: "a2", Status: StatusApproved},
	}

	store.Refresh(context.Background())
	assert.Len(t, store.All(), 2)
}

func TestAppointmentStore_Refresh_FailureKeepsCache(t *testing.T) {
	store, api, done := newTestStore(t)
	defer done()

	api.appts = []Appointment{{ID: "a1"}}
	store.Refresh(context.Background())
	require.Len(t, store.All(), 1)

	api.fail = true
	store.Refresh(context.Background())
	assert.Len(t, store.All(), 1, "failed refresh must not clear the cache")
}

func TestAppointmentStore_Create_AppendsServerRecord(t *testing.T) {
	store, _, done := newTestStore(t)
	defer done()

	ok := store.Create(context.Background(), AppointmentDraft{
		DoctorID: "d1", Date: "2026-09-15", Time: "10:30", Reason: "Checkup",
	})
	require.True(t, ok)

	all := store.All()
	require.Len(t, all, 1)
	assert.NotEmpty(t, all[0].ID, "cache entry must carry the server-assigned id")
	assert.Equal(t, StatusPending, all[0].Status)
}

func TestAppointmentStore_Create_FailureLeavesCache(t *testing.T) {
	store, api, done := newTestStore(t)
	defer done()

	api.fail = true
	ok := store.Create(context.Background(), AppointmentDraft{DoctorID: "d1"})
	assert.False(t, ok)
	assert.Empty(t, store.All())
}

func TestAppointmentStore_UpdateStatus_PreservesPosition(t *testing.T) {
	store, api, done := newTestStore(t)
	defer done()

	api.appts = []Appointment{
		{ID: "a1", Status: StatusPending},
		{ID: "a2", Status: StatusPending},
		{ID: "a3", Status: StatusPending},
	}
	store.Refresh(context.Background())

	ok := store.UpdateStatus(context.Background(), "a2", StatusApproved, "confirmed")
	require.True(t, ok)

	all := store.All()
	require.Len(t, all, 3)
	assert.Equal(t, "a1", all[0].ID)
	assert.Equal(t, "a2", all[1].ID, "updated entry must keep its position")
	assert.Equal(t, "a3", all[2].ID)
	assert.Equal(t, StatusApproved, all[1].Status)
	assert.Equal(t, "confirmed", all[1].Notes)
}

func TestAppointmentStore_ForPatient(t *testing.T) {
	store, api, done := newTestStore(t)
	defer done()

	api.appts = []Appointment{
		{ID: "a1", PatientID: "p1"},
		{ID: "a2", PatientID: "p2"},
		{ID: "a3", PatientID: "p1"},
	}
	store.Refresh(context.Background())

	mine := store.ForPatient("p1")
	assert.Len(t, mine, 2)
	for _, a := range mine {
		assert.Equal(t, "p1", a.PatientID)
	}
}

func TestAvailableActions(t *testing.T) {
	admin := User{ID: "adm", Role: "admin"}
	owner := User{ID: "p1", Role: "patient"}
	stranger := User{ID: "p2", Role: "patient"}

	pending := Appointment{ID: "a1", PatientID: "p1", Status: StatusPending}
	approved := Appointment{ID: "a2", PatientID: "p1", Status: StatusApproved}
	rejected := Appointment{ID: "a3", PatientID: "p1", Status: StatusRejected}
	completed := Appointment{ID: "a4", PatientID: "p1", Status: StatusCompleted}
	cancelled := Appointment{ID: "a5", PatientID: "p1", Status: StatusCancelled}

	tests := []struct {
		name string
		user User
		appt Appointment
		want []string
	}{
		{"admin on pending", admin, pending, []string{StatusApproved, StatusRejected, StatusCancelled}},
		{"owner on pending", owner, pending, []string{StatusCancelled}},
		{"stranger on pending", stranger, pending, nil},
		{"admin on approved", admin, approved, nil},
		{"owner on approved", owner, approved, nil},
		{"admin on rejected", admin, rejected, nil},
		{"owner on completed", owner, completed, nil},
		{"admin on cancelled", admin, cancelled, nil},
		{"owner on cancelled", owner, cancelled, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvailableActions(tt.user, tt.appt))
		})
	}
}
