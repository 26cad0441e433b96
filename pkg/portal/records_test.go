package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecordsAPI struct {
	records []MedicalRecord
	next    int
}

func (f *fakeRecordsAPI) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/records":
			jsonResponse(t, w, http.StatusOK, f.records)
		case r.Method == http.MethodPost && r.URL.Path == "/api/records":
			var draft RecordDraft
			require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
			f.next++
			m := MedicalRecord{ID: string(rune('r' + f.next - 1)), Title: draft.Title, Type: draft.Type}
			f.records = append(f.records, m)
			jsonResponse(t, w, http.StatusCreated, m)
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/records/"):
			id := strings.TrimPrefix(r.URL.Path, "/api/records/")
			for i := range f.records {
				if f.records[i].ID == id {
					f.records = append(f.records[:i], f.records[i+1:]...)
					jsonResponse(t, w, http.StatusOK, map[string]string{"message": "Record deleted"})
					return
				}
			}
			jsonResponse(t, w, http.StatusNotFound, map[string]string{"message": "Record not found"})
		default:
			jsonResponse(t, w, http.StatusNotFound, map[string]string{"message": "not found"})
		}
	})
}

func newRecordStore(t *testing.T, api *fakeRecordsAPI) (*RecordStore, func()) {
	srv := httptest.NewServer(api.handler(t))
	return NewRecordStore(NewClient(srv.URL, NewSession()), zerolog.Nop()), srv.Close
}

func TestRecordStore_CreateAndRefresh(t *testing.T) {
	store, done := newRecordStore(t, &fakeRecordsAPI{})
	defer done()

	ok := store.Create(context.Background(), RecordDraft{Title: "Blood panel", Type: "lab_report"})
	require.True(t, ok)
	require.Len(t, store.All(), 1)
	assert.NotEmpty(t, store.All()[0].ID)

	store.Refresh(context.Background())
	assert.Len(t, store.All(), 1)
}

func TestRecordStore_Delete(t *testing.T) {
	api := &fakeRecordsAPI{records: []MedicalRecord{{ID: "r1"}, {ID: "r2"}}}
	store, done := newRecordStore(t, api)
	defer done()

	store.Refresh(context.Background())
	require.Len(t, store.All(), 2)

	ok := store.Delete(context.Background(), "r1")
	require.True(t, ok)
	all := store.All()
	require.Len(t, all, 1)
	assert.Equal(t, "r2", all[0].ID)

	// deleting again fails server-side and leaves the cache alone
	ok = store.Delete(context.Background(), "r1")
	assert.False(t, ok)
	assert.Len(t, store.All(), 1)
}
