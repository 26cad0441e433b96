package record

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/healthhub/healthhub/internal/platform/apperr"
	"github.com/healthhub/healthhub/internal/platform/auth"
)

type mockRepo struct {
	records map[uuid.UUID]*MedicalRecord
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[uuid.UUID]*MedicalRecord)}
}

func (m *mockRepo) Create(_ context.Context, r *MedicalRecord) error {
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	cp := *r
	m.records[r.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*MedicalRecord, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, apperr.NotFoundf("Record not found")
	}
	cp := *r
	return &cp, nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*MedicalRecord, error) {
	var items []*MedicalRecord
	for _, r := range m.records {
		if r.PatientID == patientID {
			cp := *r
			items = append(items, &cp)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].UploadedAt.After(items[j].UploadedAt) })
	return items, nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.records[id]; !ok {
		return apperr.NotFoundf("Record not found")
	}
	delete(m.records, id)
	return nil
}

var (
	owner    = auth.Principal{ID: uuid.New(), Role: auth.RolePatient, Name: "Owner"}
	stranger = auth.Principal{ID: uuid.New(), Role: auth.RolePatient, Name: "Stranger"}
	admin    = auth.Principal{ID: uuid.New(), Role: auth.RoleAdmin, Name: "Admin"}
)

func newTestService() *Service {
	return NewService(newMockRepo(), auth.NewPolicy())
}

func upload(t *testing.T, svc *Service, p auth.Principal, title string) *MedicalRecord {
	t.Helper()
	m, err := svc.Create(context.Background(), p, Draft{Title: title, Type: TypeLabReport})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	return m
}

func TestService_Create(t *testing.T) {
	svc := newTestService()

	m, err := svc.Create(context.Background(), owner, Draft{
		Title: "Blood panel", Type: TypeLabReport, FileURL: "https://files.example/abc",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if m.PatientID != owner.ID {
		t.Errorf("owner = %s, want principal id %s", m.PatientID, owner.ID)
	}
	if m.UploadedAt.IsZero() {
		t.Error("expected uploadedAt to be stamped")
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name string
		in   Draft
	}{
		{"no title", Draft{Type: TypeLabReport}},
		{"no type", Draft{Title: "x"}},
		{"bad type", Draft{Title: "x", Type: "xray"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), owner, tt.in); apperr.KindOf(err) != apperr.Validation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestService_List_OwnerScoped(t *testing.T) {
	svc := newTestService()
	upload(t, svc, owner, "Mine")
	upload(t, svc, stranger, "Theirs")

	items, err := svc.List(context.Background(), owner)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Mine" {
		t.Errorf("expected only the owner's record, got %d rows", len(items))
	}

	// an admin listing sees only rows they themselves own
	items, err = svc.List(context.Background(), admin)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("admin should not see other patients' records, got %d", len(items))
	}
}

func TestService_Delete_OwnerOnly(t *testing.T) {
	svc := newTestService()
	m := upload(t, svc, owner, "Mine")

	// no admin override for records
	if err := svc.Delete(context.Background(), admin, m.ID); apperr.KindOf(err) != apperr.Authorization {
		t.Errorf("expected authorization error for admin, got %v", err)
	}
	if err := svc.Delete(context.Background(), stranger, m.ID); apperr.KindOf(err) != apperr.Authorization {
		t.Errorf("expected authorization error for stranger, got %v", err)
	}

	if err := svc.Delete(context.Background(), owner, m.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	// second delete of the same id: existence is checked first, so even the
	// owner gets not-found
	if err := svc.Delete(context.Background(), owner, m.ID); apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("expected not-found on repeat delete, got %v", err)
	}
}

func TestService_Delete_NotFoundBeforeForbidden(t *testing.T) {
	svc := newTestService()
	upload(t, svc, owner, "Mine")

	if err := svc.Delete(context.Background(), stranger, uuid.New()); apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("expected not-found for unknown id, got %v", err)
	}
}
