package record

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/healthhub/healthhub/internal/platform/apperr"
	"github.com/healthhub/healthhub/internal/platform/auth"
)

func doJSON(h echo.HandlerFunc, method, target, body string, p *auth.Principal, params ...string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if p != nil {
		req = req.WithContext(auth.WithPrincipal(req.Context(), *p))
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	return rec, h(c)
}

func TestHandler_Create(t *testing.T) {
	svc := newTestService()
	h := NewHandler(svc)

	rec, err := doJSON(h.Create, http.MethodPost, "/records",
		`{"title":"Blood panel","type":"lab_report","fileUrl":"https://files.example/abc"}`, &owner)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var got MedicalRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.PatientID != owner.ID {
		t.Errorf("owner = %s, want principal id", got.PatientID)
	}
}

func TestHandler_Create_InvalidType(t *testing.T) {
	h := NewHandler(newTestService())

	_, err := doJSON(h.Create, http.MethodPost, "/records",
		`{"title":"Scan","type":"xray"}`, &owner)
	if apperr.KindOf(err) != apperr.Validation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestHandler_List_EmptyIsArray(t *testing.T) {
	h := NewHandler(newTestService())

	rec, err := doJSON(h.List, http.MethodGet, "/records", "", &owner)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("expected empty array body, got %q", body)
	}
}

func TestHandler_Delete(t *testing.T) {
	svc := newTestService()
	h := NewHandler(svc)
	m := upload(t, svc, owner, "Mine")

	rec, err := doJSON(h.Delete, http.MethodDelete, "/", "", &owner, "id", m.ID.String())
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	// repeat delete: not-found
	_, err = doJSON(h.Delete, http.MethodDelete, "/", "", &owner, "id", m.ID.String())
	if apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("expected not-found on repeat delete, got %v", err)
	}
}

func TestHandler_Delete_MalformedID(t *testing.T) {
	h := NewHandler(newTestService())

	_, err := doJSON(h.Delete, http.MethodDelete, "/", "", &owner, "id", "nope")
	if apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("expected not-found for malformed id, got %v", err)
	}
}
