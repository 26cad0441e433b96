package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthhub/healthhub/internal/platform/apperr"
)

type mockPrincipalSource struct {
	principals map[uuid.UUID]Principal
}

func (m *mockPrincipalSource) PrincipalByID(_ context.Context, id uuid.UUID) (Principal, error) {
	p, ok := m.principals[id]
	if !ok {
		return Principal{}, fmt.Errorf("not found")
	}
	return p, nil
}

func newTestMiddleware(t *testing.T) (*TokenIssuer, *mockPrincipalSource, echo.MiddlewareFunc) {
	t.Helper()
	issuer := NewTokenIssuer("test-secret", time.Hour)
	source := &mockPrincipalSource{principals: make(map[uuid.UUID]Principal)}
	return issuer, source, Middleware(issuer, source)
}

func invoke(mw echo.MiddlewareFunc, req *http.Request) (Principal, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got Principal
	handler := mw(func(c echo.Context) error {
		got, _ = PrincipalFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	return got, handler(c)
}

func TestMiddleware_AttachesPrincipal(t *testing.T) {
	issuer, source, mw := newTestMiddleware(t)

	userID := uuid.New()
	source.principals[userID] = Principal{ID: userID, Role: RolePatient, Name: "Pat", Email: "p@demo.com"}

	token, err := issuer.Issue(userID, RolePatient)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	got, err := invoke(mw, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != userID {
		t.Errorf("expected principal id %s, got %s", userID, got.ID)
	}
	if got.Email != "p@demo.com" {
		t.Errorf("expected fresh principal email, got %s", got.Email)
	}
}

func TestMiddleware_MissingHeader(t *testing.T) {
	_, _, mw := newTestMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := invoke(mw, req)
	if apperr.KindOf(err) != apperr.Authentication {
		t.Errorf("expected authentication error, got %v", err)
	}
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	_, _, mw := newTestMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	_, err := invoke(mw, req)
	if apperr.KindOf(err) != apperr.Authentication {
		t.Errorf("expected authentication error, got %v", err)
	}
}

func TestMiddleware_DeletedUser(t *testing.T) {
	issuer, _, mw := newTestMiddleware(t)

	// valid token, but the source no longer knows the subject
	token, err := issuer.Issue(uuid.New(), RolePatient)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, err = invoke(mw, req)
	if apperr.KindOf(err) != apperr.Authentication {
		t.Errorf("expected authentication error, got %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	run := func(p *Principal, roles ...Role) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if p != nil {
			req = req.WithContext(WithPrincipal(req.Context(), *p))
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		handler := RequireRole(roles...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		return handler(c)
	}

	if err := run(&Principal{ID: uuid.New(), Role: RoleAdmin}, RolePatient); err != nil {
		t.Errorf("admin should pass any role gate: %v", err)
	}
	if err := run(&Principal{ID: uuid.New(), Role: RolePatient}, RolePatient); err != nil {
		t.Errorf("patient should pass patient gate: %v", err)
	}
	if err := run(&Principal{ID: uuid.New(), Role: RolePatient}, RoleAdmin); apperr.KindOf(err) != apperr.Authorization {
		t.Errorf("patient at admin gate: expected authorization error, got %v", err)
	}
	if err := run(nil, RolePatient); apperr.KindOf(err) != apperr.Authentication {
		t.Errorf("anonymous: expected authentication error, got %v", err)
	}
}
