package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonResponse(t *testing.T, w http.ResponseWriter, status int, body interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestClient_Login_InitializesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		jsonResponse(t, w, http.StatusOK, authResult{
			User:  User{ID: "u1", Email: "p@demo.com", Role: "patient"},
			Token: "tok-123",
		})
	}))
	defer srv.Close()

	session := NewSession()
	client := NewClient(srv.URL, session)

	u, err := client.Login(context.Background(), "p@demo.com", "demo123")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.True(t, session.Active())
	assert.Equal(t, "tok-123", session.Token())
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
	}))
	defer srv.Close()

	session := NewSession()
	client := NewClient(srv.URL, session)

	_, err := client.Login(context.Background(), "p@demo.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
	assert.False(t, session.Active())
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		jsonResponse(t, w, http.StatusOK, []Appointment{})
	}))
	defer srv.Close()

	session := NewSession()
	session.Init(User{ID: "u1"}, "tok-abc")
	client := NewClient(srv.URL, session)

	_, err := client.Appointments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestClient_Logout_ClearsSession(t *testing.T) {
	session := NewSession()
	session.Init(User{ID: "u1"}, "tok")
	client := NewClient("http://localhost", session)

	client.Logout()

	assert.False(t, session.Active())
	_, ok := session.User()
	assert.False(t, ok)
}

func TestClient_UpdateProfile_CarriesHealthFields(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/profile", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		jsonResponse(t, w, http.StatusOK, User{
			ID:          "u1",
			Name:        "Pat",
			DateOfBirth: "1990-05-14",
			BloodGroup:  "O+",
		})
	}))
	defer srv.Close()

	session := NewSession()
	session.Init(User{ID: "u1"}, "tok")
	client := NewClient(srv.URL, session)

	u, err := client.UpdateProfile(context.Background(), User{
		DateOfBirth: "1990-05-14",
		BloodGroup:  "O+",
	})
	require.NoError(t, err)
	assert.Equal(t, "1990-05-14", got["dateOfBirth"])
	assert.Equal(t, "1990-05-14", u.DateOfBirth)
	assert.Equal(t, "O+", u.BloodGroup)
}

func TestAPIError_FallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, NewSession())

	_, err := client.Doctors(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}
