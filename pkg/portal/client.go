package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIError is a non-2xx response from the server, carrying the message the
// API put in the body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client wraps the HealthHub HTTP API. All methods authenticate with the
// session's bearer token when one is present.
type Client struct {
	http    *resty.Client
	session *Session
}

func NewClient(baseURL string, session *Session) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient, session: session}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token := c.session.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// apiErr converts a non-success response into an *APIError, pulling the
// message out of the {"message": ...} body when present.
func apiErr(resp *resty.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Message == "" {
		body.Message = resp.Status()
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: body.Message}
}

type authResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Register creates an account and initializes the session with the returned
// token.
func (c *Client) Register(ctx context.Context, email, password, name string) (User, error) {
	var out authResult
	resp, err := c.request(ctx).
		SetBody(map[string]string{"email": email, "password": password, "name": name}).
		SetResult(&out).
		Post("/api/auth/register")
	if err != nil {
		return User{}, fmt.Errorf("register: %w", err)
	}
	if resp.IsError() {
		return User{}, apiErr(resp)
	}
	c.session.Init(out.User, out.Token)
	return out.User, nil
}

// Login authenticates and initializes the session.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	var out authResult
	resp, err := c.request(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/api/auth/login")
	if err != nil {
		return User{}, fmt.Errorf("login: %w", err)
	}
	if resp.IsError() {
		return User{}, apiErr(resp)
	}
	c.session.Init(out.User, out.Token)
	return out.User, nil
}

// Logout clears the session. Purely client-side; tokens are stateless.
func (c *Client) Logout() {
	c.session.Clear()
}

// Profile fetches the signed-in user's profile.
func (c *Client) Profile(ctx context.Context) (User, error) {
	var out User
	resp, err := c.request(ctx).SetResult(&out).Get("/api/auth/profile")
	if err != nil {
		return User{}, fmt.Errorf("profile: %w", err)
	}
	if resp.IsError() {
		return User{}, apiErr(resp)
	}
	return out, nil
}

// UpdateProfile merges the given fields into the profile. Zero-valued
// fields are left unchanged by the server.
func (c *Client) UpdateProfile(ctx context.Context, update User) (User, error) {
	var out User
	resp, err := c.request(ctx).SetBody(update).SetResult(&out).Put("/api/auth/profile")
	if err != nil {
		return User{}, fmt.Errorf("update profile: %w", err)
	}
	if resp.IsError() {
		return User{}, apiErr(resp)
	}
	return out, nil
}

// Doctors fetches the full doctor directory.
func (c *Client) Doctors(ctx context.Context) ([]Doctor, error) {
	var out []Doctor
	resp, err := c.request(ctx).SetResult(&out).Get("/api/doctors")
	if err != nil {
		return nil, fmt.Errorf("doctors: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out, nil
}

// Doctor fetches a single directory entry.
func (c *Client) Doctor(ctx context.Context, id string) (Doctor, error) {
	var out Doctor
	resp, err := c.request(ctx).SetResult(&out).Get("/api/doctors/" + id)
	if err != nil {
		return Doctor{}, fmt.Errorf("doctor: %w", err)
	}
	if resp.IsError() {
		return Doctor{}, apiErr(resp)
	}
	return out, nil
}

// Appointments fetches the appointments visible to the signed-in user.
func (c *Client) Appointments(ctx context.Context) ([]Appointment, error) {
	var out []Appointment
	resp, err := c.request(ctx).SetResult(&out).Get("/api/appointments")
	if err != nil {
		return nil, fmt.Errorf("appointments: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out, nil
}

// CreateAppointment books an appointment. The server assigns the id and
// forces the status to pending.
func (c *Client) CreateAppointment(ctx context.Context, draft AppointmentDraft) (Appointment, error) {
	var out Appointment
	resp, err := c.request(ctx).SetBody(draft).SetResult(&out).Post("/api/appointments")
	if err != nil {
		return Appointment{}, fmt.Errorf("create appointment: %w", err)
	}
	if resp.IsError() {
		return Appointment{}, apiErr(resp)
	}
	return out, nil
}

// UpdateAppointment changes status and/or notes. Empty strings leave the
// stored values in place.
func (c *Client) UpdateAppointment(ctx context.Context, id, status, notes string) (Appointment, error) {
	var out Appointment
	resp, err := c.request(ctx).
		SetBody(map[string]string{"status": status, "notes": notes}).
		SetResult(&out).
		Put("/api/appointments/" + id)
	if err != nil {
		return Appointment{}, fmt.Errorf("update appointment: %w", err)
	}
	if resp.IsError() {
		return Appointment{}, apiErr(resp)
	}
	return out, nil
}

// DeleteAppointment removes a booking.
func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	resp, err := c.request(ctx).Delete("/api/appointments/" + id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}

// Records fetches the signed-in user's medical records.
func (c *Client) Records(ctx context.Context) ([]MedicalRecord, error) {
	var out []MedicalRecord
	resp, err := c.request(ctx).SetResult(&out).Get("/api/records")
	if err != nil {
		return nil, fmt.Errorf("records: %w", err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out, nil
}

// CreateRecord stores a document reference.
func (c *Client) CreateRecord(ctx context.Context, draft RecordDraft) (MedicalRecord, error) {
	var out MedicalRecord
	resp, err := c.request(ctx).SetBody(draft).SetResult(&out).Post("/api/records")
	if err != nil {
		return MedicalRecord{}, fmt.Errorf("create record: %w", err)
	}
	if resp.IsError() {
		return MedicalRecord{}, apiErr(resp)
	}
	return out, nil
}

// DeleteRecord removes a document reference.
func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	resp, err := c.request(ctx).Delete("/api/records/" + id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}
