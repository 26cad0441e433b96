package identity

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthhub/healthhub/internal/platform/apperr"
	"github.com/healthhub/healthhub/internal/platform/auth"
	"github.com/healthhub/healthhub/pkg/pagination"
)

type Handler struct {
	svc    *Service
	tokens *auth.TokenIssuer
}

func NewHandler(svc *Service, tokens *auth.TokenIssuer) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

// RegisterRoutes mounts the public auth endpoints and the protected profile
// and patient-listing endpoints.
func (h *Handler) RegisterRoutes(public, api *echo.Group) {
	public.POST("/auth/register", h.Register)
	public.POST("/auth/login", h.Login)

	api.GET("/auth/profile", h.Profile)
	api.PUT("/auth/profile", h.UpdateProfile)

	admin := api.Group("", auth.RequireRole(auth.RoleAdmin))
	admin.GET("/patients", h.ListPatients)
}

type authResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return apperr.New(apperr.Validation, "invalid request body")
	}

	u, err := h.svc.Register(c.Request().Context(), in)
	if err != nil {
		return err
	}

	token, err := h.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, authResponse{User: u, Token: token})
}

func (h *Handler) Login(c echo.Context) error {
	var in LoginInput
	if err := c.Bind(&in); err != nil {
		return apperr.New(apperr.Validation, "invalid request body")
	}

	u, err := h.svc.Authenticate(c.Request().Context(), in)
	if err != nil {
		return err
	}

	token, err := h.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{User: u, Token: token})
}

func (h *Handler) Profile(c echo.Context) error {
	p, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return apperr.Unauthenticated("missing authorization header")
	}

	u, err := h.svc.GetByID(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	p, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return apperr.Unauthenticated("missing authorization header")
	}

	var in ProfileUpdate
	if err := c.Bind(&in); err != nil {
		return apperr.New(apperr.Validation, "invalid request body")
	}

	u, err := h.svc.UpdateProfile(c.Request().Context(), p.ID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) ListPatients(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListPatients(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
