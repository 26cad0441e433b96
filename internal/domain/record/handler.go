package record

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthhub/healthhub/internal/platform/apperr"
	"github.com/healthhub/healthhub/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/records", h.List)
	api.POST("/records", h.Create)
	api.DELETE("/records/:id", h.Delete)
}

func principal(c echo.Context) (auth.Principal, error) {
	p, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return auth.Principal{}, apperr.Unauthenticated("missing authorization header")
	}
	return p, nil
}

func (h *Handler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	items, err := h.svc.List(c.Request().Context(), p)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*MedicalRecord{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var in Draft
	if err := c.Bind(&in); err != nil {
		return apperr.New(apperr.Validation, "invalid request body")
	}
	m, err := h.svc.Create(c.Request().Context(), p, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NotFoundf("Record not found")
	}
	if err := h.svc.Delete(c.Request().Context(), p, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Record deleted"})
}
