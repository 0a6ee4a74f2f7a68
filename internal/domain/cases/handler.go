package cases

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aures1804-lang/moskito/pkg/listing"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/cases", h.CreateCase)
	api.GET("/cases", h.ListCases)
	api.GET("/cases/:id", h.GetCase)
	api.GET("/cases/identification/:identification", h.GetCaseByIdentification)
	api.PATCH("/cases/:id", h.UpdateCase)
	api.DELETE("/cases/:id", h.DeleteCase)
}

func (h *Handler) CreateCase(c echo.Context) error {
	var sub Submission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.svc.Create(c.Request().Context(), &sub)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": verr})
		case errors.Is(err, ErrDuplicateIdentification):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListCases(c echo.Context) error {
	filter := SearchFilter{Limit: listing.LimitFromContext(c)}
	if v := c.QueryParam("identification"); v != "" {
		filter.Identification = &v
	}
	if v := c.QueryParam("municipality"); v != "" {
		filter.Municipality = &v
	}
	if v := c.QueryParam("status"); v != "" {
		filter.Status = &v
	}
	if v := c.QueryParam("care_provider"); v != "" {
		filter.CareProvider = &v
	}
	if v := c.QueryParam("rural_zone"); v != "" {
		rural, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "rural_zone must be a boolean")
		}
		filter.RuralZone = &rural
	}

	items, total, err := h.svc.Search(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listing.NewResponse(items, total, filter.Limit))
}

func (h *Handler) GetCase(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	found, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrCaseNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "case not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, found)
}

func (h *Handler) GetCaseByIdentification(c echo.Context) error {
	found, err := h.svc.GetByIdentification(c.Request().Context(), c.Param("identification"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if found == nil {
		// Lookup miss, not a fault: the endpoint backs duplicate
		// prevention and user-facing search.
		return c.JSON(http.StatusNotFound, map[string]string{"message": "no case with that identification"})
	}
	return c.JSON(http.StatusOK, found)
}

func (h *Handler) UpdateCase(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var fields UpdateFields
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if fields.Empty() {
		return echo.NewHTTPError(http.StatusBadRequest, "no mutable field supplied")
	}

	updated, err := h.svc.Update(c.Request().Context(), id, fields)
	if err != nil {
		if errors.Is(err, ErrCaseNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "case not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteCase(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrCaseNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "case not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
