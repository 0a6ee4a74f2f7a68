package scoring

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	advisory       = "This is an estimate; consult a physician."
	lowRiskMessage = "Low probability of vector-borne disease. Keep monitoring your symptoms."
)

// Handler exposes the advisory scoring endpoint.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/symptoms/score", h.ScoreSymptoms)
}

type scoreRequest struct {
	Symptoms []string `json:"symptoms"`
}

type scoreResponse struct {
	Probabilities map[string]float64 `json:"probabilities"`
	Message       string             `json:"message,omitempty"`
	Advisory      string             `json:"advisory"`
}

// ScoreSymptoms evaluates a reported symptom set against the disease
// weight profiles. The call is advisory: it persists nothing.
func (h *Handler) ScoreSymptoms(c echo.Context) error {
	var req scoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	probabilities := Score(req.Symptoms)
	resp := scoreResponse{
		Probabilities: probabilities,
		Advisory:      advisory,
	}
	if len(probabilities) == 0 {
		resp.Message = lowRiskMessage
	}
	return c.JSON(http.StatusOK, resp)
}
