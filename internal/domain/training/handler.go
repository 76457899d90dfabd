package training

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"animal-training/internal/platform/logger"
	"animal-training/internal/platform/pagination"
	"animal-training/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/training", createTrainingLogHandler(svc))
}

func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Get("/training", listTrainingLogsHandler(svc))
}

// createTrainingLogRequest es el cuerpo para registrar una sesión.
type createTrainingLogRequest struct {
	UserID      string `json:"userId"`
	AnimalID    string `json:"animalId"`
	Description string `json:"description"`
	Date        string `json:"date"` // RFC3339 o YYYY-MM-DD, opcional
}

type trainingLogResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	AnimalID    string    `json:"animalId"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// createTrainingLogHandler godoc
// @Summary Registrar sesión de entrenamiento
// @Description El animal debe pertenecer al usuario indicado. Ids inexistentes => "invalid user or animal id".
// @Tags training
// @Accept json
// @Produce json
// @Param Authorization header string true "Token firmado, sin prefijo Bearer"
// @Param body body createTrainingLogRequest true "Sesión"
// @Success 200 {object} trainingLogResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 403 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /training [post]
func createTrainingLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTrainingLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		date, err := parseDate(req.Date)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
			return
		}

		l, err := svc.Create(r.Context(), CreateInput{
			UserID:      req.UserID,
			AnimalID:    req.AnimalID,
			Description: req.Description,
			Date:        date,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "description is required")
			case errors.Is(err, ErrInvalidReference):
				respond.Error(w, http.StatusBadRequest, ErrInvalidReference.Error())
			case errors.Is(err, ErrOwnershipMismatch):
				respond.Error(w, http.StatusBadRequest, ErrOwnershipMismatch.Error())
			default:
				logger.From(r.Context()).Error("create training log failed", zap.Error(err))
				respond.Error(w, http.StatusInternalServerError, "failed to create training log")
			}
			return
		}

		respond.JSON(w, http.StatusOK, toTrainingLogResponse(l))
	}
}

// listTrainingLogsHandler godoc
// @Summary Listar sesiones de entrenamiento (admin)
// @Tags admin
// @Produce json
// @Param Authorization header string true "Token firmado, sin prefijo Bearer"
// @Param page query int false "Página (>=1, default 1)"
// @Param limit query int false "Tamaño de página (>=1, default 10)"
// @Success 200 {array} trainingLogResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 403 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /admin/training [get]
func listTrainingLogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pagination.Parse(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
		if err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		items, err := svc.List(r.Context(), page)
		if err != nil {
			logger.From(r.Context()).Error("list training logs failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "failed to fetch training logs")
			return
		}

		out := make([]trainingLogResponse, 0, len(items))
		for _, l := range items {
			out = append(out, toTrainingLogResponse(l))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toTrainingLogResponse(l Log) trainingLogResponse {
	return trainingLogResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		AnimalID:    l.AnimalID,
		Description: l.Description,
		Date:        l.Date,
		CreatedAt:   l.CreatedAt,
	}
}
