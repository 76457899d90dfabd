package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"animal-training/internal/platform/logger"
	"animal-training/internal/platform/pagination"
	"animal-training/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RegisterRoutes monta la creación de animales; el router exige token.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/animal", createAnimalHandler(svc))
}

func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Get("/animals", listAnimalsHandler(svc))
}

type createAnimalRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	OwnerID string `json:"ownerId"`
}

type animalResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// createAnimalHandler godoc
// @Summary Crear animal
// @Description Crea un animal para un usuario existente. El dueño no se puede cambiar luego.
// @Tags animals
// @Accept json
// @Produce json
// @Param Authorization header string true "Token firmado, sin prefijo Bearer"
// @Param body body createAnimalRequest true "Datos del animal"
// @Success 200 {object} animalResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 403 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /animal [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Species: req.Species,
			OwnerID: req.OwnerID,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "name, species and ownerId are required")
			case errors.Is(err, ErrUnknownOwner):
				respond.Error(w, http.StatusBadRequest, ErrUnknownOwner.Error())
			default:
				logger.From(r.Context()).Error("create animal failed", zap.Error(err))
				respond.Error(w, http.StatusInternalServerError, "failed to create animal")
			}
			return
		}

		respond.JSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales (admin)
// @Tags admin
// @Produce json
// @Param Authorization header string true "Token firmado, sin prefijo Bearer"
// @Param page query int false "Página (>=1, default 1)"
// @Param limit query int false "Tamaño de página (>=1, default 10)"
// @Success 200 {array} animalResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 403 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /admin/animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pagination.Parse(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
		if err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		items, err := svc.List(r.Context(), page)
		if err != nil {
			logger.From(r.Context()).Error("list animals failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "failed to fetch animals")
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:        a.ID,
		Name:      a.Name,
		Species:   a.Species,
		OwnerID:   a.OwnerID,
		CreatedAt: a.CreatedAt,
	}
}
