package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"animal-training/internal/platform/logger"
	"animal-training/internal/platform/pagination"
	"animal-training/internal/platform/respond"
	"animal-training/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RegisterRoutes monta las rutas públicas (registro y login).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/user", func(ur chi.Router) {
		ur.Post("/", createUserHandler(svc))
		ur.Post("/login", loginHandler(svc))
	})
}

// RegisterAdminRoutes monta el listado paginado; el router lo protege con rol admin.
func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Get("/users", listUsersHandler(svc))
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// userResponse es un allow-list: el hash del password nunca sale.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      auth.Role `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// createUserHandler godoc
// @Summary Registrar usuario
// @Description Crea un usuario con el password hasheado. La respuesta no incluye el password.
// @Tags users
// @Accept json
// @Produce json
// @Param body body createUserRequest true "Datos del usuario"
// @Success 200 {object} userResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /user [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "name, email and password are required")
			case errors.Is(err, ErrPasswordTooLong):
				respond.Error(w, http.StatusBadRequest, ErrPasswordTooLong.Error())
			case errors.Is(err, ErrEmailTaken):
				respond.Error(w, http.StatusConflict, ErrEmailTaken.Error())
			default:
				logger.From(r.Context()).Error("create user failed", zap.Error(err))
				respond.Error(w, http.StatusInternalServerError, "failed to create user")
			}
			return
		}

		respond.JSON(w, http.StatusOK, toUserResponse(u))
	}
}

// loginHandler godoc
// @Summary Login
// @Description Devuelve un token firmado (1h). Mismo error para email inexistente o password incorrecto.
// @Tags users
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 403 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /user/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				respond.Error(w, http.StatusForbidden, ErrInvalidCredentials.Error())
				return
			}
			logger.From(r.Context()).Error("login failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "failed to log in user")
			return
		}

		respond.JSON(w, http.StatusOK, loginResponse{Token: token})
	}
}

// listUsersHandler godoc
// @Summary Listar usuarios (admin)
// @Tags admin
// @Produce json
// @Param Authorization header string true "Token firmado, sin prefijo Bearer"
// @Param page query int false "Página (>=1, default 1)"
// @Param limit query int false "Tamaño de página (>=1, default 10)"
// @Success 200 {array} userResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 403 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /admin/users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pagination.Parse(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
		if err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		items, err := svc.List(r.Context(), page)
		if err != nil {
			logger.From(r.Context()).Error("list users failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "failed to fetch users")
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
