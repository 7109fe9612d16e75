package account

import (
	"net/http"

	"github.com/lilknig/ember-api/core"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Service) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.Error(w, core.BadRequest("Malformed request body"))
		return
	}

	user, err := s.local.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	core.JSON(w, http.StatusCreated, "User registered successfully", user.Profile())
}

func (s *Service) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.Error(w, core.BadRequest("Malformed request body"))
		return
	}

	user, err := s.local.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	core.JSON(w, http.StatusOK, "Login successful", user.Profile())
}
