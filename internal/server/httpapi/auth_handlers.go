package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/poseform/formtrack/internal/common"
	"github.com/poseform/formtrack/internal/server/users"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

func toUserSummary(u *users.User) userSummary {
	return userSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		jsonErrorFor(w, err)
		return
	}

	jsonOK(w, http.StatusCreated, toUserSummary(user))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, user, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		jsonErrorFor(w, err)
		return
	}

	jsonOK(w, http.StatusOK, loginResponse{
		Token: token,
		User:  loginUser{ID: user.ID, Name: user.Name},
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := identityFromContext(r.Context())
	if !ok {
		jsonErrorFor(w, common.ErrMissingCredential)
		return
	}

	requestedID := r.PathValue("id")
	if requestedID != viewerID {
		jsonErrorFor(w, common.ErrForbidden)
		return
	}

	user, err := s.users.GetByID(r.Context(), requestedID)
	if err != nil {
		jsonErrorFor(w, err)
		return
	}

	jsonOK(w, http.StatusOK, toUserSummary(user))
}
