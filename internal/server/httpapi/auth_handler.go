package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/studytrack/internal/server/users"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "username", user.Username)
	s.respondWithJSON(w, http.StatusCreated, registerResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    users.PublicUser `json:"user"`
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "user logged in", "username", result.User.Username)
	s.respondWithJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    result.User,
	})
}
