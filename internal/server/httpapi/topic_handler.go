package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// addTopicRequest deliberately has no owner field: ownership always comes
// from the verified token, and a payload carrying an owner id (or any
// other unknown field) is rejected by the strict decoder.
type addTopicRequest struct {
	Subject    string `json:"subject"`
	TopicName  string `json:"topicName"`
	Importance string `json:"importance"`
}

func (s *HTTPServer) handleAddTopic(w http.ResponseWriter, r *http.Request) {

	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		s.respondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req addTopicRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	topic, err := s.topics.Create(r.Context(), userID, req.Subject, req.TopicName, req.Importance)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.respondWithJSON(w, http.StatusCreated, topic)
}

func (s *HTTPServer) handleListTopics(w http.ResponseWriter, r *http.Request) {

	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		s.respondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	list, err := s.topics.List(r.Context(), userID)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.respondWithJSON(w, http.StatusOK, list)
}

type updateTopicRequest struct {
	Status string `json:"status"`
}

func (s *HTTPServer) handleUpdateTopic(w http.ResponseWriter, r *http.Request) {

	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		s.respondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateTopicRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	topic, err := s.topics.UpdateStatus(r.Context(), userID, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.respondWithJSON(w, http.StatusOK, topic)
}

func (s *HTTPServer) handleDeleteTopic(w http.ResponseWriter, r *http.Request) {

	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		s.respondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := s.topics.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.respondWithJSON(w, http.StatusOK, map[string]string{"message": "Topic deleted successfully"})
}
