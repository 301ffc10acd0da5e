package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/poseform/formtrack/internal/common"
	"github.com/poseform/formtrack/internal/server/sessions"
)

// createSessionRequest matches the wire format of older clients, which still
// send a userId field. It is decoded and deliberately ignored: ownership
// comes from the verified token only.
type createSessionRequest struct {
	Exercise string  `json:"exercise"`
	Accuracy float64 `json:"accuracy"`
	Feedback string  `json:"feedback"`
	UserID   string  `json:"userId"`
}

type sessionJSON struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Exercise  string    `json:"exercise"`
	Accuracy  float64   `json:"accuracy"`
	Feedback  string    `json:"feedback"`
	Timestamp time.Time `json:"timestamp"`
}

type createSessionResponse struct {
	Message string      `json:"message"`
	Session sessionJSON `json:"session"`
}

func toSessionJSON(s *sessions.Session) sessionJSON {
	return sessionJSON{
		ID:        s.ID,
		UserID:    s.UserID,
		Exercise:  s.Exercise,
		Accuracy:  s.Accuracy,
		Feedback:  s.Feedback,
		Timestamp: s.CreatedAt,
	}
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := identityFromContext(r.Context())
	if !ok {
		jsonErrorFor(w, common.ErrMissingCredential)
		return
	}

	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := s.sessions.Create(r.Context(), ownerID, req.Exercise, req.Accuracy, req.Feedback)
	if err != nil {
		jsonErrorFor(w, err)
		return
	}

	jsonOK(w, http.StatusCreated, createSessionResponse{
		Message: "Session saved",
		Session: toSessionJSON(session),
	})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := identityFromContext(r.Context())
	if !ok {
		jsonErrorFor(w, common.ErrMissingCredential)
		return
	}

	list, err := s.sessions.ListByOwner(r.Context(), viewerID, r.PathValue("userId"))
	if err != nil {
		jsonErrorFor(w, err)
		return
	}

	out := make([]sessionJSON, 0, len(list))
	for _, item := range list {
		out = append(out, toSessionJSON(item))
	}

	jsonOK(w, http.StatusOK, out)
}
