package httpapi

import (
	"net/http"
	"time"

	"github.com/poseform/formtrack/internal/common"
	"github.com/poseform/formtrack/internal/server/videos"
)

type videoJSON struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Title      string    `json:"title"`
	StorageKey string    `json:"storageKey"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type uploadResponse struct {
	Message string    `json:"message"`
	Video   videoJSON `json:"video"`
}

func toVideoJSON(v *videos.Video) videoJSON {
	return videoJSON{
		ID:         v.ID,
		UserID:     v.UserID,
		Title:      v.Title,
		StorageKey: v.StorageKey,
		UploadedAt: v.UploadedAt,
	}
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := identityFromContext(r.Context())
	if !ok {
		jsonErrorFor(w, common.ErrMissingCredential)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("video")
	if err != nil {
		jsonError(w, "Missing video field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	title := r.FormValue("title")
	if title == "" {
		title = header.Filename
	}
	contentType := header.Header.Get("Content-Type")

	video, err := s.videos.Upload(r.Context(), ownerID, title, contentType, file)
	if err != nil {
		jsonErrorFor(w, err)
		return
	}

	jsonOK(w, http.StatusCreated, uploadResponse{
		Message: "Video uploaded successfully",
		Video:   toVideoJSON(video),
	})
}

func (s *Server) handleListVideos(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := identityFromContext(r.Context())
	if !ok {
		jsonErrorFor(w, common.ErrMissingCredential)
		return
	}

	list, err := s.videos.ListByOwner(r.Context(), ownerID)
	if err != nil {
		jsonErrorFor(w, err)
		return
	}

	out := make([]videoJSON, 0, len(list))
	for _, item := range list {
		out = append(out, toVideoJSON(item))
	}

	jsonOK(w, http.StatusOK, out)
}
