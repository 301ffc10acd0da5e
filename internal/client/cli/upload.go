package cli

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/poseform/formtrack/internal/common"
)

// videoTypes covers the common container extensions; anything else falls
// through to the system MIME table and content sniffing.
var videoTypes = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
}

func detectContentType(path string, head []byte) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := videoTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return http.DetectContentType(head)
}

// Upload sends a local video file to the server. A non-video file is
// rejected here, before any request is issued; the server applies the same
// check on its side.
func (a *App) Upload(ctx context.Context, args []string) error {
	if !a.api.IsLoggedIn() {
		fmt.Fprintln(a.out, "Log in first")
		return nil
	}
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: upload <file> [title]")
		return nil
	}

	path := args[0]
	title := filepath.Base(path)
	if len(args) > 1 {
		title = strings.Join(args[1:], " ")
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot open file:", err.Error())
		return err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, _ := io.ReadFull(f, head)

	contentType := detectContentType(path, head[:n])
	if !strings.HasPrefix(contentType, "video/") {
		fmt.Fprintf(a.out, "Not a video file (%s)\n", contentType)
		return fmt.Errorf("content type %q: %w", contentType, common.ErrValidation)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	if err := a.api.UploadVideo(ctx, filepath.Base(path), title, contentType, f); err != nil {
		fmt.Fprintln(a.out, "Upload failed:", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Uploaded", title)
	return nil
}
