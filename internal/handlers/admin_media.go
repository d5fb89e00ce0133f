package handlers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"framelight/internal/middleware"
	"framelight/internal/models"
	"framelight/internal/render"
	"framelight/internal/slug"
)

const (
	// maxUploadSize is the maximum allowed file upload size (50 MB).
	maxUploadSize = 50 << 20

	// mediaPageSize is the number of files per media library page.
	mediaPageSize = 24

	// thumbMaxWidth is the maximum thumbnail width in pixels.
	thumbMaxWidth = 400

	// thumbQuality is the JPEG quality for generated thumbnails.
	thumbQuality = 80

	// maxImagePixels caps the decoded size to prevent memory bombs.
	maxImagePixels = 100_000_000
)

// allowedMediaTypes defines MIME types accepted for upload. Videos are
// allowed because portfolio items can embed self-hosted clips.
var allowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"video/mp4":  true,
	"video/webm": true,
}

// thumbableTypes are image types that support thumbnail generation.
// GIF is excluded to preserve animation.
var thumbableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// MediaLibrary renders the media library page.
func (a *Admin) MediaLibrary(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"StorageReady": a.storage != nil,
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	// Probe one past the page size to decide whether an older page exists.
	files, err := a.mediaStore.List(mediaPageSize+1, (page-1)*mediaPageSize)
	if err != nil {
		slog.Error("list media failed", "error", err)
	}
	if len(files) > mediaPageSize {
		files = files[:mediaPageSize]
		data["HasMore"] = true
		data["NextPage"] = page + 1
	}
	data["Files"] = files

	if a.storage != nil {
		data["BaseURL"] = strings.TrimRight(a.storage.FileURL(""), "/")
	}

	a.renderer.AdminPage(w, r, "media", &render.PageData{
		Title:   "Media library",
		Section: "media",
		Data:    data,
	})
}

// MediaUpload handles a multipart file upload to S3 plus a thumbnail for
// supported image types.
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		http.Error(w, "Object storage is not configured", http.StatusServiceUnavailable)
		return
	}

	sess := middleware.SessionFromCtx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "File too large. Maximum size is 50 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "No file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		http.Error(w, "File too large. Maximum size is 50 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	if !allowedMediaTypes[contentType] {
		http.Error(w, fmt.Sprintf("File type %q is not allowed", contentType), http.StatusBadRequest)
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		http.Error(w, "Failed to process file", http.StatusInternalServerError)
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	// Build a unique storage key from a slugged filename so object names
	// stay readable in the bucket.
	now := time.Now()
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	base := slug.Generate(strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)))
	if base == "" {
		base = "file"
	}
	fileID := uuid.New().String()
	filename := base + "-" + fileID[:8] + ext
	s3Key := fmt.Sprintf("media/%d/%02d/%s", now.Year(), now.Month(), filename)

	ctx := r.Context()
	if err := a.storage.Upload(ctx, s3Key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", s3Key)
		http.Error(w, "Failed to upload file", http.StatusInternalServerError)
		return
	}

	var thumbKey *string
	if thumbableTypes[contentType] {
		thumbData, err := generateThumbnail(bytes.NewReader(fileBytes), thumbMaxWidth)
		if err != nil {
			slog.Warn("thumbnail generation failed", "error", err, "key", s3Key)
		} else if thumbData != nil {
			tk := fmt.Sprintf("media/%d/%02d/%s-%s_thumb.jpg", now.Year(), now.Month(), base, fileID[:8])
			if err := a.storage.Upload(ctx, tk, "image/jpeg", bytes.NewReader(thumbData), int64(len(thumbData))); err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "key", tk)
			} else {
				thumbKey = &tk
			}
		}
	}

	m := &models.Media{
		Filename:     filename,
		OriginalName: header.Filename,
		ContentType:  contentType,
		SizeBytes:    int64(len(fileBytes)),
		Bucket:       a.storage.Bucket(),
		S3Key:        s3Key,
		ThumbS3Key:   thumbKey,
		UploaderID:   sess.UserID,
	}
	if _, err := a.mediaStore.Create(m); err != nil {
		slog.Error("media db insert failed", "error", err, "key", s3Key)
		http.Error(w, "Failed to save file metadata", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/media", http.StatusSeeOther)
}

// MediaDelete removes a media item from the database and its objects
// from S3. S3 cleanup is best-effort.
func (a *Admin) MediaDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	m, err := a.mediaStore.FindByID(id)
	if err != nil {
		slog.Error("media lookup failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if m == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	if err := a.mediaStore.Delete(id); err != nil {
		slog.Error("media db delete failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if a.storage != nil {
		ctx := r.Context()
		if err := a.storage.Delete(ctx, m.S3Key); err != nil {
			slog.Warn("s3 delete failed", "error", err, "key", m.S3Key)
		}
		if m.ThumbS3Key != nil {
			if err := a.storage.Delete(ctx, *m.ThumbS3Key); err != nil {
				slog.Warn("s3 thumbnail delete failed", "error", err, "key", *m.ThumbS3Key)
			}
		}
	}

	http.Redirect(w, r, "/admin/media", http.StatusSeeOther)
}

// generateThumbnail creates a JPEG thumbnail constrained to maxWidth,
// preserving aspect ratio. Returns nil when the image is already small
// enough.
func generateThumbnail(src io.ReadSeeker, maxWidth int) ([]byte, error) {
	imgCfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if int64(imgCfg.Width)*int64(imgCfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("image too large: %dx%d exceeds %d pixels", imgCfg.Width, imgCfg.Height, maxImagePixels)
	}

	if imgCfg.Width <= maxWidth {
		return nil, nil
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	ratio := float64(maxWidth) / float64(bounds.Dx())
	newWidth := maxWidth
	newHeight := int(float64(bounds.Dy()) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// extensionFromType returns a file extension for known MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	default:
		return ""
	}
}
