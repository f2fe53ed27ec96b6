package handler

import (
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"restaurant-hub/internal/model"
	"restaurant-hub/internal/service"
)

// maxUploadSize bounds image upload bodies.
const maxUploadSize = 10 << 20 // 10 MiB

// siteImageExts lists accepted site image extensions. Menu images use
// the same set minus svg.
var siteImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// ImageHandler handles site and menu image HTTP requests.
type ImageHandler struct {
	service service.ImageService
	logger  zerolog.Logger
}

// NewImageHandler creates a new image handler.
func NewImageHandler(service service.ImageService, logger zerolog.Logger) *ImageHandler {
	return &ImageHandler{
		service: service,
		logger:  logger.With().Str("handler", "image").Logger(),
	}
}

// ListSiteImages handles GET /api/site-images.
func (h *ImageHandler) ListSiteImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.ListSiteImages(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, images)
}

// UploadSiteImage handles POST /api/images/upload/site. Expects a
// multipart form with an "image" file plus image_type, alt_text and
// description fields.
func (h *ImageHandler) UploadSiteImage(w http.ResponseWriter, r *http.Request) {
	file, filename, err := h.imageFile(w, r, true)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	defer file.Close()

	meta := &model.SiteImageUpload{
		ImageType:   r.FormValue("image_type"),
		AltText:     r.FormValue("alt_text"),
		Description: r.FormValue("description"),
	}

	image, err := h.service.UploadSiteImage(r.Context(), file, filename, meta)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusCreated, image)
}

// DeleteSiteImage handles DELETE /api/site-images/{id}.
func (h *ImageHandler) DeleteSiteImage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.service.DeleteSiteImage(r.Context(), id); err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, model.Response{Success: true, Message: "Image deleted"})
}

// ListMenuImages handles GET /api/menu-items/{id}/images.
func (h *ImageHandler) ListMenuImages(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	images, err := h.service.ListMenuImages(r.Context(), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusOK, images)
}

// UploadMenuImage handles POST /api/images/upload/menu. Expects a
// multipart form with an "image" file and a menu_item_id field.
func (h *ImageHandler) UploadMenuImage(w http.ResponseWriter, r *http.Request) {
	file, filename, err := h.imageFile(w, r, false)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	defer file.Close()

	menuItemID, err := strconv.Atoi(r.FormValue("menu_item_id"))
	if err != nil || menuItemID < 1 {
		writeError(w, model.NewDomainError(model.ErrCodeValidation, "Valid menu_item_id is required"), h.logger)
		return
	}

	image, err := h.service.UploadMenuImage(r.Context(), menuItemID, file, filename)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeData(w, http.StatusCreated, image)
}

// imageFile parses the multipart form and returns the "image" file
// after checking its extension.
func (h *ImageHandler) imageFile(w http.ResponseWriter, r *http.Request, allowSVG bool) (io.ReadCloser, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, "", model.NewDomainError(model.ErrCodeValidation, "Invalid multipart form")
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, "", model.NewDomainError(model.ErrCodeValidation, "Image file is required")
	}

	ext := strings.ToLower(path.Ext(header.Filename))
	if !siteImageExts[ext] || (ext == ".svg" && !allowSVG) {
		file.Close()
		return nil, "", model.NewDomainError(model.ErrCodeValidation, "Unsupported image format")
	}

	return file, header.Filename, nil
}
