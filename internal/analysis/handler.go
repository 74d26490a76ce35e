package analysis

import (
	"errors"
	"fmt"
	"image"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"valor-backend/internal/i18n"
	"valor-backend/internal/imaging"
	"valor-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze/full", h.analyzeFull)
	rg.POST("/analyze/classify", h.analyzeStage(KindClassification))
	rg.POST("/analyze/ripeness", h.analyzeStage(KindRipeness))
	rg.POST("/analyze/disease", h.analyzeStage(KindDisease))
}

func (h *Handler) analyzeFull(c *gin.Context) {
	language, img, ok := h.parseRequest(c)
	if !ok {
		return
	}

	report := h.Svc.FullAnalysis(c.Request.Context(), img, language)
	respond.OK(c, report)
}

// analyzeStage serves the single-stage endpoints. They skip orchestration
// entirely and return the bare stage result.
func (h *Handler) analyzeStage(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, img, ok := h.parseRequest(c)
		if !ok {
			return
		}

		result := h.Svc.RunStage(c.Request.Context(), img, kind)
		respond.OK(c, result)
	}
}

// parseRequest validates the language form field and decodes the uploaded
// image. All rejection happens here, before the analysis core is invoked.
func (h *Handler) parseRequest(c *gin.Context) (string, image.Image, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	language := strings.TrimSpace(c.DefaultPostForm("language", "en"))
	if !i18n.IsSupported(language) {
		respond.Error(c, http.StatusBadRequest, "validation_error",
			fmt.Sprintf("Unsupported language: %s. Use: %s", language, strings.Join(i18n.SupportedLanguages, ", ")), nil)
		return "", nil, false
	}
	c.Set("language", language)
	c.Set("analysisMode", h.Svc.Mode())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return "", nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return "", nil, false
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		switch {
		case errors.Is(err, imaging.ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Empty file uploaded", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid image format. Use JPEG or PNG.", nil)
		}
		return "", nil, false
	}

	return language, img, true
}
