package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/couchcryptid/flood-risk-api/internal/analysis"
	"github.com/couchcryptid/flood-risk-api/internal/config"
	"github.com/couchcryptid/flood-risk-api/internal/domain"
	"github.com/couchcryptid/flood-risk-api/internal/observability"
)

const (
	apiVersion = "2.0.0"

	// maxImageBytes is the documented upload limit.
	maxImageBytes = 10 * 1024 * 1024
	// maxUploadBytes bounds what we will buffer at all. Anything between the
	// two limits still gets the documented oversize rejection.
	maxUploadBytes = 32 * 1024 * 1024

	detailNotAnImage    = "Only image files are accepted"
	detailOversize      = "File size exceeds 10MB limit"
	detailInvalidImage  = "Invalid image format"
	detailInternalError = "Internal server error during analysis"
)

// AnalysisService is the part of the analysis service the handlers consume.
type AnalysisService interface {
	AnalyzeCoordinates(ctx context.Context, lat, lon float64) (analysis.Result, error)
	AnalyzeImage(ctx context.Context, jpeg []byte) (analysis.Result, error)
}

// Handler serves the API endpoints.
type Handler struct {
	service AnalysisService
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewHandler creates a Handler over the analysis service.
func NewHandler(service AnalysisService, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Handler {
	return &Handler{service: service, cfg: cfg, logger: logger, metrics: metrics}
}

// envelope is the uniform response shape of both analysis endpoints. Every
// field is always populated regardless of the model/fallback path taken.
type envelope struct {
	Success           bool     `json:"success"`
	RiskLevel         string   `json:"risk_level"`
	Description       string   `json:"description"`
	Recommendations   []string `json:"recommendations"`
	Elevation         float64  `json:"elevation"`
	DistanceFromWater float64  `json:"distance_from_water"`
	AIAnalysis        string   `json:"ai_analysis"`
	Message           string   `json:"message"`
}

func newEnvelope(res analysis.Result) envelope {
	return envelope{
		Success:           true,
		RiskLevel:         res.Assessment.RiskLevel,
		Description:       res.Assessment.Description,
		Recommendations:   res.Assessment.Recommendations,
		Elevation:         res.Assessment.Elevation,
		DistanceFromWater: res.Assessment.DistanceFromWater,
		AIAnalysis:        res.Assessment.Analysis,
		Message:           res.Message,
	}
}

// Root returns service metadata.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Flood Detection API with Gemini AI",
		"version":   apiVersion,
		"status":    "healthy",
		"timestamp": domain.Now().Format(time.RFC3339),
		"endpoints": map[string]string{
			"health_check":        "/health",
			"image_analysis":      "/api/analyze/image",
			"coordinate_analysis": "/api/analyze/coordinates",
			"metrics":             "/metrics",
		},
	})
}

// Health returns the detailed health payload. Always 200.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "healthy",
		"ai_model":    h.cfg.GeminiModel,
		"timestamp":   domain.Now().Format(time.RFC3339),
		"environment": h.cfg.Environment,
	})
}

type coordinateRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// AnalyzeCoordinates handles POST /api/analyze/coordinates.
func (h *Handler) AnalyzeCoordinates(w http.ResponseWriter, r *http.Request) {
	var req coordinateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ValidationRejections.WithLabelValues(analysis.KindCoordinates, "body").Inc()
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		h.metrics.ValidationRejections.WithLabelValues(analysis.KindCoordinates, "body").Inc()
		writeError(w, http.StatusUnprocessableEntity, "latitude and longitude are required")
		return
	}

	res, err := h.service.AnalyzeCoordinates(r.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		var verr *analysis.ValidationError
		if errors.As(err, &verr) {
			h.metrics.ValidationRejections.WithLabelValues(analysis.KindCoordinates, "range").Inc()
			writeError(w, http.StatusUnprocessableEntity, verr.Detail)
			return
		}
		h.logger.Error("coordinate analysis error", "error", err)
		writeError(w, http.StatusInternalServerError, detailInternalError)
		return
	}

	writeJSON(w, http.StatusOK, newEnvelope(res))
}

// AnalyzeImage handles POST /api/analyze/image. Upload constraints are
// checked in order, first failure wins: content type, size, decodability.
func (h *Handler) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.metrics.ValidationRejections.WithLabelValues(analysis.KindImage, "size").Inc()
			writeError(w, http.StatusBadRequest, detailOversize)
			return
		}
		h.metrics.ValidationRejections.WithLabelValues(analysis.KindImage, "body").Inc()
		writeError(w, http.StatusUnprocessableEntity, "file field is required")
		return
	}
	defer file.Close()

	h.logger.Info("image analysis request", "filename", header.Filename, "size", header.Size)

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		h.metrics.ValidationRejections.WithLabelValues(analysis.KindImage, "content_type").Inc()
		writeError(w, http.StatusBadRequest, detailNotAnImage)
		return
	}
	if header.Size > maxImageBytes {
		h.metrics.ValidationRejections.WithLabelValues(analysis.KindImage, "size").Inc()
		writeError(w, http.StatusBadRequest, detailOversize)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("read upload failed", "error", err)
		writeError(w, http.StatusInternalServerError, detailInternalError)
		return
	}

	raster, err := domain.NormalizeRaster(data)
	if err != nil {
		h.logger.Warn("image decode failed", "filename", header.Filename, "error", err)
		h.metrics.ValidationRejections.WithLabelValues(analysis.KindImage, "decode").Inc()
		writeError(w, http.StatusBadRequest, detailInvalidImage)
		return
	}

	res, err := h.service.AnalyzeImage(r.Context(), raster)
	if err != nil {
		h.logger.Error("image analysis error", "error", err)
		writeError(w, http.StatusInternalServerError, detailInternalError)
		return
	}

	writeJSON(w, http.StatusOK, newEnvelope(res))
}
