package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/pipeline"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/score"
)

// Handler serves the analysis routes over a shared detector.
type Handler struct {
	detector *pipeline.Detector
	info     Info
}

// NewHandler wraps detector.
func NewHandler(detector *pipeline.Detector, info Info) *Handler {
	return &Handler{detector: detector, info: info}
}

type errorResponse struct {
	Error string `json:"error"`
}

type textRequest struct {
	Text string `json:"text"`
}

type urlRequest struct {
	URL string `json:"url"`
}

type profileRequest struct {
	Profile *model.Profile `json:"profile"`
}

type completeRequest struct {
	Text    string         `json:"text"`
	URLs    StringList     `json:"urls"`
	Profile *model.Profile `json:"profile"`
}

type textResponse struct {
	Success    bool               `json:"success"`
	Analysis   model.TextAnalysis `json:"analysis"`
	TrustLevel model.TrustLevel   `json:"trust_level"`
}

type analysisResponse struct {
	Success  bool `json:"success"`
	Analysis any  `json:"analysis"`
}

type completeResponse struct {
	Success bool `json:"success"`
	model.CombinedResult
}

// AnalyzeText handles POST /analyze.
func (h *Handler) AnalyzeText(c *gin.Context) {
	var req textRequest
	if !bind(c, &req) {
		return
	}
	a, err := h.detector.AnalyzeText(req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, textResponse{Success: true, Analysis: a, TrustLevel: score.TrustLevel(a.Score)})
}

// AnalyzeURL handles POST /analyze-url.
func (h *Handler) AnalyzeURL(c *gin.Context) {
	var req urlRequest
	if !bind(c, &req) {
		return
	}
	a, err := h.detector.AnalyzeURL(req.URL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysisResponse{Success: true, Analysis: a})
}

// AnalyzeProfile handles POST /analyze-profile.
func (h *Handler) AnalyzeProfile(c *gin.Context) {
	var req profileRequest
	if !bind(c, &req) {
		return
	}
	if req.Profile == nil {
		respondError(c, fmt.Errorf("profile is required: %w", model.ErrInvalidInput))
		return
	}
	a, err := h.detector.AnalyzeProfile(*req.Profile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysisResponse{Success: true, Analysis: a})
}

// AnalyzeComplete handles POST /analyze-complete.
func (h *Handler) AnalyzeComplete(c *gin.Context) {
	var req completeRequest
	if !bind(c, &req) {
		return
	}
	result := h.detector.AnalyzeComplete(pipeline.CompleteRequest{
		Text:    req.Text,
		URLs:    req.URLs,
		Profile: req.Profile,
	})
	c.JSON(http.StatusOK, completeResponse{Success: true, CombinedResult: result})
}

// ClassifyAll handles POST /api/classify-all.
func (h *Handler) ClassifyAll(c *gin.Context) {
	var req ClassifyAllRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.detector.ClassifyAll(c.Request.Context(), req.toPipeline()))
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.detector.Health())
}

// Index handles GET /.
func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":   h.info.Name,
		"version":   h.info.Version,
		"endpoints": endpoints,
	})
}

var endpoints = []string{
	"POST /analyze",
	"POST /analyze-url",
	"POST /analyze-profile",
	"POST /analyze-complete",
	"POST /api/classify-all",
	"GET /health",
	"GET /metrics",
}

// bind decodes the JSON body. An empty body decodes as {} so the handler
// can report the missing field itself.
func bind(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, model.ErrInvalidInput) {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
