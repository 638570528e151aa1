package httpapi

import (
	"strings"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jessicaagarwal/ai-scambuster/internal/core"
	"github.com/jessicaagarwal/ai-scambuster/internal/metrics"
	"github.com/jessicaagarwal/ai-scambuster/internal/utils"
)

// Server is the HTTP analysis surface: a thin request/response mapping over
// the analysis service. Validation errors are the only client errors; the
// pipeline itself never fails a request.
type Server struct {
	app           *fiber.App
	service       *core.AnalysisService
	metrics       *metrics.Metrics
	text          *utils.TextProcessor
	logger        *zap.Logger
	listenAddr    string
	maxPromptSize int
}

// analyzeRequest is the inbound payload for POST /analyze.
type analyzeRequest struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewServer creates a new HTTP server
func NewServer(
	service *core.AnalysisService,
	m *metrics.Metrics,
	text *utils.TextProcessor,
	logger *zap.Logger,
	listenAddr string,
	readTimeout time.Duration,
	writeTimeout time.Duration,
	maxPromptSize int,
) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           readTimeout,
		WriteTimeout:          writeTimeout,
		DisableStartupMessage: true,
	})

	s := &Server{
		app:           app,
		service:       service,
		metrics:       m,
		text:          text,
		logger:        logger,
		listenAddr:    listenAddr,
		maxPromptSize: maxPromptSize,
	}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.app.Post("/analyze", s.handleAnalyze)
	s.app.Get("/healthz", s.handleHealth)
	s.app.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))
}

// handleAnalyze runs the classification and explanation pipeline for one
// message.
func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "message is required"})
	}

	// NFKC folding first: scam messages hide keywords behind fullwidth
	// characters and homoglyphs.
	message := s.text.ProcessText(req.Message, s.maxPromptSize)

	start := time.Now()
	result := s.service.Analyze(c.UserContext(), message)
	s.metrics.Observe(result, time.Since(start))

	return c.JSON(result)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Start starts the HTTP server in the background
func (s *Server) Start() error {
	s.logger.Info("HTTP API starting", zap.String("address", s.listenAddr))

	go func() {
		if err := s.app.Listen(s.listenAddr); err != nil {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop shuts the HTTP server down
func (s *Server) Stop() error {
	return s.app.Shutdown()
}
