// Package api exposes the bot over HTTP.
//
//	GET  /get?msg=...                -> plain text reply
//	POST /predict {"message": "..."} -> {"answer": "..."}
//	GET  /summary                    -> {"summary": "..."}
//	GET  /healthz                    -> {"ok": true, "sentences": n}
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"visab/internal/config"
	"visab/internal/corpus"
	"visab/internal/domain"
)

// BotPort is the HTTP-facing subset of the bot.
type BotPort interface {
	Answer(text string) domain.Reply
	Corpus() *corpus.Store
}

// Server wires the bot into a fiber application.
type Server struct {
	app                 *fiber.App
	cfg                 config.ServerConfig
	bot                 BotPort
	summarizer          domain.Summarizer
	summaryMaxSentences int
	limiter             *RateLimiter
	log                 *zap.Logger
}

type predictRequest struct {
	Message string `json:"message"`
}

type predictResponse struct {
	Answer string `json:"answer"`
}

// New builds the fiber app and registers routes. summarizer may be nil,
// in which case /summary is not served.
func New(cfg config.ServerConfig, bot BotPort, summarizer domain.Summarizer, summaryMaxSentences int, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		cfg:                 cfg,
		bot:                 bot,
		summarizer:          summarizer,
		summaryMaxSentences: summaryMaxSentences,
		log:                 log.Named("api"),
	}
	s.limiter = NewRateLimiter(cfg.RateLimitRPM, cfg.RateLimitBurst, s.log)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             64 * 1024,
		ErrorHandler:          s.handleError,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(s.requestLogger)
	app.Use(s.rateLimit)

	app.Get("/healthz", s.handleHealthz)
	app.Get("/get", s.handleGet)
	app.Post("/predict", s.handlePredict)
	if summarizer != nil {
		app.Get("/summary", s.handleSummary)
	}

	s.app = app
	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens on the configured address until Shutdown is called.
func (s *Server) Run() error {
	s.log.Info("server listening", zap.String("addr", s.cfg.Addr))
	return s.app.Listen(s.cfg.Addr)
}

// Shutdown stops the server, waiting up to timeout for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

func (s *Server) handleHealthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "sentences": s.bot.Corpus().Len()})
}

func (s *Server) handleGet(c *fiber.Ctx) error {
	reply := s.answer(c, c.Query("msg"))
	return c.SendString(reply.Text)
}

func (s *Server) handlePredict(c *fiber.Ctx) error {
	var req predictRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid json: "+err.Error())
	}
	reply := s.answer(c, req.Message)
	return c.JSON(predictResponse{Answer: reply.Text})
}

func (s *Server) handleSummary(c *fiber.Ctx) error {
	summary, err := s.summarizer.Summarize(s.bot.Corpus().Sentences(), s.summaryMaxSentences)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"summary": summary})
}

func (s *Server) answer(c *fiber.Ctx, text string) domain.Reply {
	reply := s.bot.Answer(text)
	s.log.Debug("answered",
		zap.String("request_id", requestID(c)),
		zap.String("kind", string(reply.Kind)),
	)
	return reply
}

func (s *Server) requestLogger(c *fiber.Ctx) error {
	id := c.Get(fiber.HeaderXRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals("request_id", id)
	c.Set(fiber.HeaderXRequestID, id)

	start := time.Now()
	err := c.Next()
	if err != nil {
		// Let the error handler pick the status before it is logged.
		if herr := c.App().ErrorHandler(c, err); herr != nil {
			_ = c.SendStatus(http.StatusInternalServerError)
		}
	}
	s.log.Info("request",
		zap.String("request_id", id),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("latency", time.Since(start)),
	)
	return nil
}

func (s *Server) rateLimit(c *fiber.Ctx) error {
	if !s.limiter.Allow(c.IP()) {
		return fiber.NewError(http.StatusTooManyRequests, "rate limit exceeded")
	}
	return c.Next()
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := http.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("request_id", requestID(c)), zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    errorCode(code),
			"message": err.Error(),
		},
	})
}

func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	case http.StatusTooManyRequests:
		return "rate_limited"
	default:
		return "internal"
	}
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("request_id").(string)
	return id
}
