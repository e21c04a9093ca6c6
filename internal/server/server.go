package server

import (
	"context"
	"net/http"
	"time"

	"pdfnamer/internal/domain"
	"pdfnamer/internal/export"
	"pdfnamer/internal/filename"
	"pdfnamer/internal/logger"
	"pdfnamer/internal/records"
	"pdfnamer/internal/templater"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxRecordSize = 1 << 20

type Server struct {
	log        logger.Logger
	builder    *filename.Builder
	renderer   export.Renderer
	httpServer *http.Server
}

func New(addr string, builder *filename.Builder, renderer export.Renderer, log logger.Logger) *Server {
	s := &Server{
		log:      log,
		builder:  builder,
		renderer: renderer,
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))

	r.GET("/health/live", s.live)

	v1 := r.Group("/api/v1")
	v1.POST("/filename", s.filename)
	v1.POST("/export", s.export)

	return r
}

// Start blocks until the server is shut down.
func (s *Server) Start() error {
	s.log.Info().Msgf("listening on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "http server")
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// filename reports the name a document would get. The pattern query parameter
// overrides the configured pattern.
func (s *Server) filename(c *gin.Context) {
	record, ok := bindRecord(c)
	if !ok {
		return
	}

	pattern := c.Query("pattern")
	if pattern == "" {
		pattern = s.builder.Pattern(record.DocType)
	}

	toks := s.builder.Tokens(c.Request.Context(), record)
	name := s.builder.Format(pattern, toks)

	c.JSON(http.StatusOK, gin.H{
		"filename": name,
		"default":  name == "",
		"fallback": export.DefaultFileName(record),
		"pattern":  pattern,
		"tokens":   toks.Map(),
		"unknown":  templater.Unknown(pattern, toks),
	})
}

func (s *Server) export(c *gin.Context) {
	record, ok := bindRecord(c)
	if !ok {
		return
	}

	exp := export.NewPDF(s.builder, s.renderer)
	if err := exp.AddDocument(c.Request.Context(), record); err != nil {
		s.log.Error().Err(err).Str("doctype", record.DocType).Str("code", record.Code).Msg("error rendering document")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render document"})
		return
	}

	if err := exp.Show(c.Writer); err != nil {
		s.log.Error().Err(err).Msg("error writing document")
	}
}

// bindRecord decodes the body the same way records.Load does, so scalar fields
// such as number accept both 12 and "12".
func bindRecord(c *gin.Context) (domain.Record, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRecordSize)

	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.Record{}, false
	}

	record, err := records.Parse(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.Record{}, false
	}

	return record, true
}

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		c.Next()

		log.Debug().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("http request")
	}
}
