// Package server is a local sandbox speaking the Xendit invoice endpoints,
// so the client and CLI can be exercised without the real gateway.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mrfansi/xendit-go/internal/logger"
	"github.com/mrfansi/xendit-go/internal/model"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// Sandbox defaults
const (
	DefaultUserID         = "sandbox_user"
	DefaultMerchantName   = "Xendit Sandbox"
	DefaultCheckoutURL    = "https://checkout-staging.xendit.co/web"
	DefaultExpirySchedule = "@every 1m"
)

// Config holds server configuration
type Config struct {
	Address        string
	SecretKey      string
	UserID         string
	MerchantName   string
	CheckoutURL    string
	ExpirySchedule string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	Debug          bool
}

// Server represents the sandbox HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	store    *Store
	cron     *cron.Cron
	log      *zap.Logger
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

// Option configures the server
type Option func(*Server)

// WithLogger sets the request and sweep logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		s.log = logger.OrNop(l)
	}
}

// WithClock replaces time.Now in the store
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.store.now = now
	}
}

// NewServer creates a new sandbox server
func NewServer(config *Config, opts ...Option) (*Server, error) {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.UserID == "" {
		config.UserID = DefaultUserID
	}
	if config.MerchantName == "" {
		config.MerchantName = DefaultMerchantName
	}
	if config.CheckoutURL == "" {
		config.CheckoutURL = DefaultCheckoutURL
	}
	if config.ExpirySchedule == "" {
		config.ExpirySchedule = DefaultExpirySchedule
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	s := &Server{
		config:   config,
		router:   gin.New(),
		store:    NewStore(config.MerchantName, config.CheckoutURL, nil),
		log:      zap.NewNop(),
		registry: registry,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sandbox_http_requests_total",
				Help: "The total number of sandbox requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
	}
	registry.MustRegister(s.requests)
	for _, opt := range opts {
		opt(s)
	}

	s.cron = cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	if _, err := s.cron.AddFunc(config.ExpirySchedule, s.sweep); err != nil {
		return nil, err
	}

	s.router.Use(gin.Recovery())
	s.router.Use(s.requestLogger())
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	invoices := s.router.Group("/v2/invoices")
	invoices.Use(s.requireAuth())
	{
		invoices.GET("", s.handleListInvoices)
		invoices.POST("", s.handleCreateInvoice)
		invoices.GET("/:id", s.handleGetInvoice)
		invoices.POST("/:id/expire", s.handleExpireInvoice)
	}
}

// Run starts the expiry sweep and serves until ctx is done
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.cron.Start()
	defer s.cron.Stop()
	s.log.Info("sandbox listening",
		zap.String("addr", s.config.Address),
		zap.String("expiry_schedule", s.config.ExpirySchedule),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

// Store returns the invoice store backing the server
func (s *Server) Store() *Store {
	return s.store
}

func (s *Server) sweep() {
	if n := s.store.ExpireOverdue(); n > 0 {
		s.log.Info("expired overdue invoices", zap.Int("count", n))
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		Time:     time.Now().UTC().Format(time.RFC3339),
		Invoices: s.store.Len(),
	})
}

func (s *Server) handleListInvoices(c *gin.Context) {
	params, err := model.ParseInvoiceParamsQuery(c.Request.URL.Query())
	if err != nil {
		abortWithError(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
		return
	}

	invoices := s.store.List(params)
	out := make([]map[string]any, len(invoices))
	for i, inv := range invoices {
		out[i] = inv.ToMap()
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateInvoice(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, ErrCodeValidation, "failed to read request body")
		return
	}
	if len(body) == 0 {
		abortWithError(c, http.StatusBadRequest, ErrCodeValidation, "empty request body")
		return
	}

	m, err := model.DecodeJSON(body)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, ErrCodeValidation, "request body must be a JSON object")
		return
	}
	data, err := model.InvoiceDataFromMap(m)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
		return
	}

	userID := c.GetHeader("for-user-id")
	if userID == "" {
		userID = s.config.UserID
	}
	inv, created, err := s.store.Create(data, userID, c.GetHeader("Idempotency-key"))
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			abortWithError(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, ErrCodeServer, err.Error())
		return
	}
	if !created {
		s.log.Debug("idempotent replay", zap.String("invoice_id", inv.ID))
	}
	c.JSON(http.StatusOK, inv.ToMap())
}

func (s *Server) handleGetInvoice(c *gin.Context) {
	inv, err := s.store.Get(c.Param("id"))
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv.ToMap())
}

func (s *Server) handleExpireInvoice(c *gin.Context) {
	inv, err := s.store.Expire(c.Param("id"))
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv.ToMap())
}

func (s *Server) storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvoiceNotFound):
		abortWithError(c, http.StatusNotFound, ErrCodeNotFound, "Could not find invoice")
	case errors.Is(err, ErrNotPending):
		abortWithError(c, http.StatusBadRequest, ErrCodeNotPending, "Only PENDING invoices can be expired")
	default:
		abortWithError(c, http.StatusInternalServerError, ErrCodeServer, err.Error())
	}
}
