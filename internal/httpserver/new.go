package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"household-orders/internal/order"
	"household-orders/internal/pages"
	"household-orders/pkg/datemath"
	"household-orders/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	rateLimitPerMin int

	// Pages
	title string

	// Order domain
	orderUC  order.UseCase
	dateMath *datemath.Parser

	// Informational pages
	content pages.Content
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	Title string

	// Order domain
	OrderUseCase order.UseCase
	DateMath     *datemath.Parser

	// Informational pages
	Content pages.Content
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		title:           cfg.Title,
		orderUC:         cfg.OrderUseCase,
		dateMath:        cfg.DateMath,
		content:         cfg.Content,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.orderUC == nil {
		return errors.New("order use case is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
