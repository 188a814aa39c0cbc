package httpapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/bnema/tradebot/internal/application"
	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

type SessionHealth interface {
	Connected() bool
}

type ProposalCreator interface {
	CreateForward(ctx context.Context, cmd application.CreateProposalCommand) (domain.SendResult, error)
	CreateReverse(ctx context.Context, cmd application.CreateProposalCommand) (domain.SendResult, error)
}

type InventoryReader interface {
	Own(ctx context.Context) (domain.Inventory, error)
	ByAccount(ctx context.Context, rawAccountID string) (domain.Inventory, error)
}

type ProposalReader interface {
	Status(ctx context.Context, id domain.ProposalID) (application.ProposalStatus, error)
	List(ctx context.Context, filter domain.Status) ([]domain.TradeProposal, error)
}

type ProposalConfirmer interface {
	Confirm(ctx context.Context, id domain.ProposalID) error
}

// Services is everything the control plane delegates to.
type Services struct {
	Session       SessionHealth
	Proposals     ProposalCreator
	Inventory     InventoryReader
	Queries       ProposalReader
	Confirmations ProposalConfirmer
}

type Server struct {
	router   *gin.Engine
	services Services
	gatherer prometheus.Gatherer
	clock    ports.Clock
	logger   *zap.Logger
}

func NewServer(services Services, gatherer prometheus.Gatherer, clock ports.Clock, logger *zap.Logger) *Server {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	registerValidations()

	router := gin.New()
	router.Use(requestID())
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/health", "/metrics"},
	}))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	s := &Server{
		router:   router,
		services: services,
		gatherer: gatherer,
		clock:    clock,
		logger:   logger,
	}
	s.registerRoutes()
	return s
}

// Handler returns the router for use in an http.Server or httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	api := s.router.Group("/api")
	{
		api.GET("/inventory", s.ownInventory)
		api.GET("/inventory/:accountId", s.accountInventory)

		trade := api.Group("/trade")
		{
			trade.POST("/create", s.createForward)
			trade.POST("/reverse", s.createReverse)
			trade.GET("/status/:proposalId", s.proposalStatus)
			trade.POST("/confirm/:proposalId", s.confirmProposal)
			trade.GET("/proposals", s.listProposals)
		}
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

var registerOnce sync.Once

func registerValidations() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("steamid64", func(fl validator.FieldLevel) bool {
				_, err := domain.ParseSteamID(fl.Field().String())
				return err == nil
			})
		}
	})
}
