// Package httpinterface exposes the engine and pool services over HTTP.
package httpinterface

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/odex-network/odex-daemon/internal/core/application"
	"github.com/odex-network/odex-daemon/internal/core/ports"
)

// Server wires the application services to the HTTP routes.
type Server struct {
	optionSvc *application.OptionService
	poolSvc   *application.PoolService
	ledger    ports.FungibleLedger
}

// NewServer returns a Server exposing the given services.
func NewServer(
	optionSvc *application.OptionService,
	poolSvc *application.PoolService,
	ledger ports.FungibleLedger,
) *Server {
	return &Server{
		optionSvc: optionSvc,
		poolSvc:   poolSvc,
		ledger:    ledger,
	}
}

// Router returns the HTTP handler of the daemon.
func (s *Server) Router() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")

	options := v1.Group("/options")
	options.POST("", s.handleCreateATM)
	options.GET("", s.handleListOptions)
	options.GET("/:id", s.handleGetOption)
	options.GET("/:id/events", s.handleOptionEvents)
	options.POST("/:id/exercise", s.handleExercise)
	options.POST("/:id/cancel", s.handleCancel)

	pool := v1.Group("/pool")
	pool.GET("", s.handlePoolInfo)
	pool.GET("/balance", s.handlePoolBalance)
	pool.GET("/quote", s.handlePoolQuote)
	pool.POST("/deposits", s.handleDeposit)
	pool.POST("/withdrawals", s.handleWithdraw)

	v1.GET("/events", s.handleListEvents)

	ledger := v1.Group("/ledger")
	ledger.POST("/mint", s.handleMint)
	ledger.POST("/approve", s.handleApprove)
	ledger.GET("/balance", s.handleLedgerBalance)

	return r
}
