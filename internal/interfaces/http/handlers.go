package httpinterface

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/odex-network/odex-daemon/internal/core/application"
	"github.com/odex-network/odex-daemon/internal/core/domain"
)

type createATMRequest struct {
	Buyer         string `json:"buyer" binding:"required"`
	Kind          string `json:"kind"`
	Duration      int64  `json:"duration" binding:"required"`
	Amount        uint64 `json:"amount" binding:"required"`
	MinPremiumOut uint64 `json:"min_premium_out"`
}

func (s *Server) handleCreateATM(c *gin.Context) {
	var req createATMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind, err := parseOptionKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := s.optionSvc.CreateATM(
		c.Request.Context(), req.Buyer, kind,
		req.Duration, req.Amount, req.MinPremiumOut,
	)
	if err != nil {
		abortWithError(c, err)
		return
	}
	optionsCreated.Inc()
	c.JSON(http.StatusCreated, info)
}

func (s *Server) handleExercise(c *gin.Context) {
	id, ok := optionId(c)
	if !ok {
		return
	}
	if err := s.optionSvc.Exercise(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	optionsExercised.Inc()

	info, err := s.optionSvc.GetOptionInfo(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (s *Server) handleCancel(c *gin.Context) {
	id, ok := optionId(c)
	if !ok {
		return
	}
	if err := s.optionSvc.Cancel(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleGetOption(c *gin.Context) {
	id, ok := optionId(c)
	if !ok {
		return
	}
	info, err := s.optionSvc.GetOptionInfo(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (s *Server) handleListOptions(c *gin.Context) {
	infos, err := s.optionSvc.ListOptions(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": infos})
}

func (s *Server) handleOptionEvents(c *gin.Context) {
	id, ok := optionId(c)
	if !ok {
		return
	}
	events, err := s.poolSvc.ListEventsForOption(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

type poolMovementRequest struct {
	Account string `json:"account" binding:"required"`
	Amount  uint64 `json:"amount" binding:"required"`
}

func (s *Server) handleDeposit(c *gin.Context) {
	var req poolMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.poolSvc.Deposit(c.Request.Context(), req.Account, req.Amount); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleWithdraw(c *gin.Context) {
	var req poolMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.poolSvc.Withdraw(c.Request.Context(), req.Account, req.Amount); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handlePoolInfo(c *gin.Context) {
	info, err := s.poolSvc.GetPoolInfo(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (s *Server) handlePoolBalance(c *gin.Context) {
	balance, err := s.poolSvc.GetPoolTokenBalance(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

func (s *Server) handlePoolQuote(c *gin.Context) {
	amount, err := strconv.ParseUint(c.Query("amount"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	token, err := parseTokenKind(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	preview, err := s.poolSvc.PreviewSwap(c.Request.Context(), amount, token)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

func (s *Server) handleListEvents(c *gin.Context) {
	events, err := s.poolSvc.ListEvents(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

type mintRequest struct {
	Account string `json:"account" binding:"required"`
	Amount  uint64 `json:"amount" binding:"required"`
	Token   string `json:"token" binding:"required"`
}

func (s *Server) handleMint(c *gin.Context) {
	var req mintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := parseTokenKind(req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.ledger.Mint(c.Request.Context(), req.Account, req.Amount, token); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type approveRequest struct {
	Owner  string `json:"owner" binding:"required"`
	Amount uint64 `json:"amount" binding:"required"`
	Token  string `json:"token" binding:"required"`
}

func (s *Server) handleApprove(c *gin.Context) {
	var req approveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := parseTokenKind(req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.ledger.Approve(
		c.Request.Context(), req.Owner, application.EngineAccount, req.Amount, token,
	); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleLedgerBalance(c *gin.Context) {
	account := c.Query("account")
	token, err := parseTokenKind(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	balance, err := s.ledger.BalanceOf(c.Request.Context(), account, token)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account, "token": token.String(), "balance": balance})
}

func optionId(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid option id"})
		return 0, false
	}
	return id, true
}

func parseOptionKind(kind string) (domain.OptionKind, error) {
	switch kind {
	case "", "call":
		return domain.OptionKindCall, nil
	case "put":
		return domain.OptionKindPut, nil
	default:
		return 0, domain.ErrInvalidOptionKind
	}
}

func parseTokenKind(token string) (domain.TokenKind, error) {
	switch token {
	case "pool":
		return domain.PoolToken, nil
	case "payment":
		return domain.PaymentToken, nil
	default:
		return 0, errInvalidToken
	}
}
