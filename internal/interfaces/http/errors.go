package httpinterface

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/odex-network/odex-daemon/internal/core/application"
	"github.com/odex-network/odex-daemon/internal/core/domain"
	"github.com/odex-network/odex-daemon/internal/core/ports"
	"github.com/odex-network/odex-daemon/pkg/amm"
)

var errInvalidToken = errors.New("token must be either pool or payment")

// abortWithError maps the engine error taxonomy onto HTTP status codes:
// unknown entities are 404, malformed requests 400, rejected business
// operations 422, failed ledger legs 409 and configuration faults 500.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrOptionNotFound),
		errors.Is(err, domain.ErrPoolNotFound):
		status = http.StatusNotFound
	case errors.Is(err, application.ErrInvalidDuration),
		errors.Is(err, domain.ErrAmountTooLow),
		errors.Is(err, domain.ErrInvalidOptionKind),
		errors.Is(err, amm.ErrInvalidReserves),
		errors.Is(err, amm.ErrInvalidFee),
		errors.Is(err, errInvalidToken):
		status = http.StatusBadRequest
	case errors.Is(err, application.ErrSlippageExceeded),
		errors.Is(err, domain.ErrInsufficientLiquidity),
		errors.Is(err, domain.ErrOptionMustBeActive),
		errors.Is(err, domain.ErrOptionMustBeCreated),
		errors.Is(err, domain.ErrOptionExpired),
		errors.Is(err, ports.ErrInsufficientAllowance):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, application.ErrTransferFailed),
		errors.Is(err, ports.ErrInsufficientFunds):
		status = http.StatusConflict
	case errors.Is(err, application.ErrLedgerMisconfigured),
		errors.Is(err, ports.ErrUnknownAccount):
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
