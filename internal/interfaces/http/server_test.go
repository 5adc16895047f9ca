package httpinterface_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/odex-network/odex-daemon/internal/core/application"
	"github.com/odex-network/odex-daemon/internal/core/domain"
	odexclock "github.com/odex-network/odex-daemon/internal/infrastructure/clock"
	ledgerinmemory "github.com/odex-network/odex-daemon/internal/infrastructure/ledger/inmemory"
	pubsubinmemory "github.com/odex-network/odex-daemon/internal/infrastructure/pubsub/inmemory"
	dbbadger "github.com/odex-network/odex-daemon/internal/infrastructure/storage/db/badger"
	httpinterface "github.com/odex-network/odex-daemon/internal/interfaces/http"
)

func TestOptionLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// Fund the buyer through the ledger endpoints.
	status, _ := doRequest(t, router, http.MethodPost, "/v1/ledger/mint", map[string]interface{}{
		"account": "alice", "amount": 1000, "token": "payment",
	})
	require.Equal(t, http.StatusNoContent, status)
	status, _ = doRequest(t, router, http.MethodPost, "/v1/ledger/approve", map[string]interface{}{
		"owner": "alice", "amount": 1000, "token": "payment",
	})
	require.Equal(t, http.StatusNoContent, status)

	status, body := doRequest(t, router, http.MethodPost, "/v1/options", map[string]interface{}{
		"buyer": "alice", "kind": "call", "duration": 86400, "amount": 100,
	})
	require.Equal(t, http.StatusCreated, status)

	var info application.OptionInfo
	require.NoError(t, json.Unmarshal(body, &info))
	require.Equal(t, uint64(0), info.Id)
	require.Equal(t, uint64(100), info.StrikeAmount)
	require.Equal(t, uint64(10), info.Premium)
	require.Equal(t, "active", info.Status)

	status, body = doRequest(t, router, http.MethodGet, "/v1/pool/balance", nil)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"balance": 9}`, string(body))

	status, body = doRequest(t, router, http.MethodPost,
		fmt.Sprintf("/v1/options/%d/exercise", info.Id), nil)
	require.Equal(t, http.StatusOK, status)

	status, body = doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/v1/options/%d", info.Id), nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &info))
	require.Equal(t, "exercised", info.Status)

	status, body = doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/v1/options/%d/events", info.Id), nil)
	require.Equal(t, http.StatusOK, status)
	var events struct {
		Events []application.EventInfo `json:"events"`
	}
	require.NoError(t, json.Unmarshal(body, &events))
	require.Len(t, events.Events, 3)
}

func TestErrorStatusMapping(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           map[string]interface{}
		expectedStatus int
	}{
		{
			name:           "option_not_found",
			method:         http.MethodGet,
			path:           "/v1/options/42",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "invalid_duration",
			method: http.MethodPost,
			path:   "/v1/options",
			body: map[string]interface{}{
				"buyer": "alice", "duration": 1, "amount": 100,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "invalid_kind",
			method: http.MethodPost,
			path:   "/v1/options",
			body: map[string]interface{}{
				"buyer": "alice", "kind": "straddle", "duration": 86400, "amount": 100,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "unfunded_buyer",
			method: http.MethodPost,
			path:   "/v1/options",
			body: map[string]interface{}{
				"buyer": "alice", "duration": 86400, "amount": 100,
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "invalid_option_id",
			method:         http.MethodGet,
			path:           "/v1/options/notanumber",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid_quote_token",
			method:         http.MethodGet,
			path:           "/v1/pool/quote?amount=10&token=bogus",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doRequest(t, router, tt.method, tt.path, tt.body)
			require.Equal(t, tt.expectedStatus, status)
		})
	}
}

func TestPoolQuoteOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	status, body := doRequest(t, router, http.MethodGet,
		"/v1/pool/quote?amount=1000&token=payment", nil)
	require.Equal(t, http.StatusOK, status)

	var preview application.SwapPreview
	require.NoError(t, json.Unmarshal(body, &preview))
	require.Equal(t, uint64(665), preview.AmountOut)
	require.Equal(t, uint64(3), preview.FeeAmount)
}

func newTestRouter(t *testing.T) http.Handler {
	ctx := context.Background()

	db, err := dbbadger.NewDbManager("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	poolRepo := dbbadger.NewPoolRepositoryImpl(db)
	ledger := ledgerinmemory.NewLedger()
	pubSub := pubsubinmemory.NewService()
	t.Cleanup(pubSub.Close)

	pool, err := domain.NewLiquidityPool(2000, 2000, 30, time.Now().Unix())
	require.NoError(t, err)
	require.NoError(t, poolRepo.AddPool(ctx, pool))
	require.NoError(t, ledger.Mint(ctx, application.VenueAccount, 2000, domain.PoolToken))
	require.NoError(t, ledger.Mint(ctx, application.VenueAccount, 2000, domain.PaymentToken))

	optionSvc, poolSvc := application.NewServices(application.ServiceOpts{
		OptionRepository: dbbadger.NewOptionRepositoryImpl(db),
		PoolRepository:   poolRepo,
		EventRepository:  dbbadger.NewEventRepositoryImpl(db),
		Ledger:           ledger,
		PubSub:           pubSub,
		Clock:            odexclock.NewSystemClock(),
		MinDuration:      600,
		MaxDuration:      31536000,
		VolatilityBps:    1000,
	})

	return httpinterface.NewServer(optionSvc, poolSvc, ledger).Router()
}

func doRequest(
	t *testing.T, router http.Handler, method, path string,
	body map[string]interface{},
) (int, []byte) {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(encoded)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}
