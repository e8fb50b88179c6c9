package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaeckelK/bookkeeping/internal/core/services"
	"github.com/HaeckelK/bookkeeping/internal/handlers"
	"github.com/HaeckelK/bookkeeping/internal/platform/config"
)

func newTestServer() (*gin.Engine, *services.Container) {
	gin.SetMode(gin.TestMode)
	container := services.NewContainer(2021)
	router := gin.New()
	handlers.RegisterRoutes(router, &config.Config{CalendarYear: 2021}, container)
	return router, container
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthRoute(t *testing.T) {
	router, _ := newTestServer()

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestPostJournal(t *testing.T) {
	router, container := newTestServer()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/journals", gin.H{
		"jnlType":         "gnl",
		"transactionDate": "2021-01-15T00:00:00Z",
		"lines": []gin.H{
			{"nominal": "sundry_expenses", "amount": 123, "transactionDate": "2021-01-15T00:00:00Z"},
			{"nominal": "bank_contra", "amount": -123, "transactionDate": "2021-01-15T00:00:00Z"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		TransactionIDs []uint64 `json:"transactionIDs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.TransactionIDs, 2)
	assert.Equal(t, int64(0), container.General.Transactions.Balance())
}

func TestPostJournalUnbalancedRejected(t *testing.T) {
	router, container := newTestServer()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/journals", gin.H{
		"jnlType":         "gnl",
		"transactionDate": "2021-01-15T00:00:00Z",
		"lines": []gin.H{
			{"nominal": "sundry_expenses", "amount": 123, "transactionDate": "2021-01-15T00:00:00Z"},
			{"nominal": "bank_contra", "amount": -100, "transactionDate": "2021-01-15T00:00:00Z"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, container.General.Transactions.ListTransactions())
}

func TestPostJournalBadNominalRejected(t *testing.T) {
	router, _ := newTestServer()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/journals", gin.H{
		"jnlType":         "gnl",
		"transactionDate": "2021-01-15T00:00:00Z",
		"lines": []gin.H{
			{"nominal": "Not A Nominal!", "amount": 123, "transactionDate": "2021-01-15T00:00:00Z"},
			{"nominal": "bank_contra", "amount": -123, "transactionDate": "2021-01-15T00:00:00Z"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateNominalDuplicateConflict(t *testing.T) {
	router, _ := newTestServer()

	body := gin.H{"name": "sundry_expenses", "statement": "pl", "heading": "expenses"}
	rec := doJSON(t, router, http.MethodPost, "/api/v1/nominals", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/nominals", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddPurchaseInvoicesAndBalance(t *testing.T) {
	router, _ := newTestServer()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/ledgers/purchases/invoices", gin.H{
		"invoices": []gin.H{
			{
				"creditor": "acme",
				"lines": []gin.H{
					{"nominal": "materials", "amount": 5000, "transactionDate": "2021-01-04T00:00:00Z"},
				},
			},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/ledgers/purchases/balance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var balance struct {
		Balance int64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &balance))
	assert.Equal(t, int64(-5000), balance.Balance)
}

func TestPeriodCloseEndToEnd(t *testing.T) {
	router, _ := newTestServer()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/ledgers/purchases/invoices", gin.H{
		"invoices": []gin.H{
			{
				"creditor": "acme",
				"lines": []gin.H{
					{"nominal": "materials", "amount": 5000, "transactionDate": "2021-01-04T00:00:00Z"},
				},
			},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/period-close", nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/period-close/reconcile", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReconcileConflictAfterDirectControlPosting(t *testing.T) {
	router, _ := newTestServer()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/journals", gin.H{
		"jnlType":         "gnl",
		"transactionDate": "2021-01-15T00:00:00Z",
		"lines": []gin.H{
			{"nominal": "purchase_ledger_control_account", "amount": 100, "transactionDate": "2021-01-15T00:00:00Z"},
			{"nominal": "suspense", "amount": -100, "transactionDate": "2021-01-15T00:00:00Z"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/period-close/reconcile", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "mismatches")
}

func TestTrialBalanceReport(t *testing.T) {
	router, _ := newTestServer()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/reports/trial-balance", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Rows []struct {
			Nominal string `json:"nominal"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// Seeded control accounts are always present.
	require.NotEmpty(t, resp.Rows)
	assert.Equal(t, "purchase_ledger_control_account", resp.Rows[0].Nominal)
}

func TestCreatePrepaymentPostsJournals(t *testing.T) {
	router, container := newTestServer()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/prepayments", gin.H{
		"amount":      700,
		"nominal":     "insurance",
		"periodStart": 1,
		"periods":     3,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Four journals of two lines each, netting to zero.
	assert.Len(t, container.General.Transactions.ListTransactions(), 8)
	assert.Equal(t, int64(0), container.General.Transactions.Balance())
	assert.Equal(t, int64(0), container.General.Transactions.Balances()["prepayments"])
}
