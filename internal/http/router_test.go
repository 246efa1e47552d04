package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Vicky-01/billing-software/internal/catalog"
	"github.com/Mr-Vicky-01/billing-software/internal/events"
	posHTTP "github.com/Mr-Vicky-01/billing-software/internal/http"
	catalogHandler "github.com/Mr-Vicky-01/billing-software/internal/http/catalog"
	eventsHandler "github.com/Mr-Vicky-01/billing-software/internal/http/events"
	ledgerHandler "github.com/Mr-Vicky-01/billing-software/internal/http/ledger"
	reportHandler "github.com/Mr-Vicky-01/billing-software/internal/http/report"
	settingsHandler "github.com/Mr-Vicky-01/billing-software/internal/http/settings"
	"github.com/Mr-Vicky-01/billing-software/internal/ledger"
	"github.com/Mr-Vicky-01/billing-software/internal/memstore"
	"github.com/Mr-Vicky-01/billing-software/internal/report"
	"github.com/Mr-Vicky-01/billing-software/internal/settings"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := memstore.New()

	bus := events.NewBus(slog.Default())
	t.Cleanup(func() { bus.Close() })

	router := posHTTP.New(
		catalogHandler.NewHandler(catalog.NewService(store, bus)),
		ledgerHandler.NewHandler(ledger.NewService(store, bus), "Test Shop"),
		reportHandler.NewHandler(ledger.NewService(store, bus)),
		settingsHandler.NewHandler(settings.NewService(store, bus)),
		eventsHandler.NewHandler(bus),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func TestMenuItems(t *testing.T) {
	srv := newServer(t)

	// First list observes an empty store and seeds the default catalog.
	resp := doJSON(t, http.MethodGet, srv.URL+"/menu-items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items := decode[[]catalog.Item](t, resp)
	require.Len(t, items, 8)
	assert.Equal(t, "item_1", items[0].ID)

	// Seeding happens once, not on every call.
	resp = doJSON(t, http.MethodGet, srv.URL+"/menu-items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]catalog.Item](t, resp), 8)

	resp = doJSON(t, http.MethodPost, srv.URL+"/menu-items", map[string]any{
		"name":  "Football",
		"price": 1299,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decode[catalog.Item](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Football", created.Name)
	assert.Equal(t, int64(1299), created.Price)

	resp = doJSON(t, http.MethodPost, srv.URL+"/menu-items", map[string]any{"price": 10})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPut, srv.URL+"/menu-items", map[string]any{
		"id":    created.ID,
		"price": 1499,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decode[catalog.Item](t, resp)
	assert.Equal(t, int64(1499), updated.Price)
	assert.Equal(t, "Football", updated.Name)

	resp = doJSON(t, http.MethodPut, srv.URL+"/menu-items", map[string]any{"price": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPut, srv.URL+"/menu-items", map[string]any{
		"id":    "missing",
		"price": 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodDelete, srv.URL+"/menu-items?id="+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[map[string]bool](t, resp)["success"])

	resp = doJSON(t, http.MethodDelete, srv.URL+"/menu-items?id="+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodDelete, srv.URL+"/menu-items", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func marchSale() ledger.Transaction {
	return ledger.Transaction{
		ID: "tx_march",
		Items: []ledger.Line{
			{Item: catalog.Item{ID: "item_1", Name: "Football", Price: 1299}, Quantity: 2},
		},
		Subtotal:  2598,
		Total:     2858,
		Date:      "2024-03-05",
		Timestamp: time.Date(2024, time.March, 5, 12, 0, 0, 0, time.Local).UnixMilli(),
	}
}

func TestTransactions(t *testing.T) {
	srv := newServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/transactions", marchSale())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	stored := decode[ledger.Transaction](t, resp)
	assert.Equal(t, "tx_march", stored.ID)

	// The ledger is append-only with unique ids.
	resp = doJSON(t, http.MethodPost, srv.URL+"/transactions", marchSale())
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	april := marchSale()
	april.ID = "tx_april"
	april.Total = 5000
	april.Timestamp = time.Date(2024, time.April, 2, 12, 0, 0, 0, time.Local).UnixMilli()

	resp = doJSON(t, http.MethodPost, srv.URL+"/transactions", april)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/transactions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	all := decode[[]ledger.Transaction](t, resp)
	require.Len(t, all, 2)
	assert.Equal(t, "tx_april", all[0].ID) // newest first

	// Month is zero-based: 2 is March.
	resp = doJSON(t, http.MethodGet, srv.URL+"/transactions?year=2024&month=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	march := decode[[]ledger.Transaction](t, resp)
	require.Len(t, march, 1)
	assert.Equal(t, "tx_march", march[0].ID)

	resp = doJSON(t, http.MethodGet, srv.URL+"/transactions?year=2024&month=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestTransactionReceipt(t *testing.T) {
	srv := newServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/transactions", marchSale())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/transactions/tx_march/receipt", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	pdf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))

	resp = doJSON(t, http.MethodGet, srv.URL+"/transactions/missing/receipt", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestReports(t *testing.T) {
	srv := newServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/transactions", marchSale())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/reports?year=2024&month=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rep := decode[report.MonthlyReport](t, resp)
	assert.Equal(t, int64(2858), rep.TotalSales)
	assert.Equal(t, 1, rep.TransactionCount)
	require.Len(t, rep.TopItems, 1)
	assert.Equal(t, "Football", rep.TopItems[0].Name)

	resp = doJSON(t, http.MethodGet, srv.URL+"/reports", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reports := decode[[]report.MonthlyReport](t, resp)
	require.Len(t, reports, 1)
	assert.Equal(t, 2024, reports[0].Year)
	assert.Equal(t, 2, reports[0].Month)
}

func TestSettings(t *testing.T) {
	srv := newServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/settings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Cache-Control"), "no-store")
	assert.Empty(t, decode[settings.Settings](t, resp).QRCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/settings", settings.Settings{QRCode: "qr-payload"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[map[string]bool](t, resp)["success"])

	resp = doJSON(t, http.MethodGet, srv.URL+"/settings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "qr-payload", decode[settings.Settings](t, resp).QRCode)
}
