package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"OracleScan/internal/domain/models"
	"OracleScan/internal/service/coingecko"
	"OracleScan/internal/usecase"
	"OracleScan/pkg/config"
	applogger "OracleScan/pkg/logger"

	"github.com/labstack/echo/v4"
)

// fakeProvider serves the two upstream endpoints the scanner depends on.
type fakeProvider struct {
	marketsStatus int
	failChartFor  string
}

func (p *fakeProvider) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/coins/markets", func(w http.ResponseWriter, r *http.Request) {
		if p.marketsStatus != 0 {
			http.Error(w, "upstream unhappy", p.marketsStatus)
			return
		}
		ids := r.URL.Query().Get("ids")
		rows := []string{}
		if strings.Contains(ids, "bitcoin") {
			rows = append(rows, `{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":50000,"market_cap":1e12,"total_volume":3e10,"price_change_percentage_24h":2.5}`)
		}
		if strings.Contains(ids, "ethereum") {
			rows = append(rows, `{"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":3000,"market_cap":4e11,"total_volume":1e10,"price_change_percentage_24h":-1.2}`)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[" + strings.Join(rows, ",") + "]"))
	})
	mux.HandleFunc("/coins/", func(w http.ResponseWriter, r *http.Request) {
		if p.failChartFor != "" && strings.Contains(r.URL.Path, p.failChartFor) {
			http.Error(w, "chart unavailable", http.StatusInternalServerError)
			return
		}
		var b strings.Builder
		b.WriteString(`{"prices":[`)
		for i := 0; i < 48; i++ {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString("[0,")
			b.WriteString(jsonNum(100 + float64(i)))
			b.WriteString("]")
		}
		b.WriteString(`],"total_volumes":[`)
		for i := 0; i < 48; i++ {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString("[0,10]")
		}
		b.WriteString(`]}`)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(b.String()))
	})
	return mux
}

func jsonNum(v float64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func newTestHandler(t *testing.T, providerURL string) *ScanHandler {
	t.Helper()
	cfg := &config.Config{}
	cfg.Provider.BaseURL = providerURL
	cfg.Provider.UserAgent = "oracle-vision-v3"
	cfg.Provider.VsCurrency = "usd"
	cfg.Provider.ChartDays = 2
	cfg.Provider.Timeout = 2 * time.Second
	cfg.Scan.DefaultSymbols = "btc,eth,sol"
	cfg.Scan.MaxSymbols = 12

	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	scanner := usecase.NewScanner(coingecko.New(cfg), nil, cfg.Scan.MaxSymbols)
	scanner.SetLogger(l)
	return NewScanHandler(l, scanner, cfg)
}

func doScan(t *testing.T, h *ScanHandler, query string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/scan"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Scan(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func TestScanEndpointSuccess(t *testing.T) {
	srv := httptest.NewServer((&fakeProvider{}).handler())
	defer srv.Close()

	rec := doScan(t, newTestHandler(t, srv.URL), "?symbols=btc,eth")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderCacheControl); got != "no-store" {
		t.Errorf("cache-control = %q", got)
	}

	var resp models.ScanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.OK {
		t.Fatal("expected ok envelope")
	}
	if len(resp.Data) != 2 {
		t.Fatalf("got %d rows, want 2", len(resp.Data))
	}
	for _, row := range resp.Data {
		if row.RSI14 != nil && (*row.RSI14 < 0 || *row.RSI14 > 100) {
			t.Errorf("%s: rsi %.2f out of range", row.Symbol, *row.RSI14)
		}
		if row.Score < 0 || row.Score > 100 {
			t.Errorf("%s: score %d out of range", row.Symbol, row.Score)
		}
	}
	if resp.TS == 0 {
		t.Error("missing ts")
	}
}

func TestScanEndpointDefaultSymbols(t *testing.T) {
	srv := httptest.NewServer((&fakeProvider{}).handler())
	defer srv.Close()

	h := newTestHandler(t, srv.URL)
	h.defaultSymbols = "btc,doge"

	rec := doScan(t, h, "")
	var resp models.ScanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Symbols) != 2 || resp.Symbols[0] != "btc" || resp.Symbols[1] != "doge" {
		t.Errorf("symbols = %v, want configured default over the request default", resp.Symbols)
	}
}

func TestScanEndpointBuiltinDefault(t *testing.T) {
	srv := httptest.NewServer((&fakeProvider{}).handler())
	defer srv.Close()

	h := newTestHandler(t, srv.URL)
	h.defaultSymbols = ""

	rec := doScan(t, h, "")
	var resp models.ScanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"btc", "eth", "sol"}
	if len(resp.Symbols) != len(want) {
		t.Fatalf("symbols = %v, want request default %v", resp.Symbols, want)
	}
	for i, s := range want {
		if resp.Symbols[i] != s {
			t.Errorf("symbols[%d] = %q, want %q", i, resp.Symbols[i], s)
		}
	}
}

func TestScanEndpointUnmappedSymbol(t *testing.T) {
	srv := httptest.NewServer((&fakeProvider{}).handler())
	defer srv.Close()

	rec := doScan(t, newTestHandler(t, srv.URL), "?symbols=btc,wat")
	var resp models.ScanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Symbol != "btc" {
		t.Errorf("data = %+v, want only btc", resp.Data)
	}
}

func TestScanEndpointUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer((&fakeProvider{marketsStatus: http.StatusBadGateway}).handler())
	defer srv.Close()

	rec := doScan(t, newTestHandler(t, srv.URL), "?symbols=btc")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	var resp models.ScanErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK {
		t.Error("expected ok=false")
	}
	if resp.Error != "scan failed" || resp.Detail == "" {
		t.Errorf("envelope = %+v", resp)
	}
}

func TestScanEndpointPartialChartFailure(t *testing.T) {
	srv := httptest.NewServer((&fakeProvider{failChartFor: "ethereum"}).handler())
	defer srv.Close()

	rec := doScan(t, newTestHandler(t, srv.URL), "?symbols=btc,eth")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp models.ScanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("got %d rows, want 2", len(resp.Data))
	}
	btc, eth := resp.Data[0], resp.Data[1]
	if btc.RSI14 == nil {
		t.Error("healthy asset should keep its rsi")
	}
	if eth.RSI14 != nil || eth.VolRatio != 1 {
		t.Errorf("degraded asset = %+v, want nil rsi and neutral volRatio", eth)
	}
}

func TestScanEndpointRateLimit(t *testing.T) {
	srv := httptest.NewServer((&fakeProvider{}).handler())
	defer srv.Close()

	h := newTestHandler(t, srv.URL)
	h.rlEnabled = true
	h.rlBurst = 1
	h.rlRefill = 0.0001

	first := doScan(t, h, "?symbols=btc")
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d", first.Code)
	}
	second := doScan(t, h, "?symbols=btc")
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second call status = %d, want 429", second.Code)
	}
}
