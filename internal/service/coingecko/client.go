package coingecko

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"OracleScan/internal/domain/models"
	drepo "OracleScan/internal/domain/repository"
	"OracleScan/pkg/config"
	xhttp "OracleScan/pkg/http"
)

// Client implements a MarketDataSource backed by the CoinGecko REST API.
// Every call is a single attempt with no-cache semantics and a fixed
// user-agent; retries and throttling are deliberately absent.
type Client struct {
	baseURL    string
	vsCurrency string
	chartDays  int
	client     *xhttp.Client
}

// New creates a CoinGecko market-data client from config.
func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.Provider.BaseURL, "/"),
		vsCurrency: cfg.Provider.VsCurrency,
		chartDays:  cfg.Provider.ChartDays,
		client: xhttp.NewClient(
			xhttp.WithTimeout(cfg.Provider.Timeout),
			xhttp.WithHeader("Accept", "application/json"),
			xhttp.WithHeader("User-Agent", cfg.Provider.UserAgent),
			xhttp.WithHeader("Cache-Control", "no-cache"),
			xhttp.WithHeader("Pragma", "no-cache"),
		),
	}
}

type marketRow struct {
	ID           string   `json:"id"`
	Symbol       string   `json:"symbol"`
	Name         string   `json:"name"`
	CurrentPrice float64  `json:"current_price"`
	MarketCap    float64  `json:"market_cap"`
	TotalVolume  float64  `json:"total_volume"`
	Change24h    *float64 `json:"price_change_percentage_24h"`
}

// Markets fetches the batched snapshot for the given provider ids.
func (c *Client) Markets(ctx context.Context, ids []string) ([]models.MarketSnapshot, error) {
	q := url.Values{}
	q.Set("vs_currency", c.vsCurrency)
	q.Set("ids", strings.Join(ids, ","))
	q.Set("order", "market_cap_desc")
	q.Set("per_page", "50")
	q.Set("page", "1")
	q.Set("sparkline", "false")
	q.Set("price_change_percentage", "24h")

	var rows []marketRow
	if err := c.client.GetJSON(ctx, c.baseURL+"/coins/markets", q, &rows); err != nil {
		return nil, fmt.Errorf("markets: %w", err)
	}

	out := make([]models.MarketSnapshot, 0, len(rows))
	for _, r := range rows {
		s := models.MarketSnapshot{
			ID:        r.ID,
			Symbol:    strings.ToLower(r.Symbol),
			Name:      r.Name,
			Price:     r.CurrentPrice,
			MarketCap: r.MarketCap,
			Vol24h:    r.TotalVolume,
		}
		if s.Name == "" {
			s.Name = strings.ToUpper(s.Symbol)
		}
		if r.Change24h != nil {
			s.Change24h = *r.Change24h
		}
		out = append(out, s)
	}
	return out, nil
}

type chartPayload struct {
	Prices       [][]float64 `json:"prices"`
	TotalVolumes [][]float64 `json:"total_volumes"`
}

// MarketChart fetches the hourly price/volume series for one asset over the
// configured window. Non-finite samples are filtered out.
func (c *Client) MarketChart(ctx context.Context, id string) (models.Chart, error) {
	q := url.Values{}
	q.Set("vs_currency", c.vsCurrency)
	q.Set("days", strconv.Itoa(c.chartDays))
	q.Set("interval", "hourly")

	var payload chartPayload
	u := c.baseURL + "/coins/" + url.PathEscape(id) + "/market_chart"
	if err := c.client.GetJSON(ctx, u, q, &payload); err != nil {
		return models.Chart{}, fmt.Errorf("market chart %s: %w", id, err)
	}

	return models.Chart{
		Prices:  secondColumn(payload.Prices),
		Volumes: secondColumn(payload.TotalVolumes),
	}, nil
}

// secondColumn extracts the value from [timestamp, value] pairs, dropping
// malformed or non-finite samples.
func secondColumn(pairs [][]float64) []float64 {
	out := make([]float64, 0, len(pairs))
	for _, p := range pairs {
		if len(p) < 2 {
			continue
		}
		v := p[1]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}

var _ drepo.MarketDataSource = (*Client)(nil)
