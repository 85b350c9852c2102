package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"OracleScan/internal/domain/models"
	drepo "OracleScan/internal/domain/repository"
	"OracleScan/internal/services/indicator"
	applogger "OracleScan/pkg/logger"
	"OracleScan/pkg/util"
)

const rsiPeriod = 14

// symbolToProviderID maps supported ticker symbols to provider ids. Symbols
// outside this table are silently dropped from the provider query.
var symbolToProviderID = map[string]string{
	"btc":  "bitcoin",
	"eth":  "ethereum",
	"sol":  "solana",
	"base": "base",
	"doge": "dogecoin",
	"ada":  "cardano",
}

// Scanner is the aggregation service: it resolves requested symbols, pulls a
// batched market snapshot, scores each asset concurrently and assembles the
// result list. Nothing is cached or persisted between calls.
type Scanner struct {
	source     drepo.MarketDataSource
	metrics    drepo.Metrics
	maxSymbols int
	l          *applogger.Logger
}

func NewScanner(source drepo.MarketDataSource, metrics drepo.Metrics, maxSymbols int) *Scanner {
	if maxSymbols <= 0 {
		maxSymbols = 12
	}
	return &Scanner{source: source, metrics: metrics, maxSymbols: maxSymbols}
}

// SetLogger injects a structured logger.
func (s *Scanner) SetLogger(l *applogger.Logger) { s.l = l }

// ParseSymbols normalizes a comma-separated symbol list: trimmed, lowercased,
// deduplicated, capped at the configured maximum.
func (s *Scanner) ParseSymbols(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		sym := strings.ToLower(strings.TrimSpace(p))
		if sym == "" {
			continue
		}
		if _, dup := seen[sym]; dup {
			continue
		}
		seen[sym] = struct{}{}
		out = append(out, sym)
		if len(out) == s.maxSymbols {
			break
		}
	}
	return out
}

// Scan produces one SignalResult per resolvable requested symbol. A snapshot
// fetch failure fails the whole request; a per-asset chart failure degrades
// only that asset's indicators.
func (s *Scanner) Scan(ctx context.Context, raw string) (*models.ScanResult, error) {
	start := time.Now()
	symbols := s.ParseSymbols(raw)

	ids := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		if id, ok := symbolToProviderID[sym]; ok {
			ids = append(ids, id)
		}
	}

	res := &models.ScanResult{
		Symbols: symbols,
		Data:    []models.SignalResult{},
		TS:      time.Now().UnixMilli(),
	}
	if len(ids) == 0 {
		// nothing resolvable; an empty scan is still a successful scan
		if s.metrics != nil {
			s.metrics.RecordScan(time.Since(start).Seconds(), 0)
		}
		return res, nil
	}

	snaps, err := s.source.Markets(ctx, ids)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordScanError("markets")
		}
		return nil, fmt.Errorf("markets snapshot: %w", err)
	}

	// One result slot per snapshot: tasks share no state and the output
	// order follows the snapshot batch, not completion order.
	results := make([]models.SignalResult, len(snaps))
	var wg sync.WaitGroup
	for i, snap := range snaps {
		wg.Add(1)
		go func(i int, snap models.MarketSnapshot) {
			defer wg.Done()
			results[i] = s.scoreAsset(ctx, snap)
		}(i, snap)
	}
	wg.Wait()

	res.Data = results
	res.TS = time.Now().UnixMilli()

	if s.metrics != nil {
		s.metrics.RecordScan(time.Since(start).Seconds(), len(results))
		for _, r := range results {
			s.metrics.RecordScore(r.Symbol, r.Score)
		}
	}
	return res, nil
}

// scoreAsset fetches one asset's historical chart and derives its indicators.
// Any chart failure is contained here: the asset keeps a nil RSI and a
// neutral volume ratio, and the score falls back to the 24h change alone.
func (s *Scanner) scoreAsset(ctx context.Context, snap models.MarketSnapshot) models.SignalResult {
	var rsi *float64
	volRatio := 1.0

	chart, err := s.source.MarketChart(ctx, snap.ID)
	if err != nil {
		if s.l != nil {
			s.l.Warn("chart fetch failed", applogger.String("symbol", snap.Symbol), applogger.Error(err))
		}
		if s.metrics != nil {
			s.metrics.RecordChartError(snap.Symbol)
		}
	} else {
		if v, ok := indicator.RSI(chart.Prices, rsiPeriod); ok {
			rsi = &v
		}
		volRatio = indicator.VolumeRatio(chart.Volumes)
	}

	score := indicator.BullScore(snap.Change24h, rsi, volRatio)
	stance, tone := indicator.StanceFor(score)

	return models.SignalResult{
		ID:        snap.ID,
		Symbol:    snap.Symbol,
		Name:      snap.Name,
		Price:     snap.Price,
		MarketCap: snap.MarketCap,
		Vol24h:    snap.Vol24h,
		Change24h: snap.Change24h,
		RSI14:     rsi,
		VolRatio:  util.RoundTo(volRatio, 2),
		Score:     score,
		Stance:    stance,
		Tone:      tone,
		TS:        time.Now().UnixMilli(),
	}
}
