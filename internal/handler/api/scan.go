package api

import (
	"net/http"

	models "OracleScan/internal/domain/models"
	"OracleScan/internal/service/ratelimit"
	"OracleScan/internal/usecase"
	"OracleScan/pkg/config"
	xhttp "OracleScan/pkg/http"
	applogger "OracleScan/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ScanHandler exposes the signal scan endpoint.
type ScanHandler struct {
	logger  *applogger.Logger
	scanner *usecase.Scanner
	rl      *ratelimit.Limiter

	defaultSymbols string
	rlEnabled      bool
	rlBurst        float64
	rlRefill       float64
}

func NewScanHandler(logger *applogger.Logger, scanner *usecase.Scanner, cfg *config.Config) *ScanHandler {
	h := &ScanHandler{
		logger:         logger,
		scanner:        scanner,
		rl:             ratelimit.New(),
		defaultSymbols: cfg.Scan.DefaultSymbols,
		rlEnabled:      cfg.Scan.RateLimit.Enabled,
		rlBurst:        cfg.Scan.RateLimit.Burst,
		rlRefill:       cfg.Scan.RateLimit.RefillPerSec,
	}
	if h.rlBurst <= 0 {
		h.rlBurst = 5
	}
	if h.rlRefill <= 0 {
		h.rlRefill = 2
	}
	return h
}

func (h *ScanHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	g := e.Group("/api")
	g.GET("/scan", h.Scan)
}

// Scan aggregates market data for the requested symbols and returns one
// scored row per resolvable symbol. Responses are never cacheable; any
// request-level failure maps to a 502 envelope with the raw error detail.
func (h *ScanHandler) Scan(c echo.Context) error {
	// Configured default seeds the request; the struct tag covers the rest.
	req := &models.ScanRequest{Symbols: h.defaultSymbols}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if h.rlEnabled && !h.rl.Allow(c.RealIP()+":scan", h.rlBurst, h.rlRefill) {
		h.logger.Warn("scan rate_limited", applogger.String("remote", c.RealIP()))
		return xhttp.TooManyRequestsResponse(c)
	}

	res, err := h.scanner.Scan(c.Request().Context(), req.Symbols)
	if err != nil {
		appErr := xhttp.BadGatewayError("scan failed").WithError(err)
		h.logger.Error("scan failed", applogger.Error(appErr))
		return c.JSON(appErr.Status, models.ScanErrorResponse{
			OK:     false,
			Error:  appErr.Message,
			Detail: err.Error(),
		})
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.JSON(http.StatusOK, models.ScanResponse{
		OK:      true,
		Symbols: res.Symbols,
		Data:    res.Data,
		TS:      res.TS,
	})
}

// Health is a plain liveness probe.
func (h *ScanHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
