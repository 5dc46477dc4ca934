package api

import (
	"errors"

	models "GoldView/internal/domain/models"
	domrepo "GoldView/internal/domain/repository"
	"GoldView/internal/report"
	"GoldView/internal/usecase"
	xhttp "GoldView/pkg/http"
	xlogger "GoldView/pkg/logger"
	"GoldView/pkg/util"

	"github.com/labstack/echo/v4"
)

// ViewEchoHandler serves the classified report views over Echo.
type ViewEchoHandler struct {
	logger *xlogger.Logger
	loader *usecase.ReportLoader
	src    domrepo.ReportSource
	poller *usecase.LivePoller
	views  map[string]report.Config
}

func NewViewEchoHandler(
	logger *xlogger.Logger,
	loader *usecase.ReportLoader,
	src domrepo.ReportSource,
	poller *usecase.LivePoller,
	views map[string]report.Config,
) *ViewEchoHandler {
	return &ViewEchoHandler{logger: logger, loader: loader, src: src, poller: poller, views: views}
}

func (h *ViewEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/view", h.View)
	g.GET("/view/today", h.Today)
	g.GET("/live", h.Live)
	g.GET("/logs", h.Logs)
	e.GET("/ws/live", h.LiveStream)
	e.GET("/healthz", h.Health)
	e.GET("/version", h.Version)
}

func (h *ViewEchoHandler) View(c echo.Context) error {
	req := &models.ViewRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return h.renderView(c, req)
}

// Today serves the view for the server's current date.
func (h *ViewEchoHandler) Today(c echo.Context) error {
	req := &models.ViewRequest{Date: util.Today()}
	if err := c.Bind(req); err == nil {
		req.Date = util.Today()
	}
	if req.Preset == "" {
		req.Preset = "daily"
	}
	if req.Timeframe == "" {
		req.Timeframe = string(domrepo.DefaultTimeframe())
	}
	return h.renderView(c, req)
}

func (h *ViewEchoHandler) renderView(c echo.Context, req *models.ViewRequest) error {
	cfg, ok := h.views[req.Preset]
	if !ok {
		return xhttp.BadRequestResponse(c,
			xhttp.BadRequestErrorf("unknown view preset '%s'", req.Preset))
	}
	tf := string(domrepo.NormalizeTimeframe(req.Timeframe))

	q := usecase.ViewQuery{
		Date:      req.Date,
		Session:   req.Session,
		ClientTZ:  req.ClientTZ,
		Timeframe: tf,
	}
	view, err := h.loader.Load(c.Request().Context(), q, cfg)
	if err != nil {
		return h.viewError(c, req, err)
	}

	return xhttp.SuccessResponse(c, &models.ViewResponse{
		Date:      view.Date,
		Sessions:  view.Sessions,
		Summaries: view.Summaries,
		CSVURL:    h.src.CSVURL(req.Date, req.Session, req.ClientTZ, tf),
	})
}

func (h *ViewEchoHandler) viewError(c echo.Context, req *models.ViewRequest, err error) error {
	switch {
	case errors.Is(err, report.ErrNoData):
		return xhttp.NotFoundResponse(c,
			xhttp.NotFoundError("no report data for "+req.Date))
	case errors.Is(err, usecase.ErrStaleResponse):
		return xhttp.AppErrorResponse(c,
			xhttp.ConflictError("superseded by a newer load"))
	default:
		h.logger.Error("report load failed",
			xlogger.String("date", req.Date),
			xlogger.Error(err),
		)
		return xhttp.BadGatewayResponse(c,
			xhttp.UpstreamError(err.Error()))
	}
}

// Live serves the last polled quote.
func (h *ViewEchoHandler) Live(c echo.Context) error {
	if h.poller == nil {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("live polling disabled"))
	}
	q, ok := h.poller.Last()
	if !ok {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("no live quote yet"))
	}
	return xhttp.SuccessResponse(c, q)
}

// Logs serves the retained warn/error log window for diagnostics.
func (h *ViewEchoHandler) Logs(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.logger.RecentLogs())
}

func (h *ViewEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "OK"})
}

// Version is set at build time via -ldflags.
var Version = "dev"

func (h *ViewEchoHandler) Version(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"version": Version})
}
