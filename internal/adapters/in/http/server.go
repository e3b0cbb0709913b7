// Package http exposes order taking over a JSON API built on echo.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// IdempotencyKeyHeader carries the client chosen key of a POST request.
const IdempotencyKeyHeader = "Idempotency-Key"

// ReplayedHeader is set to "true" on responses replayed for a known idempotency key.
const ReplayedHeader = "Idempotent-Replayed"

var errInvalidBody = errors.New("invalid request body")

// PlaceOrderHandler runs the place order command.
type PlaceOrderHandler interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderCommand) ([]order.Event, error)
}

// GetPlacedOrderHandler runs the placed order query.
type GetPlacedOrderHandler interface {
	Handle(ctx context.Context, query queries.GetPlacedOrderQuery) (queries.GetPlacedOrderQueryResponse, error)
}

// Server handles HTTP requests by delegating to application use cases.
type Server struct {
	placeOrderHandler     PlaceOrderHandler
	getPlacedOrderHandler GetPlacedOrderHandler
	idempotency           ports.IdempotencyStore
	metrics               *Metrics
	logger                *slog.Logger
	now                   func() time.Time
}

// NewServer creates a server. idempotency may be nil, which disables replay.
func NewServer(
	placeOrderHandler PlaceOrderHandler,
	getPlacedOrderHandler GetPlacedOrderHandler,
	idempotency ports.IdempotencyStore,
	metrics *Metrics,
	logger *slog.Logger,
) *Server {
	return &Server{
		placeOrderHandler:     placeOrderHandler,
		getPlacedOrderHandler: getPlacedOrderHandler,
		idempotency:           idempotency,
		metrics:               metrics,
		logger:                logger.With("component", "http"),
		now:                   time.Now,
	}
}

// RegisterRoutes mounts the API, health and metrics endpoints on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(s.metrics.Middleware())

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:id", s.GetPlacedOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// PlaceOrder handles POST /api/v1/orders - takes an order and returns its events.
//
// With an Idempotency-Key header only the request that reserves the key runs;
// repeats get the stored response, or 409 while the first one is running.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	key := strings.TrimSpace(ctx.Request().Header.Get(IdempotencyKeyHeader))
	if key == "" || s.idempotency == nil {
		return s.placeOrder(ctx, "")
	}

	reserved, err := s.idempotency.Reserve(reqCtx, key)
	if err != nil {
		s.logger.WarnContext(reqCtx, "idempotency reservation failed", "key", key, "error", err)
		return s.placeOrder(ctx, "")
	}
	if !reserved {
		return s.replay(ctx, key)
	}

	return s.placeOrder(ctx, key)
}

// placeOrder runs the command. A non-empty key is reserved by this request:
// the response is saved under it on success and the key is released otherwise.
func (s *Server) placeOrder(ctx echo.Context, key string) error {
	reqCtx := ctx.Request().Context()

	body, err := s.runPlaceOrder(ctx)
	if err != nil {
		s.release(reqCtx, key)
		if errors.Is(err, errInvalidBody) {
			s.metrics.orderOutcome(outcomeInvalid)
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid request body",
			})
		}
		return s.fail(ctx, err)
	}

	s.metrics.orderOutcome(outcomePlaced)
	s.save(reqCtx, key, ports.StoredResponse{
		Status:      http.StatusCreated,
		ContentType: echo.MIMEApplicationJSON,
		Body:        body,
	})

	return ctx.Blob(http.StatusCreated, echo.MIMEApplicationJSON, body)
}

func (s *Server) runPlaceOrder(ctx echo.Context) ([]byte, error) {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidBody, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(req.toUnvalidated(), s.now())
	if err != nil {
		return nil, err
	}

	events, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return nil, err
	}

	resp, err := newPlaceOrderResponse(events)
	if err != nil {
		return nil, err
	}

	return json.Marshal(resp)
}

// replay answers a request whose key another request already reserved.
func (s *Server) replay(ctx echo.Context, key string) error {
	stored, err := s.idempotency.Get(ctx.Request().Context(), key)
	switch {
	case err == nil:
		s.metrics.orderOutcome(outcomeReplayed)
		ctx.Response().Header().Set(ReplayedHeader, "true")
		return ctx.Blob(stored.Status, stored.ContentType, stored.Body)
	case errors.Is(err, ports.ErrRequestInProgress), errors.Is(err, ports.ErrStoredResponseNotFound):
		s.metrics.orderOutcome(outcomeInProgress)
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: ports.ErrRequestInProgress.Error(),
		})
	default:
		return s.fail(ctx, fmt.Errorf("idempotency lookup: %w", err))
	}
}

// GetPlacedOrder handles GET /api/v1/orders/:id - returns a placed order.
func (s *Server) GetPlacedOrder(ctx echo.Context) error {
	query, err := queries.NewGetPlacedOrderQuery(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	placed, err := s.getPlacedOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newPlacedOrder(placed))
}

func (s *Server) fail(ctx echo.Context, err error) error {
	_, outcome := errorResponse(err)
	s.metrics.orderOutcome(outcome)
	return s.respondError(ctx, err)
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	body, _ := errorResponse(err)
	if body.Code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	}
	return ctx.JSON(body.Code, body)
}

func (s *Server) save(ctx context.Context, key string, resp ports.StoredResponse) {
	if key == "" {
		return
	}

	if err := s.idempotency.Save(ctx, key, resp); err != nil {
		s.logger.WarnContext(ctx, "idempotency save failed", "key", key, "error", err)
	}
}

func (s *Server) release(ctx context.Context, key string) {
	if key == "" {
		return
	}

	if err := s.idempotency.Release(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "idempotency release failed", "key", key, "error", err)
	}
}
