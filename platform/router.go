package platform

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aprova.app/platform/errs"
	"aprova.app/platform/metrics"
	"aprova.app/platform/middleware/idempotency"
	"aprova.app/platform/model"
)

// NewRouter wires the HTTP API onto gin. Create routes take an
// X-Idempotency-Key backed by store.
func NewRouter(s *Service, store *idempotency.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	idempotent := idempotency.Middleware(store, s.logger)

	v1 := r.Group("/v1")
	{
		v1.POST("/notifications", idempotent, s.handleRecordEvent)
		v1.GET("/notifications", s.handleListNotifications)
		v1.POST("/notifications/drain", s.handleDrainQueue)
		v1.GET("/notifications/:id", s.handleGetNotification)
		v1.POST("/notifications/:id/dispatch", s.handleDispatchNotification)
		v1.POST("/internal-notifications", s.handleInternalNotification)

		v1.POST("/ai/client-profile", idempotent, s.handleClientProfile)
		v1.POST("/ai/monthly-plan", idempotent, s.handleMonthlyPlan)
		v1.GET("/ai/usage/:client_id", s.handleUsage)

		v1.PUT("/webhooks/:category", s.handleConfigureWebhook)
	}
	return r
}

func (s *Service) handleHealth(c *gin.Context) {
	if s.config.Ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.config.Ping(ctx); err != nil {
			s.logger.Error("health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Service) handleRecordEvent(c *gin.Context) {
	var req RecordEventRequest
	if !bindJSON(c, &req) || !valid(c, &req) {
		return
	}
	resp, err := s.RecordEvent(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	status := http.StatusCreated
	if req.Mode == model.DeliveryAsync {
		status = http.StatusAccepted
	}
	c.JSON(status, resp)
}

func (s *Service) handleListNotifications(c *gin.Context) {
	var req ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, &errs.Error{Code: errs.InvalidArgument, Message: "invalid query: " + err.Error()})
		return
	}
	if !valid(c, &req) {
		return
	}
	resp, err := s.ListNotifications(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Service) handleGetNotification(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := s.GetNotification(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Service) handleDispatchNotification(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := s.DispatchNotification(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Service) handleDrainQueue(c *gin.Context) {
	var req DrainQueueRequest
	if !bindJSON(c, &req) || !valid(c, &req) {
		return
	}
	resp, err := s.DrainQueue(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

func (s *Service) handleInternalNotification(c *gin.Context) {
	var req InternalNotificationRequest
	if !bindJSON(c, &req) || !valid(c, &req) {
		return
	}
	resp, err := s.SendInternalNotification(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (s *Service) handleClientProfile(c *gin.Context) {
	var req ClientProfileRequest
	if !bindJSON(c, &req) || !valid(c, &req) {
		return
	}
	resp, err := s.GenerateClientProfile(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Service) handleMonthlyPlan(c *gin.Context) {
	var req MonthlyPlanRequest
	if !bindJSON(c, &req) || !valid(c, &req) {
		return
	}
	resp, err := s.GenerateMonthlyPlan(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Service) handleUsage(c *gin.Context) {
	clientID, ok := pathUUID(c, "client_id")
	if !ok {
		return
	}
	resp, err := s.UsageStatus(c.Request.Context(), clientID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Service) handleConfigureWebhook(c *gin.Context) {
	var req ConfigureWebhookRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Category = model.Category(c.Param("category"))
	if !valid(c, &req) {
		return
	}
	resp, err := s.ConfigureWebhook(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type validatable interface {
	Validate() error
}

// bindJSON decodes the body into req. An empty body leaves req at its zero
// value. It writes the error response and returns false on failure.
func bindJSON(c *gin.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		writeError(c, &errs.Error{Code: errs.InvalidArgument, Message: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func valid(c *gin.Context, req validatable) bool {
	if err := req.Validate(); err != nil {
		writeError(c, err)
		return false
	}
	return true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		writeError(c, &errs.Error{Code: errs.InvalidArgument, Message: "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// writeError renders err as {"code","message","details"}. Errors that are not
// *errs.Error are reported as internal without their text.
func writeError(c *gin.Context, err error) {
	var e *errs.Error
	if !errors.As(err, &e) {
		e = &errs.Error{Code: errs.Internal, Message: "internal error"}
	}
	c.AbortWithStatusJSON(e.Code.HTTPStatus(), e)
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
