package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-twin/internal/bootstrap"
)

type HealthHandler struct {
	app *bootstrap.App
}

type dependencyStatus struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func NewHealthHandler(app *bootstrap.App) *HealthHandler {
	return &HealthHandler{app: app}
}

// Root answers the liveness banner.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to " + h.app.Config.App.Name + " API"})
}

// Check pings the database and whichever optional brokers are configured.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	deps := gin.H{}
	allOK := true

	dbStatus := h.checkDatabase(ctx)
	deps["database"] = dbStatus
	allOK = allOK && dbStatus.OK

	if h.app.Redis != nil {
		redisStatus := h.checkRedis(ctx)
		deps["redis"] = redisStatus
		allOK = allOK && redisStatus.OK
	}
	if h.app.Config.UsesRabbitMQ() {
		rmqStatus := h.checkRabbitMQ()
		deps["rabbitmq"] = rmqStatus
		allOK = allOK && rmqStatus.OK
	}

	statusCode := http.StatusOK
	if !allOK {
		statusCode = http.StatusServiceUnavailable
	}

	personaVersion := ""
	if h.app.Persona != nil {
		personaVersion = h.app.Persona.Version
	}

	c.JSON(statusCode, gin.H{
		"app":             h.app.Config.App.Name,
		"env":             h.app.Config.App.Env,
		"uptime_sec":      int(time.Since(h.app.StartedAt).Seconds()),
		"persona_version": personaVersion,
		"dependencies":    deps,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) dependencyStatus {
	if h.app.DB == nil {
		return dependencyStatus{OK: false, Message: "not connected"}
	}
	sqlDB, err := h.app.DB.DB()
	if err != nil {
		return dependencyStatus{OK: false, Message: err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return dependencyStatus{OK: false, Message: err.Error()}
	}
	return dependencyStatus{OK: true}
}

func (h *HealthHandler) checkRedis(ctx context.Context) dependencyStatus {
	if err := h.app.Redis.Ping(ctx).Err(); err != nil {
		return dependencyStatus{OK: false, Message: err.Error()}
	}
	return dependencyStatus{OK: true}
}

func (h *HealthHandler) checkRabbitMQ() dependencyStatus {
	if h.app.MQConn == nil || h.app.MQConn.IsClosed() {
		return dependencyStatus{OK: false, Message: "connection closed"}
	}
	return dependencyStatus{OK: true}
}
