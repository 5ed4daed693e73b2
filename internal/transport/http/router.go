package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/abhijeet3015/socialstream/internal/ports"
	"github.com/abhijeet3015/socialstream/internal/usecase"
	"github.com/abhijeet3015/socialstream/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Handler struct {
	service *usecase.FeedService
	log     ports.Logger
	timeout time.Duration
}

func NewHandler(service *usecase.FeedService, log ports.Logger, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Handler{service: service, log: log, timeout: timeout}
}

// NewRouter — маршруты чтения ленты + служебные эндпоинты.
// otelServiceName непустой — включаем otelgin middleware.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/feed/:username", h.getFeed)
	r.GET("/activity/recent", h.recentActivity)

	return r
}

func (h *Handler) getFeed(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty username"})
		return
	}

	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	feed, err := h.service.Feed(ctx, username, limit, offset)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "Feed failed user=%s err=%v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": username, "activity": feed})
}

func (h *Handler) recentActivity(c *gin.Context) {
	limit, _ := httpx.ParseLimitOffset(c, 20, 100)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	items, err := h.service.RecentActivity(ctx, limit)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "RecentActivity failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": items})
}
