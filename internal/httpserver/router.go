package httpserver

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const requestIDHeader = "X-Request-Id"

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "crm_api_requests_total",
	Help: "HTTP requests served, by method, resource and status code.",
}, []string{"method", "resource", "status"})

// buildRouter wires routes for the mock API.
func buildRouter(logger *log.Logger, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.Gateway == nil {
		return nil, errors.New("gateway is required")
	}
	if deps.Auth == nil {
		return nil, errors.New("authenticator is required")
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(requestIDMiddleware(), metricsMiddleware())
	router.Use(cors.New(corsConfig(corsOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// The auth endpoint lives under the same /api prefix as the resource
	// collections. A literal /api/auth route would conflict with the
	// :resource wildcard in gin's tree, so POST dispatches on the param.
	api := router.Group("/api")
	api.GET("/:resource", listHandler(deps))
	api.GET("/:resource/:id", getHandler(deps))
	api.POST("/:resource", createHandler(deps))
	api.PUT("/:resource/:id", updateHandler(deps))
	api.DELETE("/:resource", deleteHandler(deps))

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", requestIDHeader}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		resource := c.Param("resource")
		if resource == "" {
			resource = c.FullPath()
		}
		requestsTotal.WithLabelValues(
			c.Request.Method,
			resource,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
