package ingest

import (
	"partsbot/internal/ingest/handlers"
	"partsbot/pkg/health"
	"partsbot/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	inbound        *handlers.InboundHandler
	healthRegistry *health.Registry
}

func NewRouter(inbound *handlers.InboundHandler, healthRegistry *health.Registry) *Router {
	return &Router{
		inbound:        inbound,
		healthRegistry: healthRegistry,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	engine.POST("/webhooks/whatsapp", r.inbound.Webhook)
}
