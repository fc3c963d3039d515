package routes

import (
	"github.com/ArowuTest/leadcapture-backend/internal/config"
	"github.com/ArowuTest/leadcapture-backend/internal/handlers"
	"github.com/ArowuTest/leadcapture-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HandlerDependencies holds all handler instances needed by the router
type HandlerDependencies struct {
	LeadHandler     *handlers.LeadHandler
	CampaignHandler *handlers.CampaignHandler
	HealthHandler   *handlers.HealthHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg))
	if cfg.Metrics.Enabled {
		router.Use(middleware.MetricsMiddleware())
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	router.Use(middleware.IdentityMiddleware(cfg))

	router.GET("/health", deps.HealthHandler.Health)
	router.GET("/ready", deps.HealthHandler.Ready)

	// The same API is served at the root and under /api, sharing one limiter
	rateLimit := middleware.RateLimitMiddleware(cfg)
	registerLeadRoutes(router.Group(""), rateLimit, deps)
	registerLeadRoutes(router.Group("/api"), rateLimit, deps)

	return router
}

func registerLeadRoutes(rg *gin.RouterGroup, rateLimit gin.HandlerFunc, deps HandlerDependencies) {
	leads := rg.Group("")
	leads.Use(middleware.NoStoreMiddleware())
	{
		leads.POST("/leads", rateLimit, deps.LeadHandler.CreateLead)
		leads.POST("/leed", rateLimit, deps.LeadHandler.CreateLead)
		leads.GET("/leads", deps.LeadHandler.RecentLeads)
		leads.GET("/leed", deps.LeadHandler.ListLeads)
	}

	rg.GET("/campaign", deps.CampaignHandler.GetCampaign)
}
