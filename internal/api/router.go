package api

import (
	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"device-inventory-backend/internal/mw"
	"device-inventory-backend/internal/store"
)

// RouterConfig tunes the router's middleware.
type RouterConfig struct {
	RateLimitPerSec float64
	RateLimitBurst  int
}

// NewRouter creates and configures a new Gin router.
func NewRouter(devices DeviceService, s store.Store, webpushOptions *webpush.Options, cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(mw.RequestID())

	handler := NewHandler(devices, s, webpushOptions)

	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	api.Use(mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst))
	{
		api.POST("/devices", handler.CreateDevice)
		api.GET("/devices", handler.ListDevices)
		api.GET("/devices/:id", handler.GetDevice)
		api.PUT("/devices/:id", handler.UpdateDevice)
		api.DELETE("/devices/:id", handler.DeleteDevice)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
