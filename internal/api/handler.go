package api

import (
	"context"

	"github.com/SherClockHolmes/webpush-go"

	"device-inventory-backend/internal/device"
	"device-inventory-backend/internal/model"
	"device-inventory-backend/internal/store"
)

// DeviceService is the device lifecycle API the handlers call into.
type DeviceService interface {
	Create(ctx context.Context, in device.CreateInput) (*model.Device, error)
	FetchByID(ctx context.Context, id int64) (*model.Device, error)
	FetchList(ctx context.Context, brand, state string) ([]model.Device, error)
	Update(ctx context.Context, id int64, in device.UpdateInput) (*model.Device, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	devices DeviceService
	store   store.Store
	webpush *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(devices DeviceService, s store.Store, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		devices: devices,
		store:   s,
		webpush: webpushOptions,
	}
}
