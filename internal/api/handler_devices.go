package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"device-inventory-backend/internal/device"
	"device-inventory-backend/internal/model"
)

type createDeviceRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50"`
	Brand string `json:"brand" binding:"required,min=1,max=100"`
	State string `json:"state" binding:"required,oneof=AVAILABLE IN_USE INACTIVE"`
}

// updateDeviceRequest fields are optional; empty values leave the device unchanged.
type updateDeviceRequest struct {
	Name  string `json:"name" binding:"omitempty,max=50"`
	Brand string `json:"brand" binding:"omitempty,max=100"`
	State string `json:"state" binding:"omitempty,oneof=AVAILABLE IN_USE INACTIVE"`
}

// DeviceResponse is the JSON representation of a device.
type DeviceResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
}

func toDeviceResponse(d *model.Device) DeviceResponse {
	return DeviceResponse{
		ID:        d.ID,
		Name:      d.Name,
		Brand:     d.Brand,
		State:     string(d.State),
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
		UpdatedAt: d.UpdatedAt,
		UpdatedBy: d.UpdatedBy,
	}
}

func deviceIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid device ID")
		return 0, false
	}
	return id, true
}

// CreateDevice handles POST /api/devices.
func (h *Handler) CreateDevice(c *gin.Context) {
	var req createDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.devices.Create(c.Request.Context(), device.CreateInput{
		Name:  req.Name,
		Brand: req.Brand,
		State: model.State(req.State),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", c.Request.URL.Path, created.ID))
	c.JSON(http.StatusCreated, toDeviceResponse(created))
}

// ListDevices handles GET /api/devices with optional brand and state filters.
func (h *Handler) ListDevices(c *gin.Context) {
	devices, err := h.devices.FetchList(c.Request.Context(), c.Query("brand"), c.Query("state"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response := make([]DeviceResponse, 0, len(devices))
	for i := range devices {
		response = append(response, toDeviceResponse(&devices[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetDevice handles GET /api/devices/:id.
func (h *Handler) GetDevice(c *gin.Context) {
	id, ok := deviceIDParam(c)
	if !ok {
		return
	}

	found, err := h.devices.FetchByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDeviceResponse(found))
}

// UpdateDevice handles PUT /api/devices/:id as a partial update.
func (h *Handler) UpdateDevice(c *gin.Context) {
	id, ok := deviceIDParam(c)
	if !ok {
		return
	}

	var req updateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.devices.Update(c.Request.Context(), id, device.UpdateInput{
		Name:  req.Name,
		Brand: req.Brand,
		State: model.State(req.State),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDeviceResponse(updated))
}

// DeleteDevice handles DELETE /api/devices/:id.
func (h *Handler) DeleteDevice(c *gin.Context) {
	id, ok := deviceIDParam(c)
	if !ok {
		return
	}

	if err := h.devices.DeleteByID(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
