package store

import (
	"gorm.io/gorm"

	"device-inventory-backend/internal/model"
)

// ErrRecordNotFound is returned when a lookup or write targets a missing device.
var ErrRecordNotFound = gorm.ErrRecordNotFound

// DeviceFilter narrows a device listing. Nil fields do not constrain the result;
// set fields are combined with AND.
type DeviceFilter struct {
	Brand *string
	State *model.State
}
