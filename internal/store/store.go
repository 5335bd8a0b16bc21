package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"device-inventory-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	Save(ctx context.Context, device *model.Device) error
	FindByID(ctx context.Context, id int64) (*model.Device, error)
	DeleteByID(ctx context.Context, id int64) error
	FindByFilter(ctx context.Context, filter DeviceFilter) ([]model.Device, error)
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying connection for handlers that manage their own tables.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// Save inserts the device when it has no ID yet, otherwise rewrites every
// mutable column. Updating a device that no longer exists yields ErrRecordNotFound.
func (s *gormStore) Save(ctx context.Context, device *model.Device) error {
	if device.ID == 0 {
		if err := s.db.WithContext(ctx).Create(device).Error; err != nil {
			return fmt.Errorf("failed to create device: %w", err)
		}
		return nil
	}

	result := s.db.WithContext(ctx).Model(device).Select("*").Updates(device)
	if result.Error != nil {
		return fmt.Errorf("failed to update device %d: %w", device.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update device %d: %w", device.ID, ErrRecordNotFound)
	}
	return nil
}

// FindByID loads a single device.
func (s *gormStore) FindByID(ctx context.Context, id int64) (*model.Device, error) {
	var device model.Device
	if err := s.db.WithContext(ctx).First(&device, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to fetch device %d: %w", id, err)
	}
	return &device, nil
}

// DeleteByID removes a device.
func (s *gormStore) DeleteByID(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&model.Device{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete device %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// FindByFilter lists devices matching every set field of the filter, ordered by ID.
func (s *gormStore) FindByFilter(ctx context.Context, filter DeviceFilter) ([]model.Device, error) {
	query := s.db.WithContext(ctx).Model(&model.Device{})
	if filter.Brand != nil {
		query = query.Where("device_brand = ?", *filter.Brand)
	}
	if filter.State != nil {
		query = query.Where("device_state = ?", string(*filter.State))
	}

	devices := make([]model.Device, 0)
	if err := query.Order("device_id").Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return devices, nil
}
