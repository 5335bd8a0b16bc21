package device

import (
	"context"
	"errors"
	"strings"

	"device-inventory-backend/internal/model"
	"device-inventory-backend/internal/store"
)

// Notifier is told about devices that have just become available.
type Notifier interface {
	Dispatch(deviceID int64)
}

// CreateInput carries the fields of a new device.
type CreateInput struct {
	Name  string
	Brand string
	State model.State
}

// UpdateInput carries a partial update. Blank fields are left unchanged.
type UpdateInput struct {
	Name  string
	Brand string
	State model.State
}

// Service enforces the device lifecycle rules on top of a Store.
//
// It keeps no state of its own. The in-use check and the following write are
// separate store calls, so a concurrent update can slip in between them.
type Service struct {
	store    store.Store
	notifier Notifier
}

// NewService creates a device service. notifier may be nil.
func NewService(s store.Store, notifier Notifier) *Service {
	return &Service{store: s, notifier: notifier}
}

// Create persists a new device in any state and returns it with its assigned ID.
func (s *Service) Create(ctx context.Context, in CreateInput) (*model.Device, error) {
	if isBlank(in.Name) || isBlank(in.Brand) {
		return nil, invalid("name and brand are required")
	}
	if !in.State.Valid() {
		return nil, invalid("state %q is not one of AVAILABLE, IN_USE, INACTIVE", in.State)
	}

	device := &model.Device{
		Name:  in.Name,
		Brand: in.Brand,
		State: in.State,
	}
	if err := s.store.Save(ctx, device); err != nil {
		return nil, storageFailure("create", err)
	}
	return device, nil
}

// FetchByID returns the device with the given ID.
func (s *Service) FetchByID(ctx context.Context, id int64) (*model.Device, error) {
	if id <= 0 {
		return nil, invalid("id must be a positive integer, got %d", id)
	}

	device, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, notFound("id", id)
		}
		return nil, storageFailure("read", err)
	}
	return device, nil
}

// FetchList returns the devices matching the optional brand and state filters.
// Blank filters are ignored. The result is never nil.
func (s *Service) FetchList(ctx context.Context, brand, state string) ([]model.Device, error) {
	var filter store.DeviceFilter
	if !isBlank(brand) {
		filter.Brand = &brand
	}
	if !isBlank(state) {
		parsed, err := model.ParseState(state)
		if err != nil {
			return nil, invalid("%v", err)
		}
		filter.State = &parsed
	}

	devices, err := s.store.FindByFilter(ctx, filter)
	if err != nil {
		return nil, storageFailure("list", err)
	}
	if devices == nil {
		devices = []model.Device{}
	}
	return devices, nil
}

// DeleteByID removes a device unless it is in use.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	device, err := s.FetchByID(ctx, id)
	if err != nil {
		return err
	}
	if device.State == model.StateInUse {
		return inUse("id", id)
	}

	if err := s.store.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return notFound("id", id)
		}
		return storageFailure("delete", err)
	}
	return nil
}

// Update applies a partial update. Name and brand cannot change while the
// device is in use; the state can always change.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*model.Device, error) {
	device, err := s.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.State != "" && !in.State.Valid() {
		return nil, invalid("state %q is not one of AVAILABLE, IN_USE, INACTIVE", in.State)
	}

	nameChanged := !isBlank(in.Name) && in.Name != device.Name
	brandChanged := !isBlank(in.Brand) && in.Brand != device.Brand
	stateChanged := in.State != "" && in.State != device.State

	if (nameChanged || brandChanged) && device.State == model.StateInUse {
		return nil, inUse("id", id)
	}
	if !nameChanged && !brandChanged && !stateChanged {
		return device, nil
	}

	previous := device.State
	if nameChanged {
		device.Name = in.Name
	}
	if brandChanged {
		device.Brand = in.Brand
	}
	if stateChanged {
		device.State = in.State
	}

	if err := s.store.Save(ctx, device); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, notFound("id", id)
		}
		return nil, storageFailure("modify", err)
	}

	if s.notifier != nil && previous != model.StateAvailable && device.State == model.StateAvailable {
		s.notifier.Dispatch(device.ID)
	}
	return device, nil
}

func isBlank(v string) bool {
	return strings.TrimSpace(v) == ""
}
