package model

import (
	"fmt"
	"strings"
	"time"
)

// State is the operational state of a device.
type State string

const (
	StateAvailable State = "AVAILABLE"
	StateInUse     State = "IN_USE"
	StateInactive  State = "INACTIVE"
)

// States lists every valid device state.
var States = []State{StateAvailable, StateInUse, StateInactive}

// Valid reports whether s is one of the known states.
func (s State) Valid() bool {
	switch s {
	case StateAvailable, StateInUse, StateInactive:
		return true
	}
	return false
}

// ParseState converts a raw value into a State. Matching is case-sensitive.
func ParseState(raw string) (State, error) {
	s := State(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", fmt.Errorf("invalid state %q, should be one of: AVAILABLE, IN_USE, INACTIVE", raw)
	}
	return s, nil
}

// Audit carries the bookkeeping columns filled in by the storage layer.
type Audit struct {
	CreatedAt time.Time `gorm:"<-:create;not null"`
	CreatedBy string    `gorm:"<-:create;size:64;not null"`
	UpdatedAt time.Time
	UpdatedBy string `gorm:"size:64"`
}

// Device is a managed inventory item.
type Device struct {
	ID    int64  `gorm:"column:device_id;primaryKey;autoIncrement"`
	Name  string `gorm:"column:device_name;size:50;not null"`
	Brand string `gorm:"column:device_brand;size:100;not null;index"`
	State State  `gorm:"column:device_state;size:16;not null;index"`
	Audit
}
