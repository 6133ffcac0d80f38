package selection

import "errors"

var (
	// ErrNoDoctor is returned when an operation requires a selected doctor
	ErrNoDoctor = errors.New("selection: no doctor selected")

	// ErrNoDate is returned when an operation requires a selected date
	ErrNoDate = errors.New("selection: no date selected")

	// ErrStaleSlots is returned when an availability response targets a
	// doctor+date pair that is no longer the current selection
	ErrStaleSlots = errors.New("selection: stale availability response discarded")

	// ErrSlotsNotLoaded is returned when a slot is picked before any
	// availability was applied for the current doctor+date
	ErrSlotsNotLoaded = errors.New("selection: availability not loaded for current selection")

	// ErrSlotNotFound is returned when the picked start time does not
	// belong to the loaded availability
	ErrSlotNotFound = errors.New("selection: slot does not belong to current availability")

	// ErrSlotUnavailable is returned when the picked slot is not bookable
	ErrSlotUnavailable = errors.New("selection: slot is not available")
)
