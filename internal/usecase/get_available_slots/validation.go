package get_available_slots

import "fmt"

// validateRequest checks the request shape.
func validateRequest(req *Request) error {
	if req.DoctorID == "" {
		return fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
