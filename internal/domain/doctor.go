package domain

// Doctor represents a clinic doctor referenced by the booking flow.
// The upstream clinic API owns the record; the booking core never
// mutates it.
type Doctor struct {
	ID              string
	Name            string
	Specializations []string
	FeeOffline      float64
	FeeOnline       float64
}

// Fee returns the consultation fee for the given consultation type.
func (d *Doctor) Fee(ct ConsultationType) float64 {
	if ct == ConsultationOnline {
		return d.FeeOnline
	}
	return d.FeeOffline
}

// ConsultationType discriminates in-person and remote appointments.
// It determines which consent and identity fields are mandatory.
type ConsultationType string

const (
	ConsultationOffline ConsultationType = "offline"
	ConsultationOnline  ConsultationType = "online"
)

// Valid reports whether the value is one of the known consultation types.
func (c ConsultationType) Valid() bool {
	return c == ConsultationOffline || c == ConsultationOnline
}

// IsOnline reports whether the consultation is remote.
func (c ConsultationType) IsOnline() bool {
	return c == ConsultationOnline
}
