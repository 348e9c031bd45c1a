package domain

// CertificationStatus is the admin-controlled approval state of a farmer's
// application. Any status may be set from any other, including itself; there
// is intentionally no terminal state.
type CertificationStatus string

const (
	StatusPending   CertificationStatus = "pending"
	StatusCertified CertificationStatus = "certified"
	StatusDeclined  CertificationStatus = "declined"
)

// Valid reports whether s is one of the three known literals.
func (s CertificationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCertified, StatusDeclined:
		return true
	}
	return false
}
