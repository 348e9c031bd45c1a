package domain

import "time"

const (
	RoleFarmer = "farmer"
	RoleAdmin  = "admin"
)

// User models an account in the system. Role is fixed at creation time:
// registration always produces a farmer, the seed routine produces the admin.
type User struct {
	ID           string         `json:"id"`
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	PhoneNumber  string         `json:"phoneNumber"`
	Role         string         `json:"role"`
	CreatedAt    time.Time      `json:"createdAt"`
	Farmer       *FarmerProfile `json:"farmer,omitempty"`
}

// FullName returns the display name used in status projections.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// FarmerProfile is the one-to-one extension of a farmer User. It exists only
// for users created through the registration path; the admin has none.
type FarmerProfile struct {
	UserID              string              `json:"userId"`
	FarmSize            float64             `json:"farmSize"`
	CropType            string              `json:"cropType"`
	CertificationStatus CertificationStatus `json:"certificationStatus"`
	AppliedAt           time.Time           `json:"appliedAt"`
}

// StatusProjection is the read view returned by the status query endpoints.
type StatusProjection struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Email               string              `json:"email"`
	FarmSize            float64             `json:"farmSize"`
	CropType            string              `json:"cropType"`
	CertificationStatus CertificationStatus `json:"certificationStatus"`
	AppliedAt           time.Time           `json:"appliedAt"`
}
