package appointment

import "github.com/BruksfildServices01/barbershop-booking/internal/models"

// Role is the capability the caller acts with.
type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
)

// Actor identifies who performs an operation. It is passed explicitly into
// every use case instead of being read from request state.
type Actor struct {
	Role Role
	ID   uint
}

func Staff(id uint) Actor  { return Actor{Role: RoleStaff, ID: id} }
func Client(id uint) Actor { return Actor{Role: RoleClient, ID: id} }

func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff
}

func (a Actor) CanSee(ap *models.Appointment) bool {
	return a.IsStaff() || (a.Role == RoleClient && ap.ClientID == a.ID)
}
