package booking

import "github.com/salaoflow/salon-scheduler/internal/models"

// Actor carries the identity and role of whoever is invoking a core
// operation. It is passed explicitly; there is no ambient current user.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsClient() bool {
	return a.Role == models.RoleClient
}

func (a Actor) IsProfessional() bool {
	return a.Role == models.RoleProfessional
}
