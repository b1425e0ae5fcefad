package roster

import (
	"time"

	"github.com/AvihaiAdler/onereport/internal/domain"
)

type RegisterPersonnelRequest struct {
	ID        string `json:"id" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Company   string `json:"company" binding:"required"`
	Platoon   string `json:"platoon" binding:"required"`
}

type RegisterUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Role      string `json:"role" binding:"required"`
	Company   string `json:"company" binding:"required"`
	Platoon   string `json:"platoon" binding:"required"`
}

type UpdatePersonnelRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Company   string `json:"company" binding:"required"`
	Platoon   string `json:"platoon" binding:"required"`
	Active    string `json:"active" binding:"required"`
}

type UpdateUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Role      string `json:"role" binding:"required"`
	Company   string `json:"company" binding:"required"`
	Platoon   string `json:"platoon" binding:"required"`
	Active    string `json:"active" binding:"required"`
}

type PersonnelResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Platoon   string `json:"platoon"`
	Active    string `json:"active"`
	DateAdded string `json:"date_added"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Platoon   string `json:"platoon"`
	Active    string `json:"active"`
}

func mapPersonnelToResponse(p Personnel) PersonnelResponse {
	return PersonnelResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Company:   p.Company,
		Platoon:   p.Platoon,
		Active:    string(domain.ActiveFromBool(p.Active)),
		DateAdded: p.DateAdded.Format(time.DateOnly),
	}
}

func mapUserToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Company:   u.Company,
		Platoon:   u.Platoon,
		Active:    string(domain.ActiveFromBool(u.Active)),
	}
}
