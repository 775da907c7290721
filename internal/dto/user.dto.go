package dto

import "github.com/Natalia-Nic/construction-company-api/internal/models"

// UserSummary is the profile shape returned by auth and /me responses.
// It never carries the credential.
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}
