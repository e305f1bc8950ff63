package dto

import "github.com/salonhub/booking-api/internal/models"

// Campos expostos são listados explicitamente; nada de serializar
// o modelo inteiro e vazar colunas novas por acidente.

type ProfileDTO struct {
	Phone     string   `json:"phone"`
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type UserDTO struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Profile   ProfileDTO `json:"profile"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Profile: ProfileDTO{
			Phone:     u.Profile.Phone,
			Location:  u.Profile.Location,
			Latitude:  u.Profile.Latitude,
			Longitude: u.Profile.Longitude,
		},
	}
}
