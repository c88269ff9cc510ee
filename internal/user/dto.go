package user

import "time"

type UserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDTO(u User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

func toDTOs(list []User) []UserDTO {
	out := make([]UserDTO, 0, len(list))
	for _, u := range list {
		out = append(out, toDTO(u))
	}
	return out
}
