package user

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	IsAdmin  bool   `json:"isAdmin"`
}

// AuthenticatedID makes User a refresh-token principal.
func (u *User) AuthenticatedID() uint { return u.ID }

func (u *User) AdminRole() bool { return u.IsAdmin }
