package genre

import "gorm.io/gorm"

type Genre struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex;size:255;not null"`
}
