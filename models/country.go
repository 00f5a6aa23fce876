package models

import "time"

type Country struct {
	Code                string    `json:"code" gorm:"size:2;primarykey"`
	Name                string    `json:"name" gorm:"size:100;not null"`
	CallingCode         string    `json:"calling_code" gorm:"size:8"`
	Currency            string    `json:"currency" gorm:"size:3"`
	DefaultLanguage     string    `json:"default_language" gorm:"size:8"`
	RegistrationEnabled bool      `json:"registration_enabled" gorm:"default:true"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
