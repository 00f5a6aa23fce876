package models

import "github.com/google/uuid"

type RegisterRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,min=7,max=20"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"display_name,omitempty"`
	CountryCode string `json:"country_code" binding:"required,len=2"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateIdeaRequest struct {
	Content    string    `json:"content" binding:"required"`
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
	Hashtags   []string  `json:"hashtags" binding:"required,min=1"`
}

type SubmitVoteRequest struct {
	OptionID  uuid.UUID `json:"option_id" binding:"required"`
	Anonymous bool      `json:"anonymous"`
}

type IdeaListParams struct {
	Status     string `form:"status,default=PENDING"`
	CategoryID string `form:"category_id"`
	Hashtag    string `form:"hashtag"`
}

type PollListParams struct {
	CategoryID string `form:"category_id"`
	Hashtag    string `form:"hashtag"`
	Sort       string `form:"sort,default=created"`
	Limit      int    `form:"limit"`
}
