package response_models

import "github.com/google/uuid"

type AccountResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
