package dto

import "github.com/google/uuid"

type ServiceFeatureInput struct {
	ID    uuid.UUID `json:"id,omitempty" swaggertype:"string" format:"uuid"`
	Title string    `json:"title" validate:"required,max=200"`
	Order int       `json:"order" validate:"min=0"`
}

type CreateServiceRequest struct {
	Title       string                `json:"title" validate:"required,max=200"`
	Description string                `json:"description" validate:"required"`
	Icon        string                `json:"icon" validate:"required"`
	Gradient    string                `json:"gradient" validate:"required"`
	Order       int                   `json:"order" validate:"min=0"`
	Active      *bool                 `json:"active,omitempty"`
	Features    []ServiceFeatureInput `json:"features,omitempty" validate:"omitempty,dive"`
}

type UpdateServiceRequest struct {
	Title       *string                `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string                `json:"description,omitempty" validate:"omitempty,min=1"`
	Icon        *string                `json:"icon,omitempty" validate:"omitempty,min=1"`
	Gradient    *string                `json:"gradient,omitempty" validate:"omitempty,min=1"`
	Order       *int                   `json:"order,omitempty" validate:"omitempty,min=0"`
	Active      *bool                  `json:"active,omitempty"`
	Features    *[]ServiceFeatureInput `json:"features,omitempty" validate:"omitempty,dive"`
}
