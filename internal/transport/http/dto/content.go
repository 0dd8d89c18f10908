package dto

import "github.com/google/uuid"

type TechnicalInfoInput struct {
	Formato             string  `json:"formato" validate:"required"`
	Duracion            string  `json:"duracion" validate:"required"`
	Genero              string  `json:"genero" validate:"required"`
	Publico             string  `json:"publico" validate:"required"`
	Estado              string  `json:"estado" validate:"required"`
	EmpresaProductora   string  `json:"empresaProductora" validate:"required"`
	PaisProductora      string  `json:"paisProductora" validate:"required"`
	EmpresaCoproductora *string `json:"empresaCoproductora,omitempty"`
	PaisCoproductora    *string `json:"paisCoproductora,omitempty"`
}

type AwardInput struct {
	ID       uuid.UUID `json:"id,omitempty" swaggertype:"string" format:"uuid"`
	Title    string    `json:"title" validate:"required"`
	Category string    `json:"category" validate:"required"`
	Year     int       `json:"year" validate:"min=1900,max=2100"`
	Country  string    `json:"country" validate:"required"`
	Status   string    `json:"status"`
	Festival string    `json:"festival" validate:"required"`
	Order    int       `json:"order" validate:"min=0"`
}

type PlatformInput struct {
	ID    uuid.UUID `json:"id,omitempty" swaggertype:"string" format:"uuid"`
	Name  string    `json:"name" validate:"required"`
	URL   string    `json:"url" validate:"required"`
	Icon  string    `json:"icon" validate:"required"`
	Order int       `json:"order" validate:"min=0"`
}

type AdditionalInfoInput struct {
	Pressbook *string `json:"pressbook,omitempty"`
	Website   *string `json:"website,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

type CreateChildContentRequest struct {
	Title          string               `json:"title" validate:"required,max=200"`
	Subtitle       *string              `json:"subtitle,omitempty"`
	VideoURL       string               `json:"videoUrl" validate:"required"`
	PosterImage    string               `json:"posterImage" validate:"required"`
	Synopsis       string               `json:"synopsis" validate:"required"`
	Published      *bool                `json:"published,omitempty"`
	Order          int                  `json:"order" validate:"min=0"`
	TechnicalInfo  *TechnicalInfoInput  `json:"technicalInfo,omitempty" validate:"omitempty"`
	Awards         []AwardInput         `json:"awards,omitempty" validate:"omitempty,dive"`
	Platforms      []PlatformInput      `json:"platforms,omitempty" validate:"omitempty,dive"`
	AdditionalInfo *AdditionalInfoInput `json:"additionalInfo,omitempty" validate:"omitempty"`
}

type UpdateChildContentRequest struct {
	Title          *string              `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Subtitle       *string              `json:"subtitle,omitempty"`
	VideoURL       *string              `json:"videoUrl,omitempty" validate:"omitempty,min=1"`
	PosterImage    *string              `json:"posterImage,omitempty" validate:"omitempty,min=1"`
	Synopsis       *string              `json:"synopsis,omitempty" validate:"omitempty,min=1"`
	Published      *bool                `json:"published,omitempty"`
	Order          *int                 `json:"order,omitempty" validate:"omitempty,min=0"`
	TechnicalInfo  *TechnicalInfoInput  `json:"technicalInfo,omitempty" validate:"omitempty"`
	Awards         *[]AwardInput        `json:"awards,omitempty" validate:"omitempty,dive"`
	Platforms      *[]PlatformInput     `json:"platforms,omitempty" validate:"omitempty,dive"`
	AdditionalInfo *AdditionalInfoInput `json:"additionalInfo,omitempty" validate:"omitempty"`
}
