package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type AwardStatus string

const (
	AwardGanador    AwardStatus = "GANADOR"
	AwardNominacion AwardStatus = "NOMINACION"
	AwardMencion    AwardStatus = "MENCION"
)

// ParseAwardStatus maps free-form status text to a known status.
// Unknown values fall back to NOMINACION.
func ParseAwardStatus(s string) AwardStatus {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(AwardGanador):
		return AwardGanador
	case string(AwardMencion):
		return AwardMencion
	default:
		return AwardNominacion
	}
}

type ChildContent struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	Slug           string          `db:"slug" json:"slug"`
	Title          string          `db:"title" json:"title"`
	Subtitle       *string         `db:"subtitle" json:"subtitle"`
	VideoURL       string          `db:"video_url" json:"videoUrl"`
	PosterImage    string          `db:"poster_image" json:"posterImage"`
	Synopsis       string          `db:"synopsis" json:"synopsis"`
	Published      bool            `db:"published" json:"published"`
	Order          int             `db:"sort_order" json:"order"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
	TechnicalInfo  *TechnicalInfo  `json:"technicalInfo"`
	Awards         []Award         `json:"awards"`
	Platforms      []Platform      `json:"platforms"`
	AdditionalInfo *AdditionalInfo `json:"additionalInfo"`
}

type TechnicalInfo struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	ChildContentID      uuid.UUID `db:"child_content_id" json:"childContentId"`
	Formato             string    `db:"formato" json:"formato"`
	Duracion            string    `db:"duracion" json:"duracion"`
	Genero              string    `db:"genero" json:"genero"`
	Publico             string    `db:"publico" json:"publico"`
	Estado              string    `db:"estado" json:"estado"`
	EmpresaProductora   string    `db:"empresa_productora" json:"empresaProductora"`
	PaisProductora      string    `db:"pais_productora" json:"paisProductora"`
	EmpresaCoproductora *string   `db:"empresa_coproductora" json:"empresaCoproductora"`
	PaisCoproductora    *string   `db:"pais_coproductora" json:"paisCoproductora"`
}

type Award struct {
	ID             uuid.UUID   `db:"id" json:"id"`
	ChildContentID uuid.UUID   `db:"child_content_id" json:"childContentId"`
	Title          string      `db:"title" json:"title"`
	Category       string      `db:"category" json:"category"`
	Year           int         `db:"year" json:"year"`
	Country        string      `db:"country" json:"country"`
	Status         AwardStatus `db:"status" json:"status"`
	Festival       string      `db:"festival" json:"festival"`
	Order          int         `db:"sort_order" json:"order"`
}

type Platform struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ChildContentID uuid.UUID `db:"child_content_id" json:"childContentId"`
	Name           string    `db:"name" json:"name"`
	URL            string    `db:"url" json:"url"`
	Icon           string    `db:"icon" json:"icon"`
	Order          int       `db:"sort_order" json:"order"`
}

type AdditionalInfo struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ChildContentID uuid.UUID `db:"child_content_id" json:"childContentId"`
	Pressbook      *string   `db:"pressbook" json:"pressbook"`
	Website        *string   `db:"website" json:"website"`
	Facebook       *string   `db:"facebook" json:"facebook"`
	Instagram      *string   `db:"instagram" json:"instagram"`
}

// ContentUpdate is a partial update of a ChildContent. Fields holds flat
// columns keyed by column name. Nil nested values are left untouched.
type ContentUpdate struct {
	Fields         map[string]any
	TechnicalInfo  *TechnicalInfo
	AdditionalInfo *AdditionalInfo
	Awards         *[]Award
	Platforms      *[]Platform
}

var ContentSortFields = map[string]string{
	"order":     "sort_order",
	"title":     "title",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}
