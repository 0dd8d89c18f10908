package models

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Nombre     string    `db:"nombre" json:"nombre"`
	Cargo      string    `db:"cargo" json:"cargo"`
	Imagen     string    `db:"imagen" json:"imagen"`
	ImagenDark *string   `db:"imagen_dark" json:"imagenDark"`
	Order      int       `db:"sort_order" json:"order"`
	Active     bool      `db:"active" json:"active"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

var TeamSortFields = map[string]string{
	"order":     "sort_order",
	"nombre":    "nombre",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}
