package models

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Href       string    `db:"href" json:"href"`
	Image      string    `db:"image" json:"image"`
	ImageLight string    `db:"image_light" json:"imageLight"`
	Order      int       `db:"sort_order" json:"order"`
	Active     bool      `db:"active" json:"active"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

var BrandSortFields = map[string]string{
	"order":     "sort_order",
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}
