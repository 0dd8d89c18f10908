package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is an offering shown in the site's service catalog.
type Service struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	Title       string           `db:"title" json:"title"`
	Description string           `db:"description" json:"description"`
	Icon        string           `db:"icon" json:"icon"`
	Gradient    string           `db:"gradient" json:"gradient"`
	Order       int              `db:"sort_order" json:"order"`
	Active      bool             `db:"active" json:"active"`
	CreatedAt   time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updatedAt"`
	Features    []ServiceFeature `json:"features"`
}

type ServiceFeature struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ServiceID uuid.UUID `db:"service_id" json:"serviceId"`
	Title     string    `db:"title" json:"title"`
	Order     int       `db:"sort_order" json:"order"`
}

// ServiceUpdate carries a partial update. A nil Features leaves the stored
// set untouched; a non-nil one replaces it.
type ServiceUpdate struct {
	Fields   map[string]any
	Features *[]ServiceFeature
}

var ServiceSortFields = map[string]string{
	"order":     "sort_order",
	"title":     "title",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}
