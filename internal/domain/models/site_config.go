package models

import (
	"time"

	"github.com/google/uuid"
)

type ConfigType string

const (
	ConfigTypeText    ConfigType = "TEXT"
	ConfigTypeJSON    ConfigType = "JSON"
	ConfigTypeNumber  ConfigType = "NUMBER"
	ConfigTypeBoolean ConfigType = "BOOLEAN"
)

type SiteConfig struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Key       string     `db:"key" json:"key"`
	Value     string     `db:"value" json:"value"`
	Type      ConfigType `db:"type" json:"type"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
}
