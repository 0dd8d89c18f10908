package dto

type UpsertSiteConfigRequest struct {
	Value string `json:"value" validate:"max=10000"`
	Type  string `json:"type,omitempty" validate:"omitempty,oneof=TEXT JSON NUMBER BOOLEAN"`
}
