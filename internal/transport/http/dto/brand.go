package dto

type CreateBrandRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	Href       string `json:"href" validate:"required"`
	Image      string `json:"image" validate:"required"`
	ImageLight string `json:"imageLight" validate:"required"`
	Order      int    `json:"order" validate:"min=0"`
	Active     *bool  `json:"active,omitempty"`
}

type UpdateBrandRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Href       *string `json:"href,omitempty" validate:"omitempty,min=1"`
	Image      *string `json:"image,omitempty" validate:"omitempty,min=1"`
	ImageLight *string `json:"imageLight,omitempty" validate:"omitempty,min=1"`
	Order      *int    `json:"order,omitempty" validate:"omitempty,min=0"`
	Active     *bool   `json:"active,omitempty"`
}

// ReorderRequest is shared by every orderable collection.
type ReorderRequest struct {
	Items []ReorderItem `json:"items" validate:"required,min=1,dive"`
}

type ReorderItem struct {
	ID    string `json:"id" validate:"required,uuid"`
	Order int    `json:"order" validate:"min=0"`
}
