package dto

type CreateTeamMemberRequest struct {
	Nombre     string  `json:"nombre" validate:"required,max=200"`
	Cargo      string  `json:"cargo" validate:"required,max=200"`
	Imagen     string  `json:"imagen" validate:"required"`
	ImagenDark *string `json:"imagenDark,omitempty"`
	Order      int     `json:"order" validate:"min=0"`
	Active     *bool   `json:"active,omitempty"`
}

type UpdateTeamMemberRequest struct {
	Nombre     *string `json:"nombre,omitempty" validate:"omitempty,min=1,max=200"`
	Cargo      *string `json:"cargo,omitempty" validate:"omitempty,min=1,max=200"`
	Imagen     *string `json:"imagen,omitempty" validate:"omitempty,min=1"`
	ImagenDark *string `json:"imagenDark,omitempty"`
	Order      *int    `json:"order,omitempty" validate:"omitempty,min=0"`
	Active     *bool   `json:"active,omitempty"`
}
