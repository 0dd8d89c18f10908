package response

import (
	"time"

	"fosfenos/internal/domain/models"

	"github.com/google/uuid"
)

type Company struct {
	Nombre string `json:"nombre"`
	Pais   string `json:"pais"`
}

// TechnicalInfo is the public rendering of models.TechnicalInfo with the
// producing companies grouped.
type TechnicalInfo struct {
	Formato             string   `json:"formato"`
	Duracion            string   `json:"duracion"`
	Genero              string   `json:"genero"`
	Publico             string   `json:"publico"`
	Estado              string   `json:"estado"`
	EmpresaProductora   Company  `json:"empresaProductora"`
	EmpresaCoproductora *Company `json:"empresaCoproductora,omitempty"`
}

type PublicChildContent struct {
	ID             uuid.UUID              `json:"id" swaggertype:"string" format:"uuid"`
	Slug           string                 `json:"slug"`
	Title          string                 `json:"title"`
	Subtitle       *string                `json:"subtitle"`
	VideoURL       string                 `json:"videoUrl"`
	PosterImage    string                 `json:"posterImage"`
	Synopsis       string                 `json:"synopsis"`
	Published      bool                   `json:"published"`
	Order          int                    `json:"order"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
	TechnicalInfo  *TechnicalInfo         `json:"technicalInfo"`
	Awards         []models.Award         `json:"awards"`
	Platforms      []models.Platform      `json:"platforms"`
	AdditionalInfo *models.AdditionalInfo `json:"additionalInfo"`
}

func ToTechnicalInfo(t *models.TechnicalInfo) *TechnicalInfo {
	if t == nil {
		return nil
	}

	out := &TechnicalInfo{
		Formato:  t.Formato,
		Duracion: t.Duracion,
		Genero:   t.Genero,
		Publico:  t.Publico,
		Estado:   t.Estado,
		EmpresaProductora: Company{
			Nombre: t.EmpresaProductora,
			Pais:   t.PaisProductora,
		},
	}

	// both halves must be set
	if t.EmpresaCoproductora != nil && *t.EmpresaCoproductora != "" &&
		t.PaisCoproductora != nil && *t.PaisCoproductora != "" {
		out.EmpresaCoproductora = &Company{
			Nombre: *t.EmpresaCoproductora,
			Pais:   *t.PaisCoproductora,
		}
	}

	return out
}

func ToPublicChildContent(c models.ChildContent) PublicChildContent {
	awards := c.Awards
	if awards == nil {
		awards = []models.Award{}
	}
	platforms := c.Platforms
	if platforms == nil {
		platforms = []models.Platform{}
	}

	return PublicChildContent{
		ID:             c.ID,
		Slug:           c.Slug,
		Title:          c.Title,
		Subtitle:       c.Subtitle,
		VideoURL:       c.VideoURL,
		PosterImage:    c.PosterImage,
		Synopsis:       c.Synopsis,
		Published:      c.Published,
		Order:          c.Order,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		TechnicalInfo:  ToTechnicalInfo(c.TechnicalInfo),
		Awards:         awards,
		Platforms:      platforms,
		AdditionalInfo: c.AdditionalInfo,
	}
}

func ToPublicChildContents(items []models.ChildContent) []PublicChildContent {
	out := make([]PublicChildContent, 0, len(items))
	for _, c := range items {
		out = append(out, ToPublicChildContent(c))
	}
	return out
}
