package response

import (
	"encoding/json"
	"testing"

	"fosfenos/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestToTechnicalInfo(t *testing.T) {
	assert.Nil(t, ToTechnicalInfo(nil))

	base := models.TechnicalInfo{
		Formato:           "Serie",
		Duracion:          "13 x 11'",
		Genero:            "Animación",
		Publico:           "Infantil",
		Estado:            "Terminado",
		EmpresaProductora: "Fosfenos Media",
		PaisProductora:    "Colombia",
	}

	t.Run("without co-producer", func(t *testing.T) {
		out := ToTechnicalInfo(&base)
		require.NotNil(t, out)
		assert.Equal(t, Company{Nombre: "Fosfenos Media", Pais: "Colombia"}, out.EmpresaProductora)
		assert.Nil(t, out.EmpresaCoproductora)

		raw, err := json.Marshal(out)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "empresaCoproductora")
	})

	t.Run("half a co-producer is dropped", func(t *testing.T) {
		ti := base
		ti.EmpresaCoproductora = strPtr("Otra")
		assert.Nil(t, ToTechnicalInfo(&ti).EmpresaCoproductora)
	})

	t.Run("with co-producer", func(t *testing.T) {
		ti := base
		ti.EmpresaCoproductora = strPtr("Otra")
		ti.PaisCoproductora = strPtr("Chile")
		assert.Equal(t, &Company{Nombre: "Otra", Pais: "Chile"}, ToTechnicalInfo(&ti).EmpresaCoproductora)
	})
}

func TestToPublicChildContentEmptyArrays(t *testing.T) {
	out := ToPublicChildContent(models.ChildContent{Title: "Nueva Serie"})

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"awards":[]`)
	assert.Contains(t, string(raw), `"platforms":[]`)
	assert.Contains(t, string(raw), `"technicalInfo":null`)
}
