package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ukkm-backend/internal/models"
)

func seedInspections() []models.Inspection {
	return []models.Inspection{
		{ID: 2, Name: "SK SIK DALAM", Category: models.CategorySekolahKPM, Visits: [3]models.Visit{{Date: "16/4/2025"}}},
		{ID: 1, Name: "SK SIK", Category: models.CategorySekolahKPM, Visits: [3]models.Visit{{Date: "28/4/2025"}, {Date: "2/9/2025"}}},
	}
}

func TestInspectionCreate(t *testing.T) {
	repo := NewInspectionRepository(seedInspections())

	rec := repo.Create(InspectionPatch{
		Name:     "ASRAMA SMK SIK",
		Category: models.CategoryAsrama,
		Dates:    [3]string{"3/3/2025"},
		Scores:   [3]string{"87"},
	})

	assert.Equal(t, 3, rec.ID)
	assert.Equal(t, "3/3/2025", rec.Visits[0].Date)
	assert.Equal(t, "87", rec.Visits[0].Score)
	assert.Equal(t, 3, repo.List()[0].ID)
	assert.Equal(t, 3, repo.Count())
}

func TestInspectionUpdateClearsEmptyFieldsAndKeepsFosim(t *testing.T) {
	repo := NewInspectionRepository(seedInspections())
	_, ok := repo.ToggleFosim(1, 2)
	require.True(t, ok)

	rec, ok := repo.Update(1, InspectionPatch{
		Name:     "SK SIK (BARU)",
		Category: models.CategorySekolahKPM,
		Dates:    [3]string{"28/4/2025", "", "1/10/2025"},
		Scores:   [3]string{"90", "", ""},
	})
	require.True(t, ok)

	assert.Equal(t, "SK SIK (BARU)", rec.Name)
	assert.Equal(t, "90", rec.Visits[0].Score)
	assert.Empty(t, rec.Visits[1].Date)
	assert.True(t, rec.Visits[1].Fosim)
	assert.Equal(t, "1/10/2025", rec.Visits[2].Date)
	assert.Equal(t, []int{2, 1}, []int{repo.List()[0].ID, repo.List()[1].ID})
}

func TestInspectionToggleFosim(t *testing.T) {
	repo := NewInspectionRepository(seedInspections())

	rec, ok := repo.ToggleFosim(2, 1)
	require.True(t, ok)
	assert.True(t, rec.Visits[0].Fosim)

	rec, ok = repo.ToggleFosim(2, 1)
	require.True(t, ok)
	assert.False(t, rec.Visits[0].Fosim)
}

func TestInspectionToggleFosimMisses(t *testing.T) {
	repo := NewInspectionRepository(seedInspections())
	before := repo.List()

	_, ok := repo.ToggleFosim(42, 1)
	assert.False(t, ok)
	_, ok = repo.ToggleFosim(1, 4)
	assert.False(t, ok)
	_, ok = repo.ToggleFosim(1, 0)
	assert.False(t, ok)

	assert.Equal(t, before, repo.List())
}

func TestInspectionCategoriesFirstSeenOrder(t *testing.T) {
	repo := NewInspectionRepository(seedInspections())
	repo.Create(InspectionPatch{Name: "IPG", Category: models.CategoryIPT})
	repo.Create(InspectionPatch{Name: "Asrama", Category: models.CategoryAsrama})

	assert.Equal(t, []models.InspectionCategory{models.CategoryAsrama, models.CategoryIPT, models.CategorySekolahKPM}, repo.Categories())
}
