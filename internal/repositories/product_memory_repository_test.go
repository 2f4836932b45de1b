package repositories_test

import (
	"testing"

	"unikart/internal/models"
	"unikart/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProductRepository_IDsNeverReused(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	first := models.Product{Name: "Pen", Description: "Blue ink", Price: 1.5, ImageURL: "https://x.test/p.png"}
	second := models.Product{Name: "Notebook", Description: "A5 ruled", Price: 4.0, ImageURL: "https://x.test/n.png"}
	require.NoError(t, repo.Create(&first))
	require.NoError(t, repo.Create(&second))
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	require.NoError(t, repo.Delete(second.ID))

	third := models.Product{Name: "Eraser", Description: "Soft", Price: 0.5, ImageURL: "https://x.test/e.png"}
	require.NoError(t, repo.Create(&third))
	assert.Equal(t, uint(3), third.ID) // deleted ID 2 is not handed out again
}

func TestMemoryProductRepository_Lookups(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	pen := models.Product{Name: "Pen", Description: "Blue ink", Price: 1.5, ImageURL: "https://x.test/p.png"}
	require.NoError(t, repo.Create(&pen))

	byID, err := repo.GetByID(pen.ID)
	assert.NoError(t, err)
	assert.Equal(t, pen, *byID)

	byName, err := repo.GetByName("Pen")
	assert.NoError(t, err)
	assert.Equal(t, pen, *byName)

	_, err = repo.GetByID(42)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	_, err = repo.GetByName("Quill")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestMemoryProductRepository_RenameAndGetAllOrder(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	names := []string{"Pen", "Notebook", "Eraser"}
	for i, name := range names {
		p := models.Product{Name: name, Description: name, Price: float64(i + 1), ImageURL: "https://x.test/i.png"}
		require.NoError(t, repo.Create(&p))
	}

	require.NoError(t, repo.Rename(1, "Gel Pen"))
	assert.ErrorIs(t, repo.Rename(99, "Ghost"), repositories.ErrProductNotFound)

	all, err := repo.GetAll()
	assert.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Gel Pen", all[0].Name)
	assert.Equal(t, "Notebook", all[1].Name)
	assert.Equal(t, "Eraser", all[2].Name)
}

func TestMemoryProductRepository_QueryShapes(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	seed := []models.Product{
		{Name: "Pen", Description: "Blue ink", Price: 1.5, ImageURL: "https://x.test/p.png"},
		{Name: "Notebook", Description: "A5 ruled", Price: 4.0, ImageURL: "https://x.test/n.png"},
		{Name: "Fountain Pen", Description: "Gold nib", Price: 30.0, ImageURL: "https://x.test/f.png"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(&seed[i]))
	}

	above, err := repo.GetByPriceGreaterThan(4.0)
	assert.NoError(t, err)
	require.Len(t, above, 1)
	assert.Equal(t, "Fountain Pen", above[0].Name)

	matches, err := repo.SearchByName("pEn")
	assert.NoError(t, err)
	assert.Len(t, matches, 2)

	ranged, err := repo.GetByPriceRange(1.5, 4.0)
	assert.NoError(t, err)
	require.Len(t, ranged, 2)
	assert.Equal(t, "Pen", ranged[0].Name)
	assert.Equal(t, "Notebook", ranged[1].Name)
}
