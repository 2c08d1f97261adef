package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpitmittal98/shopsight/models"
)

func fixtureProducts() []models.Product {
	return []models.Product{
		{ArticleID: 3, ProdName: "Strap top", ProductTypeName: "Vest top", ProductGroupName: "Garment Upper body", ColourGroupName: "Black", DepartmentName: "Jersey Basic"},
		{ArticleID: 1, ProdName: "Summer Dress", ProductTypeName: "Dress", ProductGroupName: "Garment Full body", ColourGroupName: "Red", DepartmentName: "Dresses Ladies"},
		{ArticleID: 2, ProdName: "Runner Sneaker", ProductTypeName: "Sneakers", ProductGroupName: "Shoes", ColourGroupName: "White", DepartmentName: "Womens Sport"},
		{ArticleID: 4, ProdName: "Winter Dress", ProductTypeName: "Dress", ProductGroupName: "Garment Full body", ColourGroupName: "Black", DepartmentName: "Dresses Ladies"},
	}
}

func TestStoreLookup(t *testing.T) {
	store := NewStore(fixtureProducts())

	assert.Equal(t, 4, store.Count())

	p, ok := store.ProductByID(2)
	require.True(t, ok)
	assert.Equal(t, "Runner Sneaker", p.ProdName)

	_, ok = store.ProductByID(999)
	assert.False(t, ok)
}

func TestSearchByFilters(t *testing.T) {
	store := NewStore(fixtureProducts())

	results := store.Search(SearchParams{Category: "dress"})
	require.Len(t, results, 2)
	// Results keep ascending article-id order.
	assert.Equal(t, 1, results[0].ArticleID)
	assert.Equal(t, 4, results[1].ArticleID)

	results = store.Search(SearchParams{Category: "dress", Color: "black"})
	require.Len(t, results, 1)
	assert.Equal(t, "Winter Dress", results[0].ProdName)

	results = store.Search(SearchParams{Department: "sport"})
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].ArticleID)
}

func TestSearchByKeywords(t *testing.T) {
	store := NewStore(fixtureProducts())

	results := store.Search(SearchParams{Query: "summer"})
	require.Len(t, results, 1)
	assert.Equal(t, "Summer Dress", results[0].ProdName)

	results = store.Search(SearchParams{Query: "nothing matches this"})
	assert.Empty(t, results)
}

func TestSearchSkipsKeywordsCoveredByFilters(t *testing.T) {
	store := NewStore(fixtureProducts())

	// "red" and "dress" became filters; the keyword pass must not demand
	// them as free text on top.
	results := store.Search(SearchParams{Query: "red dress", Category: "dress", Color: "red"})
	require.Len(t, results, 1)
	assert.Equal(t, "Summer Dress", results[0].ProdName)
}

func TestSearchLimit(t *testing.T) {
	store := NewStore(fixtureProducts())

	results := store.Search(SearchParams{Limit: 2})
	assert.Len(t, results, 2)
}

func TestDistinctFilterValues(t *testing.T) {
	store := NewStore(fixtureProducts())

	assert.Equal(t, []string{"Dress", "Sneakers", "Vest top"}, store.Categories())
	assert.Equal(t, []string{"Black", "Red", "White"}, store.Colors())
	assert.Equal(t, []string{"Dresses Ladies", "Jersey Basic", "Womens Sport"}, store.Departments())
}

func TestTransactionsWithoutDatabase(t *testing.T) {
	store := NewStore(fixtureProducts())

	assert.Nil(t, store.Transactions(context.Background(), 1))
}

func TestDemographicsAreStable(t *testing.T) {
	first := NewStore(nil).Demographics()
	second := NewStore(nil).Demographics()

	assert.Equal(t, first, second)
	assert.Equal(t, 1000, first.TotalCustomers)
	assert.InDelta(t, 43.5, first.AvgAge, 5)
	assert.Len(t, first.AgeDistribution, 10)
	assert.Len(t, first.ClubMembers, 3)
}

func TestLoadFromCSV(t *testing.T) {
	csv := `article_id,prod_name,product_type_name,product_group_name,colour_group_name,department_name,section_name,garment_group_name,image_url
108775015,Strap top,Vest top,Garment Upper body,Black,Jersey Basic,Womens Everyday Basics,Jersey Basic,
108775044,Strap top,Vest top,Garment Upper body,White,Jersey Basic,Womens Everyday Basics,Jersey Basic,
not-a-number,Broken row,Dress,,,,,,
110065001,OP T-shirt,Bra,Underwear,Black,Clean Lingerie,Womens Lingerie,Under- Nightwear,
`
	path := filepath.Join(t.TempDir(), "articles.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	store, err := LoadFromCSV(path)
	require.NoError(t, err)

	// The malformed row is skipped, not fatal.
	assert.Equal(t, 3, store.Count())

	p, ok := store.ProductByID(108775044)
	require.True(t, ok)
	assert.Equal(t, "White", p.ColourGroupName)
	assert.Equal(t, "Vest top", p.ProductTypeName)
}

func TestLoadFromCSVMissingFile(t *testing.T) {
	_, err := LoadFromCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestLoadFromCSVRequiresArticleIDColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,colour\nfoo,red\n"), 0o644))

	_, err := LoadFromCSV(path)
	assert.Error(t, err)
}
