package stac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem() *Item {
	item := NewItem("hwsd")
	item.Geometry = map[string]any{"type": "Point", "coordinates": []float64{0, 0}}
	item.Bbox = []float64{-180, 90, 180, -90}
	item.SetProperty("datetime", "2000-01-01T00:00:00Z")
	return item
}

func validCollection() *Collection {
	col := NewCollection("hwsd")
	col.Description = "Harmonized World Soil Database"
	col.License = "proprietary"
	col.Extent = NewExtent([]float64{-180, 90, 180, -90}, "2000-01-01T00:00:00Z", "2000-12-31T23:59:59Z")
	return col
}

func validCatalog() *Catalog {
	cat := NewCatalog("soils")
	cat.Description = "Soil datasets"
	return cat
}

func TestItemValidate(t *testing.T) {
	t.Run("valid item passes", func(t *testing.T) {
		require.NoError(t, validItem().Validate())
	})

	t.Run("start and end datetime suffice", func(t *testing.T) {
		item := validItem()
		delete(item.Properties, "datetime")
		item.SetProperty("start_datetime", "2000-01-01T00:00:00Z")
		item.SetProperty("end_datetime", "2000-12-31T23:59:59Z")
		require.NoError(t, item.Validate())
	})

	t.Run("missing fields are all reported", func(t *testing.T) {
		item := &Item{}
		err := item.Validate()
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Item", verr.Kind)
		assert.GreaterOrEqual(t, len(verr.Problems), 4)
	})

	t.Run("bad bbox arity", func(t *testing.T) {
		item := validItem()
		item.Bbox = []float64{-180, 90, 180}
		err := item.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bbox")
	})

	t.Run("missing datetime", func(t *testing.T) {
		item := validItem()
		delete(item.Properties, "datetime")
		err := item.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "datetime")
	})

	t.Run("asset without href", func(t *testing.T) {
		item := validItem()
		item.AddAsset("data", &Asset{Type: MediaTypeCOG})
		err := item.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `assets["data"]`)
	})

	t.Run("undeclared extension fields", func(t *testing.T) {
		item := validItem()
		item.SetProperty("proj:epsg", 4326)
		err := item.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), ExtensionProjection)

		item.DeclareExtension(ExtensionProjection)
		require.NoError(t, item.Validate())
	})

	t.Run("undeclared extension on asset", func(t *testing.T) {
		item := validItem()
		asset := &Asset{Href: "./T_GRAVEL.tif"}
		SetRasterBands(asset, RasterBand{DataType: DataTypeFloat32})
		item.AddAsset("data", asset)

		err := item.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), ExtensionRaster)
	})
}

func TestCollectionValidate(t *testing.T) {
	t.Run("valid collection passes", func(t *testing.T) {
		require.NoError(t, validCollection().Validate())
	})

	t.Run("missing required fields", func(t *testing.T) {
		col := &Collection{}
		err := col.Validate()
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Collection", verr.Kind)
		assert.Contains(t, err.Error(), "license is required")
		assert.Contains(t, err.Error(), "extent is required")
	})

	t.Run("empty spatial extent", func(t *testing.T) {
		col := validCollection()
		col.Extent.Spatial.Bbox = nil
		err := col.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extent.spatial")
	})

	t.Run("bad interval arity", func(t *testing.T) {
		col := validCollection()
		col.Extent.Temporal.Interval = [][]any{{"2000-01-01T00:00:00Z"}}
		err := col.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extent.temporal.interval[0]")
	})

	t.Run("item_assets without the extension declared", func(t *testing.T) {
		col := validCollection()
		col.SetField("item_assets", map[string]any{})
		err := col.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), ExtensionItemAssets)
	})

	t.Run("undeclared summary extension", func(t *testing.T) {
		col := validCollection()
		col.SetSummary("proj:epsg", []int{4326})
		err := col.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), ExtensionProjection)
	})
}

func TestCatalogValidate(t *testing.T) {
	t.Run("valid catalog passes", func(t *testing.T) {
		require.NoError(t, validCatalog().Validate())
	})

	t.Run("missing required fields", func(t *testing.T) {
		cat := &Catalog{}
		err := cat.Validate()
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Catalog", verr.Kind)
		assert.Contains(t, err.Error(), "id is required")
		assert.Contains(t, err.Error(), "description is required")
	})

	t.Run("link without rel", func(t *testing.T) {
		cat := validCatalog()
		cat.AddLink(&Link{Href: "./hwsd/collection.json"})
		err := cat.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing rel")
	})

	t.Run("undeclared extension fields", func(t *testing.T) {
		cat := validCatalog()
		cat.SetField("sci:doi", "10.3334/ORNLDAAC/1247")
		err := cat.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), ExtensionScientific)

		cat.DeclareExtension(ExtensionScientific)
		require.NoError(t, cat.Validate())
	})
}
