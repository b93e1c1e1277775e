package hwsd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stactools-packages/hwsd/pkg/stac"
)

func TestCreateCollection(t *testing.T) {
	col := CreateCollection()

	assert.Equal(t, ID, col.Id)
	assert.Equal(t, Title, col.Title)
	assert.Equal(t, License, col.License)
	assert.Equal(t, DOI, col.AdditionalFields["sci:doi"])
	assert.Equal(t, Citation, col.AdditionalFields["sci:citation"])
	assert.Len(t, col.Providers, 8)
	assert.Equal(t, []int{EPSG}, col.Summaries["proj:epsg"])

	t.Run("declares its extensions", func(t *testing.T) {
		for _, uri := range []string{
			stac.ExtensionProjection,
			stac.ExtensionScientific,
			stac.ExtensionRaster,
			stac.ExtensionItemAssets,
		} {
			assert.True(t, col.HasExtension(uri), uri)
		}
	})

	t.Run("links", func(t *testing.T) {
		require.NotNil(t, col.GetLink(stac.RelLicense))
		assert.Len(t, col.GetLinks(stac.RelVia), 3)

		citeAs := col.GetLink(stac.RelCiteAs)
		require.NotNil(t, citeAs)
		assert.Equal(t, "https://doi.org/"+DOI, citeAs.Href)
	})

	t.Run("collection assets", func(t *testing.T) {
		require.Contains(t, col.Assets, "documentation")
		require.Contains(t, col.Assets, "thumbnail")
		assert.Equal(t, stac.MediaTypePDF, col.Assets["documentation"].Type)
		assert.Equal(t, stac.MediaTypePNG, col.Assets["thumbnail"].Type)
	})

	t.Run("one item-asset definition per parameter plus documentation", func(t *testing.T) {
		defs, ok := col.AdditionalFields["item_assets"].(map[string]stac.AssetDefinition)
		require.True(t, ok)
		assert.Len(t, defs, 28)

		gravel, ok := defs["T_GRAVEL"]
		require.True(t, ok)
		assert.Equal(t, stac.MediaTypeCOG, gravel["type"])
		assert.Equal(t, "% volume", gravel["units"])
		assert.Equal(t, EPSG, gravel["proj:epsg"])
	})

	t.Run("validates", func(t *testing.T) {
		require.NoError(t, col.Validate())
	})
}

func TestCreateItemFromDirectory(t *testing.T) {
	item, err := CreateItem("path/to/assets/")
	require.NoError(t, err)

	assert.Equal(t, ID, item.Id)
	assert.Equal(t, DOI, item.Properties["sci:doi"])
	assert.Equal(t, EPSG, item.Properties["proj:epsg"])
	assert.Equal(t, TemporalExtent[0], item.Properties["start_datetime"])
	assert.Equal(t, TemporalExtent[1], item.Properties["end_datetime"])
	assert.Len(t, item.Assets, 28)

	t.Run("data asset hrefs resolve against the source", func(t *testing.T) {
		gravel, ok := item.Assets["T_GRAVEL"]
		require.True(t, ok)
		assert.Equal(t, "path/to/assets/T_GRAVEL.tif", gravel.Href)
		assert.Equal(t, "% volume", gravel.AdditionalFields["units"])
		assert.Equal(t, stac.MediaTypeCOG, gravel.Type)
	})

	t.Run("validates", func(t *testing.T) {
		require.NoError(t, item.Validate())
	})
}

func TestCreateItemSingleAsset(t *testing.T) {
	t.Run("classification raster", func(t *testing.T) {
		item, err := CreateItem("data-files/AWC_CLASS.tif")
		require.NoError(t, err)

		assert.Equal(t, "AWC_CLASS", item.Id)
		assert.Equal(t, DOI, item.Properties["sci:doi"])
		assert.Equal(t, EPSG, item.Properties["proj:epsg"])
		assert.Len(t, item.Assets, 2)
		require.NoError(t, item.Validate())
	})

	t.Run("measurement raster", func(t *testing.T) {
		item, err := CreateItem("data-files/T_GRAVEL.tif")
		require.NoError(t, err)

		assert.Equal(t, "T_GRAVEL", item.Id)
		assert.Len(t, item.Assets, 2)

		data, ok := item.Assets["data"]
		require.True(t, ok)
		assert.Equal(t, "data-files/T_GRAVEL.tif", data.Href)
		require.NoError(t, item.Validate())
	})

	t.Run("unknown parameter fails", func(t *testing.T) {
		_, err := CreateItem("data-files/NOT_A_PARAMETER.tif")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NOT_A_PARAMETER")
	})
}

func TestAssetName(t *testing.T) {
	cases := map[string]string{
		"T_GRAVEL.tif":                           "T_GRAVEL",
		"/data/hwsd/AWC_CLASS.nc4":               "AWC_CLASS",
		"https://example.com/hwsd/MU_GLOBAL.tif": "MU_GLOBAL",
		"path/to/assets/":                        "assets",
	}
	for href, want := range cases {
		assert.Equal(t, want, AssetName(href), href)
	}
}

func TestGeometry(t *testing.T) {
	geom := Geometry()
	assert.Equal(t, "Polygon", geom["type"])

	rings, ok := geom["coordinates"].([][][]float64)
	require.True(t, ok)
	require.Len(t, rings, 1)

	ring := rings[0]
	require.Len(t, ring, 5)
	assert.Equal(t, ring[0], ring[4], "ring must be closed")
}

func TestParameterByName(t *testing.T) {
	param, ok := ParameterByName("AWT_T_SOC")
	require.True(t, ok)
	assert.Equal(t, stac.DataTypeFloat64, param.DataType)

	_, ok = ParameterByName("missing")
	assert.False(t, ok)
}
