// Package hwsd generates STAC metadata describing the regridded
// Harmonized World Soil Database v1.2.
package hwsd

import (
	"fmt"
	"path"
	"strings"

	"github.com/stactools-packages/hwsd/pkg/stac"
)

// AssetName derives the soil parameter name from a data asset href by
// stripping the directory and the raster suffix.
func AssetName(href string) string {
	name := path.Base(strings.TrimSuffix(href, "/"))
	name = strings.TrimSuffix(name, ".nc4")
	name = strings.TrimSuffix(name, ".tif")
	return name
}

// isRasterHref reports whether the href points at a single raster file
// rather than a directory of item assets.
func isRasterHref(href string) bool {
	return strings.HasSuffix(href, ".tif") || strings.HasSuffix(href, ".nc4")
}

// Geometry returns the global footprint polygon. The ring follows the
// bounding box vertex order of the upstream tooling: it starts at
// (east, north) and closes clockwise through the antimeridian corners.
func Geometry() map[string]any {
	west, north, east, south := SpatialExtent[0], SpatialExtent[1], SpatialExtent[2], SpatialExtent[3]
	ring := [][]float64{
		{east, north},
		{east, south},
		{west, south},
		{west, north},
		{east, north},
	}
	return map[string]any{
		"type":        "Polygon",
		"coordinates": [][][]float64{ring},
	}
}

func projection() stac.Projection {
	return stac.Projection{
		EPSG:      EPSG,
		WKT2:      WKT2,
		Bbox:      SpatialExtent,
		Geometry:  Geometry(),
		Shape:     Shape,
		Transform: Transform,
	}
}

func scientific() stac.Scientific {
	return stac.Scientific{DOI: DOI, Citation: Citation}
}

func homepageLinks() []*stac.Link {
	return []*stac.Link{
		{Rel: stac.RelVia, Href: HomepageFAO, Title: "Homepage"},
		{Rel: stac.RelVia, Href: HomepageIIASA, Title: "Homepage, Alternate"},
		{Rel: stac.RelVia, Href: HomepageRegridded, Title: "Homepage, Regridded"},
	}
}

func documentationAsset(title string) *stac.Asset {
	return &stac.Asset{
		Type:  stac.MediaTypePDF,
		Roles: []string{"metadata"},
		Title: title,
		Href:  Documentation,
	}
}

// CreateCollection builds the HWSD STAC Collection: global extent,
// providers, license and homepage links, projection summaries,
// scientific citation, documentation and thumbnail assets, and one
// item-asset definition per soil parameter plus the documentation.
func CreateCollection() *stac.Collection {
	col := stac.NewCollection(ID)
	col.Title = Title
	col.Description = Description
	col.Keywords = Keywords
	col.License = License
	col.Providers = Providers
	col.Extent = stac.NewExtent(SpatialExtent, TemporalExtent[0], TemporalExtent[1])

	col.AddLink(LicenseLink)
	for _, link := range homepageLinks() {
		col.AddLink(link)
	}

	proj := projection()
	proj.SummarizeCollection(col)
	scientific().ApplyToCollection(col)

	col.AddAsset("documentation", documentationAsset("Documentation"))
	col.AddAsset("thumbnail", &stac.Asset{
		Type:  stac.MediaTypePNG,
		Roles: []string{"thumbnail"},
		Title: "Thumbnail",
		Href:  Thumbnail,
	})

	defs := make(map[string]stac.AssetDefinition, len(Parameters)+1)
	defs["documentation"] = stac.AssetDefinition{
		"type":  stac.MediaTypePDF,
		"roles": []string{"metadata"},
		"title": "Documentation",
	}
	projFields := proj.Fields()
	for _, param := range Parameters {
		def := stac.AssetDefinition{
			"type":        stac.MediaTypeCOG,
			"roles":       []string{"data"},
			"title":       param.Name,
			"description": param.Description,
			"units":       param.Units,
			"raster:bands": []stac.RasterBand{{
				Nodata:   stac.Nodata(NoData),
				Sampling: stac.SamplingArea,
				DataType: param.DataType,
			}},
		}
		for key, value := range projFields {
			def[key] = value
		}
		defs[param.Name] = def
	}
	col.SetItemAssets(defs)
	col.DeclareExtension(stac.ExtensionRaster)

	return col
}

// CreateItem builds a STAC Item for the HWSD.
//
// When source is a directory href, the item describes the whole dataset:
// its id is the collection id and it carries one COG asset per soil
// parameter, resolved as <source>/<NAME>.tif, plus the documentation.
// When source points at a single .tif or .nc4 raster, the item describes
// that parameter alone: its id is the parameter name and the raster is
// the only data asset.
func CreateItem(source string) (*stac.Item, error) {
	if isRasterHref(source) {
		return createSingleAssetItem(source)
	}
	return createDatasetItem(source)
}

func newBaseItem(id string) *stac.Item {
	item := stac.NewItem(id)
	item.Geometry = Geometry()
	item.Bbox = SpatialExtent
	item.SetProperty("title", Title)
	item.SetProperty("description", Description)
	item.SetProperty("datetime", TemporalExtent[0])
	item.SetProperty("start_datetime", TemporalExtent[0])
	item.SetProperty("end_datetime", TemporalExtent[1])

	for _, link := range homepageLinks() {
		item.AddLink(link)
	}

	scientific().ApplyToItem(item)
	projection().ApplyToItem(item)

	item.AddAsset("documentation", documentationAsset("HWSD Documentation"))
	return item
}

func createDatasetItem(source string) (*stac.Item, error) {
	item := newBaseItem(ID)
	base := strings.TrimSuffix(source, "/")
	for _, param := range Parameters {
		item.AddAsset(param.Name, dataAsset(param, base+"/"+param.Name+".tif"))
	}
	item.DeclareExtension(stac.ExtensionRaster)
	return item, nil
}

func createSingleAssetItem(source string) (*stac.Item, error) {
	name := AssetName(source)
	param, ok := ParameterByName(name)
	if !ok {
		return nil, fmt.Errorf("hwsd: %q is not a known soil parameter asset", name)
	}

	item := newBaseItem(param.Name)
	item.AddAsset("data", dataAsset(param, source))
	item.DeclareExtension(stac.ExtensionRaster)
	return item, nil
}

func dataAsset(param Parameter, href string) *stac.Asset {
	asset := &stac.Asset{
		Href:        href,
		Type:        stac.MediaTypeCOG,
		Roles:       []string{"data"},
		Title:       param.Name,
		Description: param.Description,
	}
	asset.SetField("units", param.Units)
	if param.Notes != "" {
		asset.SetField("notes", param.Notes)
	}
	projection().ApplyToAsset(asset)
	stac.SetRasterBands(asset, stac.RasterBand{
		Nodata:   stac.Nodata(NoData),
		Sampling: stac.SamplingArea,
		DataType: param.DataType,
	})
	return asset
}
