package stac

// Schema URIs for the STAC extensions this package can author.
const (
	ExtensionProjection = "https://stac-extensions.github.io/projection/v1.1.0/schema.json"
	ExtensionScientific = "https://stac-extensions.github.io/scientific/v1.0.0/schema.json"
	ExtensionRaster     = "https://stac-extensions.github.io/raster/v1.1.0/schema.json"
	ExtensionItemAssets = "https://stac-extensions.github.io/item-assets/v1.0.0/schema.json"
)

// Projection carries the fields of the projection extension. Zero values
// are omitted when the projection is applied.
type Projection struct {
	EPSG      int
	WKT2      string
	Bbox      []float64
	Geometry  any
	Shape     []int
	Transform []float64
}

// Fields returns the projection as "proj:"-prefixed foreign members.
func (p Projection) Fields() map[string]any {
	fields := make(map[string]any)
	if p.EPSG != 0 {
		fields["proj:epsg"] = p.EPSG
	}
	if p.WKT2 != "" {
		fields["proj:wkt2"] = p.WKT2
	}
	if p.Bbox != nil {
		fields["proj:bbox"] = p.Bbox
	}
	if p.Geometry != nil {
		fields["proj:geometry"] = p.Geometry
	}
	if p.Shape != nil {
		fields["proj:shape"] = p.Shape
	}
	if p.Transform != nil {
		fields["proj:transform"] = p.Transform
	}
	return fields
}

// ApplyToItem writes the projection into the item properties and declares
// the extension.
func (p Projection) ApplyToItem(item *Item) {
	for key, value := range p.Fields() {
		item.SetProperty(key, value)
	}
	item.DeclareExtension(ExtensionProjection)
}

// ApplyToAsset writes the projection into the asset foreign members. The
// owning item or collection must declare the extension itself.
func (p Projection) ApplyToAsset(asset *Asset) {
	for key, value := range p.Fields() {
		asset.SetField(key, value)
	}
}

// SummarizeCollection records the EPSG code in the collection summaries
// and declares the extension.
func (p Projection) SummarizeCollection(col *Collection) {
	col.SetSummary("proj:epsg", []int{p.EPSG})
	col.DeclareExtension(ExtensionProjection)
}

// Scientific carries the fields of the scientific citation extension.
type Scientific struct {
	DOI      string
	Citation string
}

// DOIResolverBase is the resolver used to derive cite-as links from DOIs.
const DOIResolverBase = "https://doi.org/"

func (s Scientific) citeAsLink() *Link {
	if s.DOI == "" {
		return nil
	}
	return &Link{Rel: RelCiteAs, Href: DOIResolverBase + s.DOI}
}

// ApplyToItem writes the citation fields into the item properties,
// declares the extension, and adds a cite-as link for the DOI.
func (s Scientific) ApplyToItem(item *Item) {
	if s.DOI != "" {
		item.SetProperty("sci:doi", s.DOI)
	}
	if s.Citation != "" {
		item.SetProperty("sci:citation", s.Citation)
	}
	if link := s.citeAsLink(); link != nil && item.GetLink(RelCiteAs) == nil {
		item.AddLink(link)
	}
	item.DeclareExtension(ExtensionScientific)
}

// ApplyToCollection writes the citation fields as collection foreign
// members, declares the extension, and adds a cite-as link for the DOI.
func (s Scientific) ApplyToCollection(col *Collection) {
	if s.DOI != "" {
		col.SetField("sci:doi", s.DOI)
	}
	if s.Citation != "" {
		col.SetField("sci:citation", s.Citation)
	}
	if link := s.citeAsLink(); link != nil && col.GetLink(RelCiteAs) == nil {
		col.AddLink(link)
	}
	col.DeclareExtension(ExtensionScientific)
}

// DataType is a raster extension pixel data type.
type DataType string

// Raster extension data types.
const (
	DataTypeInt8    DataType = "int8"
	DataTypeInt16   DataType = "int16"
	DataTypeInt32   DataType = "int32"
	DataTypeUint8   DataType = "uint8"
	DataTypeUint16  DataType = "uint16"
	DataTypeUint32  DataType = "uint32"
	DataTypeFloat32 DataType = "float32"
	DataTypeFloat64 DataType = "float64"
)

// Sampling is a raster extension pixel sampling model.
type Sampling string

// Raster extension sampling values.
const (
	SamplingArea  Sampling = "area"
	SamplingPoint Sampling = "point"
)

// RasterBand describes one band of a raster asset.
type RasterBand struct {
	Nodata            *float64 `json:"nodata,omitempty"`
	Sampling          Sampling `json:"sampling,omitempty"`
	DataType          DataType `json:"data_type,omitempty"`
	SpatialResolution float64  `json:"spatial_resolution,omitempty"`
	Unit              string   `json:"unit,omitempty"`
}

// Nodata wraps a nodata value for use in a RasterBand. Zero is a valid
// nodata value, so the field is a pointer.
func Nodata(value float64) *float64 {
	return &value
}

// SetRasterBands writes the band list into the asset foreign members. The
// owning item or collection must declare the raster extension itself.
func SetRasterBands(asset *Asset, bands ...RasterBand) {
	asset.SetField("raster:bands", bands)
}

// AssetDefinition describes an item asset in a collection's item_assets
// map, per the item-assets extension.
type AssetDefinition map[string]any

// SetItemAssets writes the item_assets map onto the collection and
// declares the item-assets extension.
func (col *Collection) SetItemAssets(defs map[string]AssetDefinition) {
	col.SetField("item_assets", defs)
	col.DeclareExtension(ExtensionItemAssets)
}
