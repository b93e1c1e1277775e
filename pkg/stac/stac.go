package stac

// Version is the STAC specification version written into every document.
const Version = "1.0.0"

// Object types for the STAC entities this package authors.
const (
	ItemType       = "Feature"
	CollectionType = "Collection"
	CatalogType    = "Catalog"
)

// Media types commonly referenced by STAC assets and links.
const (
	MediaTypeJSON    = "application/json"
	MediaTypeGeoJSON = "application/geo+json"
	MediaTypePDF     = "application/pdf"
	MediaTypePNG     = "image/png"
	MediaTypeCOG     = "image/tiff; application=geotiff; profile=cloud-optimized"
	MediaTypeGeoTIFF = "image/tiff; application=geotiff"
)

// Link relation types used by this package.
const (
	RelSelf    = "self"
	RelRoot    = "root"
	RelParent  = "parent"
	RelItem    = "item"
	RelLicense = "license"
	RelVia     = "via"
	RelCiteAs  = "cite-as"
)

// Provider roles defined by the STAC specification.
const (
	RoleHost      = "host"
	RoleLicensor  = "licensor"
	RoleProcessor = "processor"
	RoleProducer  = "producer"
)
