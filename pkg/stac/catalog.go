package stac

import "encoding/json"

// Catalog represents a STAC Catalog with support for foreign members.
type Catalog struct {
	Type        string   `json:"type"`
	Version     string   `json:"stac_version"`
	Extensions  []string `json:"stac_extensions,omitempty"`
	Id          string   `json:"id"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description"`
	Links       []*Link  `json:"links"`

	// AdditionalFields holds foreign members not defined in the STAC spec.
	AdditionalFields map[string]any `json:"-"`
}

// NewCatalog returns a Catalog with the core members initialised for authoring.
func NewCatalog(id string) *Catalog {
	return &Catalog{
		Type:    CatalogType,
		Version: Version,
		Id:      id,
		Links:   []*Link{},
	}
}

// SetField sets a foreign member on the catalog.
func (cat *Catalog) SetField(key string, value any) {
	if cat.AdditionalFields == nil {
		cat.AdditionalFields = make(map[string]any)
	}
	cat.AdditionalFields[key] = value
}

// AddLink appends a link to the catalog.
func (cat *Catalog) AddLink(link *Link) {
	cat.Links = append(cat.Links, link)
}

// GetLink returns the first link with the specified rel type, or nil if not found.
func (cat *Catalog) GetLink(rel string) *Link {
	for _, link := range cat.Links {
		if link.Rel == rel {
			return link
		}
	}
	return nil
}

// GetLinks returns all links with the specified rel type.
func (cat *Catalog) GetLinks(rel string) []*Link {
	var result []*Link
	for _, link := range cat.Links {
		if link.Rel == rel {
			result = append(result, link)
		}
	}
	return result
}

// DeclareExtension records an extension schema URI in stac_extensions.
// Duplicates are ignored and the list is kept sorted.
func (cat *Catalog) DeclareExtension(uri string) {
	cat.Extensions = declareExtension(cat.Extensions, uri)
}

// HasExtension reports whether the catalog declares the given schema URI.
func (cat *Catalog) HasExtension(uri string) bool {
	return hasExtension(cat.Extensions, uri)
}

var knownCatalogFields = map[string]bool{
	"type": true, "stac_version": true, "stac_extensions": true,
	"id": true, "title": true, "description": true, "links": true,
}

// UnmarshalJSON implements custom unmarshaling to capture foreign members.
func (cat *Catalog) UnmarshalJSON(data []byte) error {
	type catalogAlias Catalog
	var aux catalogAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*cat = Catalog(aux)

	fields, err := collectForeignMembers(data, knownCatalogFields)
	if err != nil {
		return err
	}
	cat.AdditionalFields = fields
	return nil
}

// MarshalJSON implements custom marshaling to include foreign members.
func (cat Catalog) MarshalJSON() ([]byte, error) {
	type catalogAlias Catalog
	return marshalWithForeignMembers(catalogAlias(cat), cat.AdditionalFields)
}
