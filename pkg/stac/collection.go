package stac

import "encoding/json"

// Collection represents a STAC Collection with support for foreign members.
type Collection struct {
	Type        string            `json:"type"`
	Version     string            `json:"stac_version"`
	Extensions  []string          `json:"stac_extensions,omitempty"`
	Id          string            `json:"id"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description"`
	Keywords    []string          `json:"keywords,omitempty"`
	License     string            `json:"license"`
	Providers   []*Provider       `json:"providers,omitempty"`
	Extent      *Extent           `json:"extent"`
	Summaries   map[string]any    `json:"summaries,omitempty"`
	Links       []*Link           `json:"links"`
	Assets      map[string]*Asset `json:"assets,omitempty"`

	// AdditionalFields holds foreign members not defined in the STAC spec.
	AdditionalFields map[string]any `json:"-"`
}

// NewCollection returns a Collection with the core members initialised for authoring.
func NewCollection(id string) *Collection {
	return &Collection{
		Type:    CollectionType,
		Version: Version,
		Id:      id,
		Links:   []*Link{},
	}
}

// SetField sets a foreign member on the collection.
func (col *Collection) SetField(key string, value any) {
	if col.AdditionalFields == nil {
		col.AdditionalFields = make(map[string]any)
	}
	col.AdditionalFields[key] = value
}

// SetSummary sets a key in the collection summaries.
func (col *Collection) SetSummary(key string, value any) {
	if col.Summaries == nil {
		col.Summaries = make(map[string]any)
	}
	col.Summaries[key] = value
}

// AddLink appends a link to the collection.
func (col *Collection) AddLink(link *Link) {
	col.Links = append(col.Links, link)
}

// GetLink returns the first link with the specified rel type, or nil if not found.
func (col *Collection) GetLink(rel string) *Link {
	for _, link := range col.Links {
		if link.Rel == rel {
			return link
		}
	}
	return nil
}

// GetLinks returns all links with the specified rel type.
func (col *Collection) GetLinks(rel string) []*Link {
	var result []*Link
	for _, link := range col.Links {
		if link.Rel == rel {
			result = append(result, link)
		}
	}
	return result
}

// AddAsset registers a collection-level asset under the given key.
func (col *Collection) AddAsset(key string, asset *Asset) {
	if col.Assets == nil {
		col.Assets = make(map[string]*Asset)
	}
	col.Assets[key] = asset
}

// DeclareExtension records an extension schema URI in stac_extensions.
// Duplicates are ignored and the list is kept sorted.
func (col *Collection) DeclareExtension(uri string) {
	col.Extensions = declareExtension(col.Extensions, uri)
}

// HasExtension reports whether the collection declares the given schema URI.
func (col *Collection) HasExtension(uri string) bool {
	return hasExtension(col.Extensions, uri)
}

var knownCollectionFields = map[string]bool{
	"type": true, "stac_version": true, "stac_extensions": true,
	"id": true, "title": true, "description": true, "keywords": true,
	"license": true, "providers": true, "extent": true, "summaries": true,
	"links": true, "assets": true,
}

// UnmarshalJSON implements custom unmarshaling to capture foreign members.
func (col *Collection) UnmarshalJSON(data []byte) error {
	type collectionAlias Collection
	var aux collectionAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*col = Collection(aux)

	fields, err := collectForeignMembers(data, knownCollectionFields)
	if err != nil {
		return err
	}
	col.AdditionalFields = fields
	return nil
}

// MarshalJSON implements custom marshaling to include foreign members.
func (col Collection) MarshalJSON() ([]byte, error) {
	type collectionAlias Collection
	return marshalWithForeignMembers(collectionAlias(col), col.AdditionalFields)
}
