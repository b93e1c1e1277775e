package stac

import (
	"encoding/json"
	"sort"
)

// Item represents a STAC Item (GeoJSON Feature) with support for foreign members.
type Item struct {
	Type       string            `json:"type"`
	Version    string            `json:"stac_version"`
	Extensions []string          `json:"stac_extensions,omitempty"`
	Id         string            `json:"id"`
	Geometry   any               `json:"geometry"`
	Bbox       []float64         `json:"bbox,omitempty"`
	Properties map[string]any    `json:"properties"`
	Links      []*Link           `json:"links"`
	Assets     map[string]*Asset `json:"assets"`
	Collection string            `json:"collection,omitempty"`

	// AdditionalFields holds foreign members not defined in the STAC spec.
	AdditionalFields map[string]any `json:"-"`
}

// NewItem returns an Item with the core members initialised for authoring.
func NewItem(id string) *Item {
	return &Item{
		Type:       ItemType,
		Version:    Version,
		Id:         id,
		Properties: make(map[string]any),
		Links:      []*Link{},
		Assets:     make(map[string]*Asset),
	}
}

// SetProperty sets a key in the item properties map.
func (item *Item) SetProperty(key string, value any) {
	if item.Properties == nil {
		item.Properties = make(map[string]any)
	}
	item.Properties[key] = value
}

// SetField sets a foreign member on the item itself.
func (item *Item) SetField(key string, value any) {
	if item.AdditionalFields == nil {
		item.AdditionalFields = make(map[string]any)
	}
	item.AdditionalFields[key] = value
}

// AddLink appends a link to the item.
func (item *Item) AddLink(link *Link) {
	item.Links = append(item.Links, link)
}

// GetLink returns the first link with the specified rel type, or nil if not found.
func (item *Item) GetLink(rel string) *Link {
	for _, link := range item.Links {
		if link.Rel == rel {
			return link
		}
	}
	return nil
}

// AddAsset registers an asset under the given key.
func (item *Item) AddAsset(key string, asset *Asset) {
	if item.Assets == nil {
		item.Assets = make(map[string]*Asset)
	}
	item.Assets[key] = asset
}

// DeclareExtension records an extension schema URI in stac_extensions.
// Duplicates are ignored and the list is kept sorted.
func (item *Item) DeclareExtension(uri string) {
	item.Extensions = declareExtension(item.Extensions, uri)
}

// HasExtension reports whether the item declares the given schema URI.
func (item *Item) HasExtension(uri string) bool {
	return hasExtension(item.Extensions, uri)
}

func declareExtension(uris []string, uri string) []string {
	if hasExtension(uris, uri) {
		return uris
	}
	uris = append(uris, uri)
	sort.Strings(uris)
	return uris
}

func hasExtension(uris []string, uri string) bool {
	for _, candidate := range uris {
		if candidate == uri {
			return true
		}
	}
	return false
}

var knownItemFields = map[string]bool{
	"type": true, "stac_version": true, "stac_extensions": true,
	"id": true, "geometry": true, "bbox": true, "properties": true,
	"links": true, "assets": true, "collection": true,
}

// UnmarshalJSON implements custom unmarshaling to capture foreign members.
func (item *Item) UnmarshalJSON(data []byte) error {
	type itemAlias Item
	var aux itemAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*item = Item(aux)

	fields, err := collectForeignMembers(data, knownItemFields)
	if err != nil {
		return err
	}
	item.AdditionalFields = fields
	return nil
}

// MarshalJSON implements custom marshaling to include foreign members.
func (item Item) MarshalJSON() ([]byte, error) {
	type itemAlias Item
	return marshalWithForeignMembers(itemAlias(item), item.AdditionalFields)
}

func collectForeignMembers(data []byte, known map[string]bool) (map[string]any, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	for key, val := range raw {
		if known[key] {
			continue
		}
		var decoded any
		if err := json.Unmarshal(val, &decoded); err != nil {
			continue
		}
		fields[key] = decoded
	}
	return fields, nil
}

func marshalWithForeignMembers(alias any, fields map[string]any) ([]byte, error) {
	data, err := json.Marshal(alias)
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return data, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}

	for key, val := range fields {
		encoded, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		obj[key] = encoded
	}

	return json.Marshal(obj)
}
