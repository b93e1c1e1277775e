package stac

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports every structural problem found in a document.
type ValidationError struct {
	Kind     string
	Id       string
	Problems []string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("invalid STAC %s %q: %s", e.Kind, e.Id, strings.Join(e.Problems, "; "))
}

// extensionPrefixes maps foreign-member prefixes to the schema URI that
// must be declared when a field with that prefix is present.
var extensionPrefixes = map[string]string{
	"proj:":   ExtensionProjection,
	"sci:":    ExtensionScientific,
	"raster:": ExtensionRaster,
}

// Validate checks the item against the structural rules of the STAC core
// specification and the extensions this package authors. It returns a
// *ValidationError listing every violation, or nil.
func (item *Item) Validate() error {
	var problems []string

	if item.Type != ItemType {
		problems = append(problems, fmt.Sprintf("type must be %q, got %q", ItemType, item.Type))
	}
	if item.Version == "" {
		problems = append(problems, "stac_version is required")
	}
	if item.Id == "" {
		problems = append(problems, "id is required")
	}
	if item.Geometry == nil {
		problems = append(problems, "geometry is required")
	} else if n := len(item.Bbox); n != 4 && n != 6 {
		problems = append(problems, fmt.Sprintf("bbox must have 4 or 6 values when geometry is set, got %d", n))
	}

	if item.Properties == nil {
		problems = append(problems, "properties is required")
	} else if item.Properties["datetime"] == nil {
		_, hasStart := item.Properties["start_datetime"]
		_, hasEnd := item.Properties["end_datetime"]
		if !hasStart || !hasEnd {
			problems = append(problems, "properties must carry datetime, or both start_datetime and end_datetime")
		}
	}

	problems = append(problems, validateLinks(item.Links)...)
	problems = append(problems, validateAssets(item.Assets)...)

	undeclared := make(map[string]bool)
	collectUndeclaredExtensions(item.Properties, item.Extensions, undeclared)
	collectUndeclaredExtensions(item.AdditionalFields, item.Extensions, undeclared)
	for _, asset := range item.Assets {
		if asset != nil {
			collectUndeclaredExtensions(asset.AdditionalFields, item.Extensions, undeclared)
		}
	}
	problems = append(problems, undeclaredProblems(undeclared)...)

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Kind: "Item", Id: item.Id, Problems: problems}
}

// Validate checks the collection against the structural rules of the STAC
// core specification and the extensions this package authors. It returns
// a *ValidationError listing every violation, or nil.
func (col *Collection) Validate() error {
	var problems []string

	if col.Type != CollectionType {
		problems = append(problems, fmt.Sprintf("type must be %q, got %q", CollectionType, col.Type))
	}
	if col.Version == "" {
		problems = append(problems, "stac_version is required")
	}
	if col.Id == "" {
		problems = append(problems, "id is required")
	}
	if col.Description == "" {
		problems = append(problems, "description is required")
	}
	if col.License == "" {
		problems = append(problems, "license is required")
	}

	switch {
	case col.Extent == nil:
		problems = append(problems, "extent is required")
	default:
		if col.Extent.Spatial == nil || len(col.Extent.Spatial.Bbox) == 0 {
			problems = append(problems, "extent.spatial must carry at least one bbox")
		} else {
			for i, bbox := range col.Extent.Spatial.Bbox {
				if n := len(bbox); n != 4 && n != 6 {
					problems = append(problems, fmt.Sprintf("extent.spatial.bbox[%d] must have 4 or 6 values, got %d", i, n))
				}
			}
		}
		if col.Extent.Temporal == nil || len(col.Extent.Temporal.Interval) == 0 {
			problems = append(problems, "extent.temporal must carry at least one interval")
		} else {
			for i, interval := range col.Extent.Temporal.Interval {
				if len(interval) != 2 {
					problems = append(problems, fmt.Sprintf("extent.temporal.interval[%d] must have 2 values, got %d", i, len(interval)))
				}
			}
		}
	}

	problems = append(problems, validateLinks(col.Links)...)
	problems = append(problems, validateAssets(col.Assets)...)

	undeclared := make(map[string]bool)
	collectUndeclaredExtensions(col.AdditionalFields, col.Extensions, undeclared)
	collectUndeclaredExtensions(col.Summaries, col.Extensions, undeclared)
	for _, asset := range col.Assets {
		if asset != nil {
			collectUndeclaredExtensions(asset.AdditionalFields, col.Extensions, undeclared)
		}
	}
	if _, ok := col.AdditionalFields["item_assets"]; ok && !col.HasExtension(ExtensionItemAssets) {
		undeclared[ExtensionItemAssets] = true
	}
	problems = append(problems, undeclaredProblems(undeclared)...)

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Kind: "Collection", Id: col.Id, Problems: problems}
}

// Validate checks the catalog against the structural rules of the STAC
// core specification. It returns a *ValidationError listing every
// violation, or nil.
func (cat *Catalog) Validate() error {
	var problems []string

	if cat.Type != CatalogType {
		problems = append(problems, fmt.Sprintf("type must be %q, got %q", CatalogType, cat.Type))
	}
	if cat.Version == "" {
		problems = append(problems, "stac_version is required")
	}
	if cat.Id == "" {
		problems = append(problems, "id is required")
	}
	if cat.Description == "" {
		problems = append(problems, "description is required")
	}

	problems = append(problems, validateLinks(cat.Links)...)

	undeclared := make(map[string]bool)
	collectUndeclaredExtensions(cat.AdditionalFields, cat.Extensions, undeclared)
	problems = append(problems, undeclaredProblems(undeclared)...)

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Kind: "Catalog", Id: cat.Id, Problems: problems}
}

func validateLinks(links []*Link) []string {
	var problems []string
	for i, link := range links {
		if link == nil {
			problems = append(problems, fmt.Sprintf("links[%d] is nil", i))
			continue
		}
		if link.Href == "" {
			problems = append(problems, fmt.Sprintf("links[%d] (rel %q) is missing href", i, link.Rel))
		}
		if link.Rel == "" {
			problems = append(problems, fmt.Sprintf("links[%d] (href %q) is missing rel", i, link.Href))
		}
	}
	return problems
}

func validateAssets(assets map[string]*Asset) []string {
	var problems []string
	keys := make([]string, 0, len(assets))
	for key := range assets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		asset := assets[key]
		if asset == nil {
			problems = append(problems, fmt.Sprintf("assets[%q] is nil", key))
			continue
		}
		if asset.Href == "" {
			problems = append(problems, fmt.Sprintf("assets[%q] is missing href", key))
		}
	}
	return problems
}

func collectUndeclaredExtensions(fields map[string]any, declared []string, out map[string]bool) {
	for key := range fields {
		for prefix, uri := range extensionPrefixes {
			if strings.HasPrefix(key, prefix) && !hasExtension(declared, uri) {
				out[uri] = true
			}
		}
	}
}

func undeclaredProblems(undeclared map[string]bool) []string {
	if len(undeclared) == 0 {
		return nil
	}
	uris := make([]string, 0, len(undeclared))
	for uri := range undeclared {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	problems := make([]string, 0, len(uris))
	for _, uri := range uris {
		problems = append(problems, fmt.Sprintf("extension fields present but %s is not declared in stac_extensions", uri))
	}
	return problems
}
