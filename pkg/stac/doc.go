// Package stac provides types for authoring SpatioTemporal Asset Catalog
// (STAC) documents.
//
// The Item, Collection, Link, and Asset types support "foreign members" -
// JSON fields not defined in the STAC core specification, such as the
// fields contributed by STAC extensions. Foreign members live in the
// AdditionalFields map and survive marshaling in both directions, so a
// document written by this package round-trips without losing extension
// data.
//
// Example usage:
//
//	item := stac.NewItem("hwsd")
//	item.SetProperty("datetime", "2000-01-01T00:00:00Z")
//	item.DeclareExtension(stac.ExtensionProjection)
//	item.SetField("proj:epsg", 4326)
//
//	if err := item.Validate(); err != nil {
//	    return err
//	}
//	return stac.WriteDocument("item.json", item)
package stac
