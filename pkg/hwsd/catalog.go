package hwsd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stactools-packages/hwsd/pkg/stac"
)

// CollectionJSON is the file name of a saved collection document.
const CollectionJSON = "collection.json"

// SaveCollection validates the collection and writes it to
// <destDir>/collection.json, the layout of a self-contained published
// catalog: a relative root link plus an absolute self href on the root
// document. It returns the written path.
func SaveCollection(col *stac.Collection, destDir string) (string, error) {
	path := filepath.Join(destDir, CollectionJSON)

	if col.GetLink(stac.RelRoot) == nil {
		col.AddLink(&stac.Link{
			Rel:  stac.RelRoot,
			Href: "./" + CollectionJSON,
			Type: stac.MediaTypeJSON,
		})
	}
	if err := addSelfLink(col, path); err != nil {
		return "", err
	}

	if err := col.Validate(); err != nil {
		return "", err
	}

	if err := stac.WriteDocument(path, col); err != nil {
		return "", fmt.Errorf("save collection: %w", err)
	}
	return path, nil
}

// addSelfLink sets a self link carrying the absolute path the collection
// is written to. An existing self link is left alone.
func addSelfLink(col *stac.Collection, path string) error {
	if col.GetLink(stac.RelSelf) != nil {
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve self href: %w", err)
	}
	col.AddLink(&stac.Link{Rel: stac.RelSelf, Href: abs, Type: stac.MediaTypeJSON})
	return nil
}

// SaveItem validates the item and writes it to dest. When dest is an
// existing directory (or ends with a path separator) the file is named
// <item-id>.json inside it. It returns the written path.
func SaveItem(item *stac.Item, dest string) (string, error) {
	path := dest
	if info, err := os.Stat(dest); (err == nil && info.IsDir()) || strings.HasSuffix(dest, string(os.PathSeparator)) {
		path = filepath.Join(dest, item.Id+".json")
	}

	if err := item.Validate(); err != nil {
		return "", err
	}

	if err := stac.WriteDocument(path, item); err != nil {
		return "", fmt.Errorf("save item: %w", err)
	}
	return path, nil
}

// Populate builds the collection, creates the item for the given source,
// links the two with relative hrefs (plus an absolute self href on the
// root collection), and writes both under destDir:
//
//	<destDir>/collection.json
//	<destDir>/<item-id>/<item-id>.json
//
// Both documents are validated before anything is written. The written
// paths are returned in collection, item order.
func Populate(source, destDir string) ([]string, error) {
	col := CreateCollection()

	item, err := CreateItem(source)
	if err != nil {
		return nil, err
	}

	colPath := filepath.Join(destDir, CollectionJSON)

	item.Collection = col.Id
	itemHref := "./" + item.Id + "/" + item.Id + ".json"
	col.AddLink(&stac.Link{Rel: stac.RelItem, Href: itemHref, Type: stac.MediaTypeGeoJSON})
	col.AddLink(&stac.Link{Rel: stac.RelRoot, Href: "./" + CollectionJSON, Type: stac.MediaTypeJSON})
	if err := addSelfLink(col, colPath); err != nil {
		return nil, err
	}
	item.AddLink(&stac.Link{Rel: stac.RelRoot, Href: "../" + CollectionJSON, Type: stac.MediaTypeJSON})
	item.AddLink(&stac.Link{Rel: stac.RelParent, Href: "../" + CollectionJSON, Type: stac.MediaTypeJSON})

	if err := col.Validate(); err != nil {
		return nil, err
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := stac.WriteDocument(colPath, col); err != nil {
		return nil, fmt.Errorf("save collection: %w", err)
	}

	itemPath := filepath.Join(destDir, item.Id, item.Id+".json")
	if err := stac.WriteDocument(itemPath, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	return []string{colPath, itemPath}, nil
}
