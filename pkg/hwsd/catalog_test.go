package hwsd

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stactools-packages/hwsd/pkg/stac"
)

func jsonFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestSaveCollection(t *testing.T) {
	dir := t.TempDir()

	written, err := SaveCollection(CreateCollection(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, CollectionJSON), written)

	loaded, err := stac.ReadCollection(written)
	require.NoError(t, err)
	assert.Equal(t, ID, loaded.Id)

	root := loaded.GetLink(stac.RelRoot)
	require.NotNil(t, root)
	assert.Equal(t, "./collection.json", root.Href)

	self := loaded.GetLink(stac.RelSelf)
	require.NotNil(t, self)
	abs, err := filepath.Abs(written)
	require.NoError(t, err)
	assert.Equal(t, abs, self.Href)

	require.NoError(t, loaded.Validate())

	if diff := cmp.Diff(Keywords, loaded.Keywords); diff != "" {
		t.Errorf("keywords mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveItem(t *testing.T) {
	t.Run("explicit file path", func(t *testing.T) {
		dir := t.TempDir()
		item, err := CreateItem("path/to/assets/")
		require.NoError(t, err)

		dest := filepath.Join(dir, "item.json")
		written, err := SaveItem(item, dest)
		require.NoError(t, err)
		assert.Equal(t, dest, written)
	})

	t.Run("directory destination uses the item id", func(t *testing.T) {
		dir := t.TempDir()
		item, err := CreateItem("data-files/T_GRAVEL.tif")
		require.NoError(t, err)

		written, err := SaveItem(item, dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "T_GRAVEL.json"), written)

		loaded, err := stac.ReadItem(written)
		require.NoError(t, err)
		assert.Equal(t, "T_GRAVEL", loaded.Id)
	})

	t.Run("invalid item is not written", func(t *testing.T) {
		dir := t.TempDir()
		_, err := SaveItem(stac.NewItem("broken"), filepath.Join(dir, "broken.json"))
		require.Error(t, err)
		assert.Empty(t, jsonFiles(t, dir))
	})
}

func TestPopulate(t *testing.T) {
	dir := t.TempDir()

	written, err := Populate("path/to/assets/", dir)
	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.Len(t, jsonFiles(t, dir), 2)

	col, err := stac.ReadCollection(filepath.Join(dir, CollectionJSON))
	require.NoError(t, err)
	require.NoError(t, col.Validate())

	itemLink := col.GetLink(stac.RelItem)
	require.NotNil(t, itemLink)
	assert.Equal(t, "./hwsd/hwsd.json", itemLink.Href)

	self := col.GetLink(stac.RelSelf)
	require.NotNil(t, self)
	assert.True(t, filepath.IsAbs(self.Href))
	assert.Equal(t, CollectionJSON, filepath.Base(self.Href))

	item, err := stac.ReadItem(filepath.Join(dir, ID, ID+".json"))
	require.NoError(t, err)
	require.NoError(t, item.Validate())

	assert.Equal(t, ID, item.Collection)
	assert.Len(t, item.Assets, 28)

	for _, rel := range []string{stac.RelRoot, stac.RelParent} {
		link := item.GetLink(rel)
		require.NotNil(t, link, rel)
		assert.Equal(t, "../collection.json", link.Href)
	}
}

func TestPopulateUnknownSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Populate("data-files/NOT_A_PARAMETER.tif", dir)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, CollectionJSON))
	assert.True(t, os.IsNotExist(statErr), "nothing should be written on failure")
}
