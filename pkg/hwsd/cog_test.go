package hwsd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCogArgs(t *testing.T) {
	args := cogArgs("AWC_CLASS.nc4", "out/AWC_CLASS.tif", "Int16")

	assert.Equal(t, "-ot", args[0])
	assert.Equal(t, "Int16", args[1])
	assert.Contains(t, args, "COMPRESS=DEFLATE")
	assert.Contains(t, args, "BLOCKSIZE=512")

	// nodata flag carries the dataset sentinel
	for i, arg := range args {
		if arg == "-a_nodata" {
			assert.Equal(t, "-1", args[i+1])
		}
	}

	assert.Equal(t, "AWC_CLASS.nc4", args[len(args)-2])
	assert.Equal(t, "out/AWC_CLASS.tif", args[len(args)-1])
}

func TestCogOutputName(t *testing.T) {
	assert.Equal(t, "T_GRAVEL.tif", cogOutputName("/data/T_GRAVEL.nc4"))
	assert.Equal(t, "T_GRAVEL_cog.tif", cogOutputName("/data/T_GRAVEL.tif"))
}

func TestGdalDataTypesCoverAllParameters(t *testing.T) {
	for _, param := range Parameters {
		_, ok := gdalDataTypes[param.DataType]
		assert.True(t, ok, param.Name)
	}
}

func TestCogifyErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing destination directory", func(t *testing.T) {
		_, err := Cogify(ctx, "AWC_CLASS.nc4", filepath.Join(t.TempDir(), "absent"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("destination is a file", func(t *testing.T) {
		dir := t.TempDir()
		dest := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(dest, []byte("x"), 0o644))

		_, err := Cogify(ctx, "AWC_CLASS.nc4", dest)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("unknown parameter", func(t *testing.T) {
		_, err := Cogify(ctx, "NOT_A_PARAMETER.nc4", t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NOT_A_PARAMETER")
	})
}

func TestCogifyAllSkipsNonParameterGranule(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, excludedGranule), []byte("x"), 0o644))

	outputs, err := CogifyAll(context.Background(), srcDir, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, outputs)
}
