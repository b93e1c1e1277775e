package hwsd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	xlog "github.com/stactools-packages/hwsd/internal/log"
	"github.com/stactools-packages/hwsd/pkg/stac"
)

// excludedGranule ships alongside the parameter rasters but is not a
// soil parameter itself, so batch conversion skips it.
const excludedGranule = "HWSD_SOIL_CLM_RES.nc4"

// gdalDataTypes maps raster extension data types to gdal_translate -ot values.
var gdalDataTypes = map[stac.DataType]string{
	stac.DataTypeUint8:   "Byte",
	stac.DataTypeUint16:  "UInt16",
	stac.DataTypeUint32:  "UInt32",
	stac.DataTypeInt16:   "Int16",
	stac.DataTypeInt32:   "Int32",
	stac.DataTypeFloat32: "Float32",
	stac.DataTypeFloat64: "Float64",
}

// cogArgs builds the gdal_translate argument list for one conversion.
func cogArgs(source, output, gdalType string) []string {
	return []string{
		"-ot", gdalType,
		"-of", "COG",
		"-co", "NUM_THREADS=ALL_CPUS",
		"-co", "BLOCKSIZE=512",
		"-co", "COMPRESS=DEFLATE",
		"-co", "LEVEL=9",
		"-co", "PREDICTOR=YES",
		"-co", "OVERVIEWS=IGNORE_EXISTING",
		"-a_nodata", strconv.Itoa(NoData),
		source,
		output,
	}
}

// cogOutputName returns the file name of the converted COG. NetCDF
// granules convert to <NAME>.tif; GeoTIFF inputs get a _cog suffix so
// the source is not shadowed.
func cogOutputName(source string) string {
	name := AssetName(source)
	if strings.HasSuffix(source, ".tif") {
		return name + "_cog.tif"
	}
	return name + ".tif"
}

// Cogify converts a single NetCDF or GeoTIFF raster to a Cloud-Optimized
// GeoTIFF in destDir by running gdal_translate. The raster must be a
// known soil parameter so the pixel type can be pinned. It returns the
// output path.
func Cogify(ctx context.Context, source, destDir string) (string, error) {
	info, err := os.Stat(destDir)
	if err != nil {
		return "", fmt.Errorf("destination folder %q not found: %w", destDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("destination %q is not a directory", destDir)
	}

	name := AssetName(source)
	param, ok := ParameterByName(name)
	if !ok {
		return "", fmt.Errorf("hwsd: %q is not a known soil parameter asset", name)
	}
	gdalType, ok := gdalDataTypes[param.DataType]
	if !ok {
		return "", fmt.Errorf("hwsd: no GDAL type for %q", param.DataType)
	}

	output := filepath.Join(destDir, cogOutputName(source))

	logger := xlog.WithComponent("cog")
	logger.Info().Str("source", source).Str("output", output).Msg("converting to COG")

	cmd := exec.CommandContext(ctx, "gdal_translate", cogArgs(source, output, gdalType)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		logger.Error().Str("source", source).Msg("gdal_translate failed")
		return "", fmt.Errorf("gdal_translate %s: %w: %s", source, err, strings.TrimSpace(string(out)))
	}
	logger.Debug().Str("output", output).Msg("conversion finished")

	return output, nil
}

// CogifyAll converts every *.nc4 granule in sourceDir except the
// non-parameter resolution file. It returns the output paths.
func CogifyAll(ctx context.Context, sourceDir, destDir string) ([]string, error) {
	granules, err := filepath.Glob(filepath.Join(sourceDir, "*.nc4"))
	if err != nil {
		return nil, err
	}

	var outputs []string
	for _, granule := range granules {
		if filepath.Base(granule) == excludedGranule {
			continue
		}
		output, err := Cogify(ctx, granule, destDir)
		if err != nil {
			return outputs, err
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}
