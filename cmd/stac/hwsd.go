package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/urfave/cli/v3"

	xlog "github.com/stactools-packages/hwsd/internal/log"
	"github.com/stactools-packages/hwsd/pkg/downloader"
	"github.com/stactools-packages/hwsd/pkg/hwsd"
)

func sourceFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "source",
		Aliases:  []string{"s"},
		Usage:    usage,
		Required: true,
	}
}

func destinationFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "destination",
		Aliases:  []string{"d"},
		Usage:    usage,
		Required: true,
	}
}

func newHWSDCommand() *cli.Command {
	return &cli.Command{
		Name:  "hwsd",
		Usage: "Commands for working with the Harmonized World Soil Database",
		Commands: []*cli.Command{
			{
				Name:  "create-collection",
				Usage: "Create the HWSD STAC Collection",
				Flags: []cli.Flag{
					destinationFlag("The output directory for the STAC Collection"),
				},
				Action: createCollectionAction,
			},
			{
				Name:  "create-item",
				Usage: "Create a HWSD STAC Item",
				Flags: []cli.Flag{
					sourceFlag("The HREF for the location containing the data assets"),
					destinationFlag("The output path for the STAC Item"),
				},
				Action: createItemAction,
			},
			{
				Name:  "populate-collection",
				Usage: "Create the HWSD STAC Collection populated with its items",
				Flags: []cli.Flag{
					sourceFlag("The source location for the item data assets"),
					destinationFlag("The output directory for the populated STAC Collection"),
				},
				Action: populateCollectionAction,
			},
			{
				Name:  "create-cog",
				Usage: "Convert a NetCDF or GeoTIFF raster to a Cloud-Optimized GeoTIFF",
				Flags: []cli.Flag{
					sourceFlag("A raster file (local, http(s) or s3) or a local directory of NetCDF granules"),
					destinationFlag("The output directory for the COGs"),
				},
				Action: createCogAction,
			},
		},
	}
}

func createCollectionAction(ctx context.Context, cmd *cli.Command) error {
	configureLogging(cmd)

	col := hwsd.CreateCollection()
	written, err := hwsd.SaveCollection(col, cmd.String("destination"))
	if err != nil {
		return err
	}

	logger := xlog.Base()
	logger.Info().Str("path", written).Msg("collection written")
	return nil
}

func createItemAction(ctx context.Context, cmd *cli.Command) error {
	configureLogging(cmd)

	item, err := hwsd.CreateItem(cmd.String("source"))
	if err != nil {
		return err
	}

	written, err := hwsd.SaveItem(item, cmd.String("destination"))
	if err != nil {
		return err
	}

	logger := xlog.Base()
	logger.Info().Str("path", written).Str("item", item.Id).Msg("item written")
	return nil
}

func populateCollectionAction(ctx context.Context, cmd *cli.Command) error {
	configureLogging(cmd)

	written, err := hwsd.Populate(cmd.String("source"), cmd.String("destination"))
	if err != nil {
		return err
	}

	logger := xlog.Base()
	logger.Info().Strs("paths", written).Msg("collection populated")
	return nil
}

func createCogAction(ctx context.Context, cmd *cli.Command) error {
	configureLogging(cmd)

	source := cmd.String("source")
	destination := cmd.String("destination")

	if downloader.IsRemote(source) {
		local, cleanup, err := fetchSource(ctx, source)
		if err != nil {
			return err
		}
		defer cleanup()
		source = local
	}

	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("source %q not found: %w", source, err)
	}

	if info.IsDir() {
		written, err := hwsd.CogifyAll(ctx, source, destination)
		if err != nil {
			return err
		}
		logger := xlog.Base()
		logger.Info().Int("count", len(written)).Msg("COGs written")
		return nil
	}

	written, err := hwsd.Cogify(ctx, source, destination)
	if err != nil {
		return err
	}
	logger := xlog.Base()
	logger.Info().Str("path", written).Msg("COG written")
	return nil
}

// fetchSource downloads a remote granule into a temporary directory and
// returns the local path with a cleanup func.
func fetchSource(ctx context.Context, source string) (string, func(), error) {
	u, err := url.Parse(source)
	if err != nil {
		return "", nil, fmt.Errorf("parse source href: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "hwsd-source-")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	local := filepath.Join(tmpDir, path.Base(u.Path))
	if err := downloader.Download(ctx, source, local); err != nil {
		cleanup()
		return "", nil, err
	}
	return local, cleanup, nil
}
