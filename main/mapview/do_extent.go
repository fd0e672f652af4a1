package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/mapsmith/mapview/mods/codec"
	"github.com/mapsmith/mapview/mods/nums"
)

func doExtent(cmd *cobra.Command, args []string) error {
	act, err := setup(cmd)
	if err != nil {
		return err
	}
	v := act.view

	// geojson carries the extent as one polygon feature, the other
	// formats get a name/value table of the visible geometry
	if outputFormat(cmd, act.conf) == codec.GEOJSON {
		enc, err := newEncoder(cmd, act.conf, "extent", "width", "height")
		if err != nil {
			return err
		}
		vd := v.VisibleDimensions()
		if err := enc.AddRow([]any{v.Extent(), vd.X, vd.Y}); err != nil {
			return err
		}
		enc.Close()
		return nil
	}

	enc, err := newEncoder(cmd, act.conf, "name", "value")
	if err != nil {
		return err
	}
	rows := [][]any{
		{"dimensions", v.Dimensions()},
		{"center", v.Center()},
		{"visible_dimensions", v.VisibleDimensions()},
	}
	for i, pt := range v.VisiblePolygon() {
		rows = append(rows, []any{fmt.Sprintf("visible_polygon[%d]", i), pt})
	}
	rows = append(rows, []any{"extent", v.Extent()})
	for _, row := range rows {
		if err := enc.AddRow(row); err != nil {
			return err
		}
	}
	enc.Close()
	return nil
}

func doTiles(cmd *cobra.Command, args []string) error {
	act, err := setup(cmd)
	if err != nil {
		return err
	}
	zoom := int(math.Round(act.view.Zoom()))
	if cmd.Flags().Changed("tile-zoom") {
		zoom, _ = cmd.Flags().GetInt("tile-zoom")
	}

	ext := act.view.Extent()
	tiles := nums.Cover(ext, zoom)
	act.log.Infof("%d tiles cover %s at zoom %d", len(tiles), ext.String(), zoom)

	enc, err := newEncoder(cmd, act.conf, "tile", "z", "x", "y")
	if err != nil {
		return err
	}
	for _, tile := range tiles {
		if err := enc.AddRow([]any{tile, tile.Z, tile.X, tile.Y}); err != nil {
			return err
		}
	}
	enc.Close()
	return nil
}
