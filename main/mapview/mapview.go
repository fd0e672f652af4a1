package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/mapsmith/mapview/mods"
	"github.com/mapsmith/mapview/mods/codec"
	"github.com/mapsmith/mapview/mods/config"
	"github.com/mapsmith/mapview/mods/logging"
	"github.com/mapsmith/mapview/mods/stream"
	"github.com/mapsmith/mapview/mods/viewport"
)

func main() {
	cobra.CheckErr(NewCmd().ExecuteContext(context.Background()))
}

func NewCmd() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "mapview [command] [flags] [args]",
		Short:         "mapview is a Web Mercator viewport calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "`<File>` mapview config file")
	rootCmd.PersistentFlags().String("log-level", "", "log level, TRACE, DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().String("log-filename", "", "log file path, '-' means stdout, '.' discards")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format, box, csv, json, geojson")
	rootCmd.PersistentFlags().String("file", "-", "`<File>` write output to file, '-' means stdout")
	rootCmd.PersistentFlags().Int("precision", -1, "decimal places for numeric output, -1 means shortest")
	rootCmd.PersistentFlags().Float64("width", 0, "viewport width in pixels")
	rootCmd.PersistentFlags().Float64("height", 0, "viewport height in pixels")
	rootCmd.PersistentFlags().Float64("zoom", 0, "zoom level, 0 to 24")
	rootCmd.PersistentFlags().Float64("scale", 0, "scale in pixels per radian, wins over --zoom")
	rootCmd.PersistentFlags().Float64("rotation", 0, "viewport rotation in radians, counter-clockwise")
	rootCmd.PersistentFlags().String("center", "", "`<lon,lat>` location to center the viewport on")
	rootCmd.PersistentFlags().Float64("tx", 0, "x translation in pixels, wins over --center")
	rootCmd.PersistentFlags().Float64("ty", 0, "y translation in pixels, wins over --center")

	projectCmd := &cobra.Command{
		Use:   "project [flags] <lon,lat>...",
		Short: "Project locations to screen points",
		RunE:  doProject,
	}
	projectCmd.PersistentFlags().StringP("input", "i", "", "`<File>` read lon,lat pairs from file, '-' means stdin")

	unprojectCmd := &cobra.Command{
		Use:   "unproject [flags] <x,y>...",
		Short: "Unproject screen points to locations",
		RunE:  doUnproject,
	}
	unprojectCmd.PersistentFlags().StringP("input", "i", "", "`<File>` read x,y pairs from file, '-' means stdin")

	extentCmd := &cobra.Command{
		Use:   "extent [flags]",
		Short: "Show the visible geometry of the viewport",
		RunE:  doExtent,
	}

	tilesCmd := &cobra.Command{
		Use:   "tiles [flags]",
		Short: "List tiles covering the visible extent",
		RunE:  doTiles,
	}
	tilesCmd.PersistentFlags().Int("tile-zoom", 0, "tile zoom level, defaults to the viewport zoom")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("mapview", mods.VersionString())
		},
	}

	rootCmd.AddCommand(
		projectCmd,
		unprojectCmd,
		extentCmd,
		tilesCmd,
		versionCmd,
	)
	return rootCmd
}

type actionContext struct {
	conf *config.Config
	view *viewport.Viewport
	log  logging.Log
}

// setup loads the config file if given, lays flag overrides on top and
// builds the viewport every subcommand works against.
func setup(cmd *cobra.Command) (*actionContext, error) {
	flags := cmd.Flags()

	conf := config.Default()
	confPath, _ := flags.GetString("config")
	if confPath != "" {
		c, err := config.Load(confPath)
		if err != nil {
			return nil, err
		}
		conf = c
	} else if !flags.Changed("log-filename") {
		// stdout belongs to the encoders; logs go there only when asked
		conf.Logging.Filename = "."
	}
	if flags.Changed("log-filename") {
		conf.Logging.Filename, _ = flags.GetString("log-filename")
	}
	if flags.Changed("log-level") {
		conf.Logging.DefaultLevel, _ = flags.GetString("log-level")
	}
	logging.Configure(&conf.Logging)
	log := logging.GetLog("mapview")

	vc := &conf.Viewport
	if flags.Changed("width") {
		vc.Width, _ = flags.GetFloat64("width")
	}
	if flags.Changed("height") {
		vc.Height, _ = flags.GetFloat64("height")
	}
	if flags.Changed("zoom") {
		vc.Zoom, _ = flags.GetFloat64("zoom")
		vc.Scale = 0
	}
	if flags.Changed("scale") {
		vc.Scale, _ = flags.GetFloat64("scale")
	}
	if flags.Changed("rotation") {
		vc.Rotation, _ = flags.GetFloat64("rotation")
	}
	if flags.Changed("center") {
		str, _ := flags.GetString("center")
		lon, lat, err := parsePair(str)
		if err != nil {
			return nil, fmt.Errorf("center: %w", err)
		}
		vc.Center = []float64{lon, lat}
	}

	opts := []viewport.Option{
		viewport.WithDimensions(vc.Width, vc.Height),
		viewport.WithRotation(vc.Rotation),
	}
	if vc.Scale > 0 {
		opts = append(opts, viewport.WithScale(vc.Scale))
	} else {
		opts = append(opts, viewport.WithZoom(vc.Zoom))
	}
	view := viewport.New(opts...)

	if flags.Changed("tx") || flags.Changed("ty") {
		tx, _ := flags.GetFloat64("tx")
		ty, _ := flags.GetFloat64("ty")
		view.SetTranslate(tx, ty)
	} else if len(vc.Center) == 2 {
		view.CenterAt(orb.Point{vc.Center[0], vc.Center[1]})
	}
	log.Debugf("viewport %s dims %s", view.Transform().String(), view.Dimensions().String())

	return &actionContext{conf: conf, view: view, log: log}, nil
}

func outputFormat(cmd *cobra.Command, conf *config.Config) string {
	if cmd.Flags().Changed("output") {
		format, _ := cmd.Flags().GetString("output")
		return format
	}
	return conf.Output.Format
}

func newEncoder(cmd *cobra.Command, conf *config.Config, cols ...string) (codec.RowsEncoder, error) {
	flags := cmd.Flags()
	precision := conf.Output.Precision
	if flags.Changed("precision") {
		precision, _ = flags.GetInt("precision")
	}
	path, _ := flags.GetString("file")
	out, err := stream.NewOutputStream(path)
	if err != nil {
		return nil, err
	}
	enc := codec.NewEncoder(outputFormat(cmd, conf),
		codec.OutputStream(out),
		codec.Precision(precision),
		codec.Heading(conf.Output.Heading),
		codec.Rownum(conf.Output.Rownum),
		codec.BoxStyle(conf.Output.BoxStyle),
	)
	if err := enc.Open(cols...); err != nil {
		return nil, err
	}
	return enc, nil
}

func parsePair(s string) (float64, float64, error) {
	a, b, found := strings.Cut(s, ",")
	if !found {
		return 0, 0, fmt.Errorf("expect two comma separated numbers, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("expect two comma separated numbers, got %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("expect two comma separated numbers, got %q", s)
	}
	return x, y, nil
}

// collectPairs gathers coordinate pairs from positional args and, when
// --input is given, from the file, one pair per line, '#' starting a
// comment line.
func collectPairs(cmd *cobra.Command, args []string) ([][2]float64, error) {
	pairs := make([][2]float64, 0, len(args))
	for _, arg := range args {
		x, y, err := parsePair(arg)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]float64{x, y})
	}

	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		return pairs, nil
	}
	in, err := stream.NewInputStream(input)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		x, y, err := parsePair(line)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]float64{x, y})
	}
	return pairs, scanner.Err()
}
