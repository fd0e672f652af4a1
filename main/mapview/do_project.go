package main

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/mapsmith/mapview/mods/nums"
)

func doProject(cmd *cobra.Command, args []string) error {
	act, err := setup(cmd)
	if err != nil {
		return err
	}
	pairs, err := collectPairs(cmd, args)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return errors.New("no location given, pass lon,lat arguments or --input")
	}

	enc, err := newEncoder(cmd, act.conf, "location", "x", "y")
	if err != nil {
		return err
	}
	for _, p := range pairs {
		loc := orb.Point{p[0], p[1]}
		pt := act.view.Project(loc, true)
		if err := enc.AddRow([]any{loc, pt.X, pt.Y}); err != nil {
			return err
		}
	}
	enc.Close()
	return nil
}

func doUnproject(cmd *cobra.Command, args []string) error {
	act, err := setup(cmd)
	if err != nil {
		return err
	}
	pairs, err := collectPairs(cmd, args)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return errors.New("no point given, pass x,y arguments or --input")
	}

	enc, err := newEncoder(cmd, act.conf, "location", "x", "y")
	if err != nil {
		return err
	}
	for _, p := range pairs {
		loc := act.view.Unproject(nums.Pt(p[0], p[1]), true)
		if err := enc.AddRow([]any{loc, p[0], p[1]}); err != nil {
			return err
		}
	}
	enc.Close()
	return nil
}
