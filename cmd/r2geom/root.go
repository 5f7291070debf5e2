// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"github.com/2dChan/r2voronoi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "r2geom",
		Short: "Planar Voronoi, Delaunay, hull, ear clipping and polygon clipping.",
		Long: `r2geom reads points from stdin, one per line, runs one operation
and prints the result to stdout.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return errors.Wrap(err, "logger")
			}
			r2voronoi.SetLogger(l)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = r2voronoi.Logger().Sync()
			r2voronoi.SetLogger(nil)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug statistics to stderr")

	root.AddCommand(
		newVoronoiCmd(),
		newDelaunayCmd(),
		newHullCmd(),
		newEarclipCmd(),
		newClipCmd(),
	)
	return root
}
