// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scop computes the vertex and uniform buffers of a 3D scene.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/ameschmeems/scop/cmd/scop/cmd"
	"github.com/ameschmeems/scop/config"
	"github.com/ameschmeems/scop/logx"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var vv, v, q bool
	root := &cobra.Command{
		Use:           "scop",
		Short:         "Compute the vertex and uniform buffers of a 3D scene",
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
		},
	}
	root.PersistentFlags().BoolVar(&vv, "vv", false, "show debug messages")
	root.PersistentFlags().BoolVarP(&v, "verbose", "v", false, "show info messages")
	root.PersistentFlags().BoolVarP(&q, "quiet", "q", false, "only show errors")

	root.AddCommand(newUniformsCmd(), newWatchCmd(), newCubeCmd())
	return root
}

// sceneFlags adds the flags shared by the commands that load a scene.
func sceneFlags(c *cobra.Command, path *string, over *config.Projection) {
	c.Flags().StringVarP(path, "config", "c", "", "scene file (.toml, .yaml or .yml); the default scene if empty")
	c.Flags().Float32Var(&over.FOV, "fov", 0, "override the vertical field of view in degrees")
	c.Flags().Float32Var(&over.Aspect, "aspect", 0, "override the aspect ratio")
	c.Flags().Float32Var(&over.Near, "near", 0, "override the near clip distance")
	c.Flags().Float32Var(&over.Far, "far", 0, "override the far clip distance")
}

func newUniformsCmd() *cobra.Command {
	var path string
	var over config.Projection
	c := &cobra.Command{
		Use:   "uniforms",
		Short: "Print the transposed MVP matrix of each model",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			sc, err := cmd.LoadScene(path, over)
			if err != nil {
				return err
			}
			return cmd.Uniforms(c.OutOrStdout(), sc)
		},
	}
	sceneFlags(c, &path, &over)
	return c
}

func newWatchCmd() *cobra.Command {
	var path string
	var over config.Projection
	c := &cobra.Command{
		Use:   "watch",
		Short: "Print the uniforms again each time the scene file changes",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return cmd.Watch(ctx, c.OutOrStdout(), path, over)
		},
	}
	sceneFlags(c, &path, &over)
	return c
}

func newCubeCmd() *cobra.Command {
	var size float32
	c := &cobra.Command{
		Use:   "cube",
		Short: "Print the layout and bounds of the cube mesh",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Cube(c.OutOrStdout(), size)
		},
	}
	c.Flags().Float32Var(&size, "size", 1, "edge length of the cube")
	return c
}
