// Command embedview renders a projected embedding export headlessly:
// it loads a YAML point file, optionally replays a rubber-band
// selection, and writes the rendered point cloud to a PNG. It is the
// demo and debugging harness for the embedview viewer; interactive
// hosts embed the library directly instead.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"github.com/virelay/embedview"
	_ "github.com/virelay/embedview/backend/wgpu" // register GPU backend
	"github.com/virelay/embedview/surface"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "embedview",
		Short: "Headless renderer for projected attribution embeddings",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				embedview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(snapshotCmd())
	root.AddCommand(backendsCmd())
	return root
}

func backendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List available surface backends by priority",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := surface.Available()
			if len(names) == 0 {
				return surface.ErrNoBackendAvailable
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func snapshotCmd() *cobra.Command {
	var (
		configPath string
		pointsPath string
		outPath    string
		thumbPath  string
		thumbSize  int
		axesFlag   string
		selectFlag string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a point export to PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			ps, err := loadPoints(pointsPath)
			if err != nil {
				return err
			}

			opts := []embedview.Option{
				embedview.WithZoomBounds(cfg.MinZoom, cfg.MaxZoom),
				embedview.WithHoverDebounce(time.Duration(cfg.HoverDebounceMS) * time.Millisecond),
			}
			if cfg.Backend != "" {
				opts = append(opts, embedview.WithSurfaceBackend(cfg.Backend))
			}
			if cfg.PointSize > 0 {
				opts = append(opts, embedview.WithPointSize(cfg.PointSize))
			}

			v, err := embedview.New(cfg.Width, cfg.Height, opts...)
			if err != nil {
				return err
			}
			defer v.Close()

			v.SetPointSet(ps)

			if axesFlag != "" {
				first, second, err := parsePair(axesFlag)
				if err != nil {
					return fmt.Errorf("invalid --axes: %w", err)
				}
				v.SetAxes(first, second)
			}

			if selectFlag != "" {
				if err := replaySelection(cmd, v, selectFlag); err != nil {
					return err
				}
			}

			if err := v.RenderFrame(); err != nil {
				return err
			}

			snap := v.Snapshot()
			if err := writePNG(outPath, snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d points)\n", outPath, ps.Len())

			if thumbPath != "" {
				thumb := scaleImage(snap, thumbSize, thumbSize*cfg.Height/cfg.Width)
				if err := writePNG(thumbPath, thumb); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", thumbPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "viewer config YAML")
	cmd.Flags().StringVarP(&pointsPath, "points", "p", "", "point export YAML (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "embedding.png", "output PNG path")
	cmd.Flags().StringVar(&thumbPath, "thumb", "", "optional thumbnail PNG path")
	cmd.Flags().IntVar(&thumbSize, "thumb-width", 256, "thumbnail width in pixels")
	cmd.Flags().StringVar(&axesFlag, "axes", "", "displayed dimension pair, e.g. 0,1")
	cmd.Flags().StringVar(&selectFlag, "select", "", "replay a selection rectangle x0,y0,x1,y1 (screen px)")
	_ = cmd.MarkFlagRequired("points")
	return cmd
}

// replaySelection drives the viewer through a synthetic left-button
// drag and prints the committed selection's source indices.
func replaySelection(cmd *cobra.Command, v *embedview.Viewer, spec string) error {
	coords := strings.Split(spec, ",")
	if len(coords) != 4 {
		return fmt.Errorf("invalid --select %q: want x0,y0,x1,y1", spec)
	}
	var c [4]float64
	for i, s := range coords {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid --select %q: %w", spec, err)
		}
		c[i] = f
	}

	var selected []embedview.Sample
	v.OnSelectionChanged(func(samples []embedview.Sample) {
		selected = samples
	})

	start := embedview.Pt(c[0], c[1])
	end := embedview.Pt(c[2], c[3])
	v.HandleMouse(embedview.MouseEvent{
		Kind: embedview.MouseDown, Pos: start,
		Button: embedview.MouseLeft, Buttons: embedview.ButtonsLeft,
	})
	v.HandleMouse(embedview.MouseEvent{
		Kind: embedview.MouseMove, Pos: end, Buttons: embedview.ButtonsLeft,
	})
	v.HandleMouse(embedview.MouseEvent{
		Kind: embedview.MouseUp, Pos: end, Button: embedview.MouseLeft,
	})

	fmt.Fprintf(cmd.OutOrStdout(), "selected %d points:", len(selected))
	for _, s := range selected {
		fmt.Fprintf(cmd.OutOrStdout(), " %d", s.SourceIndex)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

// parsePair parses a "first,second" dimension pair.
func parsePair(spec string) (first, second int, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q: want two comma-separated dimensions", spec)
	}
	first, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", spec, err)
	}
	second, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", spec, err)
	}
	return first, second, nil
}

func scaleImage(src *image.RGBA, width, height int) *image.RGBA {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(out, out.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return out
}

func writePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
