// Generation commands: torus, lissajous, special and batch.
package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knots/export"
	"github.com/katalvlaran/knots/knot"
	"github.com/katalvlaran/knots/manifest"
	"github.com/katalvlaran/knots/plot"
	"github.com/katalvlaran/knots/view"
)

// Save formats accepted by --save.
const (
	formatDat = "dat"
	formatPNG = "png"
)

// outputFlags control what happens to a generated curve.
type outputFlags struct {
	save  []string
	store bool
	view  bool
}

func (f *outputFlags) register(cmd *cobra.Command, withView bool) {
	cmd.Flags().StringSliceVar(&f.save, "save", nil, "write files: any of dat,png (default: config format)")
	cmd.Flags().BoolVar(&f.store, "store", false, "persist the curve to the database")
	if withView {
		cmd.Flags().BoolVar(&f.view, "view", false, "open the interactive viewer")
	}
}

// formats returns the validated --save list, falling back to config.
func (f *outputFlags) formats(cmd *cobra.Command, a *app) ([]string, error) {
	list := f.save
	if !cmd.Flags().Changed("save") {
		if s := a.cfg.GetString(cfgKeyFormat); s != "" {
			list = strings.Split(s, ",")
		}
	}
	out := make([]string, 0, len(list))
	for _, s := range list {
		s = strings.ToLower(strings.TrimSpace(s))
		switch s {
		case "":
			continue
		case formatDat, formatPNG:
			out = append(out, s)
		default:
			return nil, fmt.Errorf("--save %q (want dat or png): %w", s, errBadFlag)
		}
	}

	return out, nil
}

// shapeFlags are shared by the single-curve generators.
type shapeFlags struct {
	samples   int
	crossings int
	out       outputFlags
}

func (f *shapeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.samples, "samples", "s", knot.DefaultSamples, "number of points sampled along the curve")
	cmd.Flags().IntVar(&f.crossings, "crossings", 0, "record a crossing number with the curve")
	f.out.register(cmd, true)
}

// options converts the shared flags into knot options.
func (f *shapeFlags) options(cmd *cobra.Command, a *app) ([]knot.Option, error) {
	samples := f.samples
	if !cmd.Flags().Changed("samples") {
		samples = a.cfg.GetInt(cfgKeySamples)
	}
	if samples <= 0 {
		return nil, fmt.Errorf("--samples %d: %w", samples, errBadFlag)
	}
	opts := []knot.Option{knot.WithSamples(samples)}
	if cmd.Flags().Changed("crossings") {
		if f.crossings < 0 {
			return nil, fmt.Errorf("--crossings %d: %w", f.crossings, errBadFlag)
		}
		opts = append(opts, knot.WithCrossings(f.crossings))
	}

	return opts, nil
}

// emit generates c and then saves, stores and shows it as requested.
func (a *app) emit(cmd *cobra.Command, c *knot.Curve, f outputFlags) error {
	formats, err := f.formats(cmd, a)
	if err != nil {
		return err
	}
	if !c.Generated() {
		if _, err = c.Generate(); err != nil {
			return err
		}
	}
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, c.Name())

	for _, format := range formats {
		var path string
		switch format {
		case formatDat:
			path, err = export.Save(c, export.WithDir(a.outDir()))
		case formatPNG:
			_, path, err = plot.Plot(c, plot.WithSave(a.outDir()), plot.WithLogger(a.logger))
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "saved", path)
	}

	if f.store {
		s, err := a.openStore(cmd.Context())
		if err != nil {
			return err
		}
		rec, err := s.Save(cmd.Context(), c)
		if cerr := s.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "stored", rec.ID)
	}

	if f.view {
		return view.Run(cmd.Context(), c, a.viewOpts...)
	}

	return nil
}

func newTorusCmd(a *app) *cobra.Command {
	var (
		shared         shapeFlags
		p, q           int
		chirality      string
		rInner, rOuter float64
	)
	cmd := &cobra.Command{
		Use:   "torus",
		Short: "Generate a (p,q) torus knot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := shared.options(cmd, a)
			if err != nil {
				return err
			}
			if err = finite(map[string]float64{"r-inner": rInner, "r-outer": rOuter}); err != nil {
				return err
			}
			opts = append(opts, knot.WithChiralityName(chirality),
				knot.WithInnerRadius(rInner), knot.WithOuterRadius(rOuter))
			c, err := knot.NewTorus(p, q, opts...)
			if err != nil {
				return err
			}

			return a.emit(cmd, c, shared.out)
		},
	}
	shared.register(cmd)
	cmd.Flags().IntVarP(&p, "p", "p", knot.DefaultP, "windings around the rotational axis")
	cmd.Flags().IntVarP(&q, "q", "q", knot.DefaultQ, "windings through the hole")
	cmd.Flags().StringVar(&chirality, "chirality", "right", "right or left handed")
	cmd.Flags().Float64Var(&rInner, "r-inner", knot.DefaultInnerRadius, "distance from the centre to the tube")
	cmd.Flags().Float64Var(&rOuter, "r-outer", knot.DefaultOuterRadius, "tube radius")

	return cmd
}

func newLissajousCmd(a *app) *cobra.Command {
	var (
		shared    shapeFlags
		n         []int
		phi       []float64
		amplitude float64
	)
	cmd := &cobra.Command{
		Use:   "lissajous",
		Short: "Generate a Lissajous knot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := shared.options(cmd, a)
			if err != nil {
				return err
			}
			if err = finite(map[string]float64{"amplitude": amplitude}); err != nil {
				return err
			}
			opts = append(opts, knot.WithAmplitude(amplitude))
			c, err := knot.NewLissajous(n, phi, opts...)
			if err != nil {
				return err
			}

			return a.emit(cmd, c, shared.out)
		},
	}
	shared.register(cmd)
	cmd.Flags().IntSliceVarP(&n, "n", "n", []int{3, 2, 5}, "per-axis frequencies (three values)")
	cmd.Flags().Float64SliceVar(&phi, "phi", []float64{0.7, 0.2, 0}, "per-axis phases in radians (three values)")
	cmd.Flags().Float64Var(&amplitude, "amplitude", knot.DefaultAmplitude, "per-axis amplitude")

	return cmd
}

func newSpecialCmd(a *app) *cobra.Command {
	var (
		shared shapeFlags
		id     string
		rInner float64
		rOuter float64
	)
	cmd := &cobra.Command{
		Use:   "special",
		Short: "Generate a figure-eight or granny knot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, err := parseSpecial(id)
			if err != nil {
				return err
			}
			opts, err := shared.options(cmd, a)
			if err != nil {
				return err
			}
			if err = finite(map[string]float64{"r-inner": rInner, "r-outer": rOuter}); err != nil {
				return err
			}
			opts = append(opts, knot.WithInnerRadius(rInner), knot.WithOuterRadius(rOuter))
			c, err := knot.NewSpecial(sid, opts...)
			if err != nil {
				return err
			}

			return a.emit(cmd, c, shared.out)
		},
	}
	shared.register(cmd)
	cmd.Flags().StringVar(&id, "id", "figure-eight", "figure-eight (0, 4_1) or granny (1)")
	cmd.Flags().Float64Var(&rInner, "r-inner", knot.DefaultInnerRadius, "figure-eight radial offset")
	cmd.Flags().Float64Var(&rOuter, "r-outer", knot.DefaultOuterRadius, "figure-eight radial scale")

	return cmd
}

// finite rejects NaN and infinite flag values before they reach option
// constructors.
func finite(values map[string]float64) error {
	for name, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("--%s %v: %w", name, v, errBadFlag)
		}
	}

	return nil
}

// parseSpecial accepts a name or a numeric id; numbers are checked by
// the constructor.
func parseSpecial(s string) (knot.SpecialID, error) {
	if id, ok := knot.ParseSpecialID(s); ok {
		return id, nil
	}
	n, err := cast.ToIntE(s)
	if err != nil {
		return 0, fmt.Errorf("--id %q: %w", s, knot.ErrUnsupportedVariant)
	}

	return knot.SpecialID(n), nil
}

// uniqueNames rejects a batch whose saved files would overwrite each other.
// Names omit Lissajous phases, so such collisions are easy to write.
func uniqueNames(curves []*knot.Curve) error {
	seen := make(map[string]int, len(curves))
	for i, c := range curves {
		if j, ok := seen[c.Name()]; ok {
			return fmt.Errorf("curves[%d] and curves[%d] are both %q: %w", j, i, c.Name(), errNameClash)
		}
		seen[c.Name()] = i
	}

	return nil
}

func newBatchCmd(a *app) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Generate every curve listed in a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			curves, err := manifest.Build(recipes)
			if err != nil {
				return err
			}
			formats, err := out.formats(cmd, a)
			if err != nil {
				return err
			}
			if len(formats) > 0 {
				if err = uniqueNames(curves); err != nil {
					return err
				}
			}
			for _, c := range curves {
				if err := a.emit(cmd, c, out); err != nil {
					return fmt.Errorf("%s: %w", c.Name(), err)
				}
			}

			return nil
		},
	}
	out.register(cmd, false)

	return cmd
}
