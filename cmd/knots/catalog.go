// Commands over stored curves: list, show, view, delete and compare.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knots/dtw"
	"github.com/katalvlaran/knots/export"
	"github.com/katalvlaran/knots/knot"
	"github.com/katalvlaran/knots/store"
	"github.com/katalvlaran/knots/view"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func crossingsText(n *int) string {
	if n == nil {
		return "unknown"
	}
	return strconv.Itoa(*n)
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(s, &err)

			recs, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(w, "No curves stored.")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "NAME", "KIND", "SAMPLES", "CROSSINGS", "CREATED").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}
					return cellStyle
				})
			for _, r := range recs {
				t.Row(r.ID, r.Name, r.Kind.String(), strconv.Itoa(r.Samples),
					crossingsText(r.Crossings), r.CreatedAt.Format(time.DateTime))
			}
			fmt.Fprintln(w, t.Render())

			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(s, &err)

			rec, err := s.Record(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c, err := s.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			buf, err := c.Coordinates()
			if err != nil {
				return err
			}

			recipe := "-"
			if rec.Recipe != nil {
				recipe = rec.Recipe.Key()
			}
			lo, hi := buf.Bounds()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "ID:        %s\n", rec.ID)
			fmt.Fprintf(w, "Name:      %s\n", rec.Name)
			fmt.Fprintf(w, "Kind:      %s\n", rec.Kind)
			fmt.Fprintf(w, "Samples:   %d\n", rec.Samples)
			fmt.Fprintf(w, "Crossings: %s\n", crossingsText(rec.Crossings))
			fmt.Fprintf(w, "Recipe:    %s\n", recipe)
			fmt.Fprintf(w, "Created:   %s\n", rec.CreatedAt.Format(time.RFC3339))
			fmt.Fprintf(w, "Bounds:    x[%.3f, %.3f] y[%.3f, %.3f] z[%.3f, %.3f]\n",
				lo.X, hi.X, lo.Y, hi.Y, lo.Z, hi.Z)

			return nil
		},
	}
}

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Open a stored curve in the interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			c, err := s.Get(cmd.Context(), args[0])
			if cerr := s.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}

			return view.Run(cmd.Context(), c, a.viewOpts...)
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(s, &err)

			if err = s.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted", args[0])

			return nil
		},
	}
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		window   int
		penalty  float64
		cyclic   bool
		showPath bool
	)
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "DTW distance between two curves (stored ids or .dat files)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			r := &curveResolver{app: a}
			defer func() {
				if cerr := r.close(); err == nil {
					err = cerr
				}
			}()

			ca, err := r.resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cb, err := r.resolve(cmd.Context(), args[1])
			if err != nil {
				return err
			}

			opts := dtw.Options{Window: window, SlopePenalty: penalty, Cyclic: cyclic, MemoryMode: dtw.TwoRows}
			if showPath {
				opts.MemoryMode, opts.ReturnPath = dtw.FullMatrix, true
			}
			dist, path, err := dtw.Curves(ca, cb, &opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "DTW(%s, %s) = %.4f\n", ca.Name(), cb.Name(), dist)
			if showPath && len(path) > 0 {
				fmt.Fprintf(w, "path: %d steps, mean cost %.4f\n", len(path), dist/float64(len(path)))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&window, "window", -1, "Sakoe-Chiba band half-width, -1 for none")
	cmd.Flags().Float64Var(&penalty, "penalty", 0, "extra cost per non-diagonal step")
	cmd.Flags().BoolVar(&cyclic, "cyclic", false, "let b start at any point (closed curves)")
	cmd.Flags().BoolVar(&showPath, "path", false, "also report the alignment path length")

	return cmd
}

// curveResolver loads compare operands, opening the store only when an
// operand is not a file.
type curveResolver struct {
	app   *app
	store *store.Store
}

func (r *curveResolver) resolve(ctx context.Context, arg string) (*knot.Curve, error) {
	if isDataFile(arg) {
		buf, err := export.Load(arg)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(arg), "."+export.DefaultSuffix)
		return knot.New(knot.WithName(name), knot.WithCoordinates(buf))
	}
	if r.store == nil {
		s, err := r.app.openStore(ctx)
		if err != nil {
			return nil, err
		}
		r.store = s
	}

	return r.store.Get(ctx, arg)
}

func (r *curveResolver) close() error {
	if r.store == nil {
		return nil
	}
	return r.store.Close()
}

// isDataFile reports whether arg should be read as a coordinate file: it
// carries the export suffix or names an existing regular file.
func isDataFile(arg string) bool {
	if strings.HasSuffix(arg, "."+export.DefaultSuffix) {
		return true
	}
	fi, err := os.Stat(arg)
	return err == nil && fi.Mode().IsRegular()
}
