package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/rjsim/internal/chart"
	"github.com/san-kum/rjsim/internal/config"
	"github.com/san-kum/rjsim/internal/physics"
	"github.com/san-kum/rjsim/internal/report"
	"github.com/san-kum/rjsim/internal/sweep"
	"github.com/san-kum/rjsim/internal/tui"
)

var (
	machinePath    string
	polymerPath    string
	verbose        bool
	discretisation int
	outDir         string
	ext            string
	ascii          bool
	format         string
	parallel       bool
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	rootCmd := &cobra.Command{
		Use:           "rjsim",
		Short:         "final fiber radius model for rotary jet-spinning",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&machinePath, "machine", config.DefaultMachinePath, "machine document (yaml or ini)")
	rootCmd.PersistentFlags().StringVar(&polymerPath, "polymer", config.DefaultPolymerPath, "polymer document (yaml or ini)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	omegaCmd := &cobra.Command{
		Use:     "omega",
		Aliases: []string{"angular-velocity"},
		Short:   "sweep angular velocity at fixed polymer viscosity",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd.Context(), cmd.OutOrStdout(), sweep.AngularVelocity)
		},
	}

	viscosityCmd := &cobra.Command{
		Use:   "viscosity",
		Short: "sweep polymer viscosity at fixed angular velocity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd.Context(), cmd.OutOrStdout(), sweep.Viscosity)
		},
	}

	for _, c := range []*cobra.Command{omegaCmd, viscosityCmd} {
		c.Flags().IntVarP(&discretisation, "discretisation", "n", sweep.DefaultDiscretisation, "number of samples")
		c.Flags().StringVar(&outDir, "out", "", "directory for chart images (none when empty)")
		c.Flags().StringVar(&ext, "ext", "png", "chart image format (png, svg, pdf)")
		c.Flags().BoolVar(&ascii, "ascii", false, "draw terminal charts")
		c.Flags().StringVar(&format, "format", string(report.Table), "result format: table, csv, json")
		c.Flags().BoolVar(&parallel, "parallel", false, "evaluate samples concurrently")
	}

	deriveCmd := &cobra.Command{
		Use:   "derive",
		Short: "print the ejection threshold, initial velocity and kinematic viscosity",
		Args:  cobra.NoArgs,
		RunE:  runDerive,
	}

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive terminal viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.LoadMachine(machinePath, true)
			if err != nil {
				return err
			}
			p, err := config.LoadPolymer(polymerPath, true)
			if err != nil {
				return err
			}
			return tui.Run(m, p, discretisation)
		},
	}
	viewCmd.Flags().IntVarP(&discretisation, "discretisation", "n", sweep.DefaultDiscretisation, "initial number of samples")

	rootCmd.AddCommand(omegaCmd, viscosityCmd, deriveCmd, viewCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Error("rjsim failed")
		os.Exit(1)
	}
}

func loadParams(kind sweep.Kind) (physics.Machine, physics.Polymer, error) {
	m, err := config.LoadMachine(machinePath, kind.NeedsOmega())
	if err != nil {
		return m, physics.Polymer{}, fmt.Errorf("failed to load machine: %w", err)
	}
	p, err := config.LoadPolymer(polymerPath, kind.NeedsViscosity())
	if err != nil {
		return m, p, fmt.Errorf("failed to load polymer: %w", err)
	}
	return m, p, nil
}

func runSweep(ctx context.Context, w io.Writer, kind sweep.Kind) error {
	f, err := report.ParseFormat(format)
	if err != nil {
		return err
	}

	m, p, err := loadParams(kind)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"machine": m.Name,
		"polymer": p.Name,
	}).Debug("configuration loaded")

	spec := sweep.DefaultSpec(kind)
	spec.N = discretisation
	spec.Parallel = parallel

	start := time.Now()
	res, err := sweep.Run(ctx, spec, m, p)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"kind":      kind.String(),
		"n":         res.Len(),
		"threshold": res.Derived.Threshold,
		"elapsed":   time.Since(start),
	}).Info("sweep complete")

	if err := report.Write(w, res, f); err != nil {
		return err
	}

	full := chart.FromResult(res, false)
	zoom := chart.FromResult(res, true)

	if ascii {
		fmt.Fprintln(os.Stderr, chart.ASCII(full, 80, 12))
		fmt.Fprintln(os.Stderr)
		if zoom.Len() > 0 {
			fmt.Fprintln(os.Stderr, chart.ASCII(zoom, 80, 12))
		}
	}

	if outDir == "" {
		return nil
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	fullPath := filepath.Join(outDir, fmt.Sprintf("final_radius_%s.%s", kind, ext))
	if err := chart.Save(full, fullPath, 0, 0); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	log.WithField("path", fullPath).Info("chart written")

	if zoom.Len() == 0 {
		log.WithField("limit", sweep.ZoomLimit).Warn("no samples under the zoom limit, zoom chart skipped")
		return nil
	}
	zoomPath := filepath.Join(outDir, fmt.Sprintf("final_radius_%s_zoom.%s", kind, ext))
	if err := chart.Save(zoom, zoomPath, 0, 0); err != nil {
		return fmt.Errorf("failed to save zoom chart: %w", err)
	}
	log.WithField("path", zoomPath).Info("chart written")

	return nil
}

func runDerive(cmd *cobra.Command, args []string) error {
	m, err := config.LoadMachine(machinePath, false)
	if err != nil {
		return err
	}
	p, err := config.LoadPolymer(polymerPath, true)
	if err != nil {
		return err
	}

	d, err := physics.Derive(m, p)
	if err != nil {
		return err
	}
	nu, err := physics.KinematicViscosity(p.Viscosity, p.Density)
	if err != nil {
		return err
	}

	fmt.Printf("machine:             %s\n", m.Name)
	fmt.Printf("polymer:             %s\n", p.Name)
	fmt.Printf("omega threshold:     %.6g\n", d.Threshold)
	fmt.Printf("initial velocity:    %.6g m/s\n", d.InitialVelocity)
	fmt.Printf("kinematic viscosity: %.6g m²/s\n", nu)
	return nil
}
