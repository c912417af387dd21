package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sahoos/cmbspec/internal/config"
	"github.com/sahoos/cmbspec/internal/export"
	"github.com/sahoos/cmbspec/internal/render"
	"github.com/sahoos/cmbspec/internal/spectrum"
)

var (
	tCMB     float64
	betaSync float64
	betaDust float64
	tDust    float64

	configFile  string
	preset      string
	outPath     string
	useDefaults bool
	noView      bool
	format      string
)

// main registers the cmbspec commands. The root command is the full
// pipeline: collect parameters (interactively unless pinned by flags,
// preset, or config file), evaluate the model, save the figure, and
// show the terminal view.
func main() {
	rootCmd := &cobra.Command{
		Use:   "cmbspec",
		Short: "CMB spectrum and foreground modeling",
		RunE:  runSimulation,
	}
	addParamFlags(rootCmd)
	rootCmd.Flags().StringVar(&outPath, "out", filepath.Join("results", "cmb_spectrum.png"), "output image path")
	rootCmd.Flags().BoolVar(&useDefaults, "defaults", false, "accept all defaults without prompting")
	rootCmd.Flags().BoolVar(&noView, "no-view", false, "skip the terminal spectrum view")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "evaluate the model and dump the spectrum to stdout",
		RunE:  runExport,
	}
	addParamFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "csv", "output format (csv or json)")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "evaluate the model and plot it in the terminal",
		RunE:  runView,
	}
	addParamFlags(viewCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available parameter presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(exportCmd, viewCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&tCMB, "t-cmb", config.DefaultTCMB, "CMB temperature (K)")
	cmd.Flags().Float64Var(&betaSync, "beta-sync", config.DefaultBetaSync, "synchrotron spectral index")
	cmd.Flags().Float64Var(&betaDust, "beta-dust", config.DefaultBetaDust, "dust emissivity index")
	cmd.Flags().Float64Var(&tDust, "t-dust", config.DefaultTDust, "dust temperature (K)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")
}

// collectParams resolves the model parameters for a command: preset,
// then config file, then individual flags, each layer overriding the
// previous one.
func collectParams(cmd *cobra.Command) (config.Params, error) {
	p := config.Default()

	if preset != "" {
		pp := config.GetPreset(preset)
		if pp == nil {
			return p, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		p = *pp
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return p, fmt.Errorf("failed to load config: %w", err)
		}
		p = loaded
	}

	if cmd.Flags().Changed("t-cmb") {
		p.TCMB = tCMB
	}
	if cmd.Flags().Changed("beta-sync") {
		p.BetaSync = betaSync
	}
	if cmd.Flags().Changed("beta-dust") {
		p.BetaDust = betaDust
	}
	if cmd.Flags().Changed("t-dust") {
		p.TDust = tDust
	}

	return p, nil
}

// paramsPinned reports whether any flag, preset, or config file fixed
// the parameters, which suppresses the interactive prompts.
func paramsPinned(cmd *cobra.Command) bool {
	return useDefaults || preset != "" || configFile != "" ||
		cmd.Flags().Changed("t-cmb") || cmd.Flags().Changed("beta-sync") ||
		cmd.Flags().Changed("beta-dust") || cmd.Flags().Changed("t-dust")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	fmt.Println()
	fmt.Println(render.Banner())
	fmt.Println()

	p, err := collectParams(cmd)
	if err != nil {
		return err
	}
	if !paramsPinned(cmd) {
		p = config.Prompt(os.Stdin, os.Stdout)
	}

	res, err := spectrum.Evaluate(p)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}
	if err := render.SavePNG(res, outPath); err != nil {
		return err
	}
	fmt.Printf("\nplot saved to: %s\n", render.PathStyle.Render(outPath))

	if !noView {
		fmt.Println()
		render.Terminal(res, os.Stdout)
	}

	peakFreq, peakVal := res.Peak()
	fmt.Printf("total peak: %.3e W m^-2 Hz^-1 sr^-1 at %.1f GHz\n", peakVal, peakFreq/1e9)

	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := collectParams(cmd)
	if err != nil {
		return err
	}

	res, err := spectrum.Evaluate(p)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		return export.CSV(os.Stdout, res)
	case "json":
		return export.JSON(os.Stdout, res)
	default:
		return fmt.Errorf("unknown format: %s (want csv or json)", format)
	}
}

func runView(cmd *cobra.Command, args []string) error {
	p, err := collectParams(cmd)
	if err != nil {
		return err
	}

	res, err := spectrum.Evaluate(p)
	if err != nil {
		return err
	}

	fmt.Println(render.Banner())
	fmt.Println()
	render.Terminal(res, os.Stdout)
	return nil
}
