package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/physkit/internal/angle"
	"github.com/san-kum/physkit/internal/config"
	"github.com/san-kum/physkit/internal/kinematics"
	"github.com/san-kum/physkit/internal/statics"
	"github.com/san-kum/physkit/internal/stats"
	"github.com/san-kum/physkit/internal/thermo"
	"github.com/san-kum/physkit/internal/tui"
	"github.com/san-kum/physkit/internal/units"
	"github.com/san-kum/physkit/internal/viz"
)

var (
	beamConfigFile string
	beamSamples    int

	projConfigFile string
	projSpeed      float64
	projAngleDeg   float64
	projHeight     float64
	projGravity    float64
	projSamples    int

	gasConfigFile  string
	gasMoles       float64
	gasTemperature float64
	gasVolume      float64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "physkit",
		Short: "mechanics, thermodynamics, and unit-conversion toolkit",
	}

	beamCmd := &cobra.Command{
		Use:   "beam",
		Short: "solve beam support reactions and plot internal-force diagrams",
		RunE:  runBeam,
	}
	beamCmd.Flags().StringVar(&beamConfigFile, "config", "", "scenario file (yaml)")
	beamCmd.Flags().IntVar(&beamSamples, "samples", config.DefaultSamples, "diagram sample count (overrides scenario file)")

	projectileCmd := &cobra.Command{
		Use:   "projectile",
		Short: "projectile flight summary and trajectory plot",
		RunE:  runProjectile,
	}
	projectileCmd.Flags().StringVar(&projConfigFile, "config", "", "scenario file (yaml)")
	projectileCmd.Flags().Float64Var(&projSpeed, "speed", config.DefaultSpeed, "launch speed (m/s)")
	projectileCmd.Flags().Float64Var(&projAngleDeg, "angle", config.DefaultAngleDeg, "launch angle (degrees)")
	projectileCmd.Flags().Float64Var(&projHeight, "height", 0, "release height (m)")
	projectileCmd.Flags().Float64Var(&projGravity, "gravity", config.DefaultGravity, "gravity (m/s²)")
	projectileCmd.Flags().IntVar(&projSamples, "samples", config.DefaultSamples, "trajectory sample count")

	gasCmd := &cobra.Command{
		Use:   "gas",
		Short: "ideal-gas pressure from an n, T, V state",
		RunE:  runGas,
	}
	gasCmd.Flags().StringVar(&gasConfigFile, "config", "", "scenario file (yaml)")
	gasCmd.Flags().Float64Var(&gasMoles, "moles", config.DefaultMoles, "amount of substance (mol)")
	gasCmd.Flags().Float64Var(&gasTemperature, "temp", config.DefaultTempKelvin, "temperature (K)")
	gasCmd.Flags().Float64Var(&gasVolume, "volume", config.DefaultVolume, "volume (m³)")

	convertCmd := &cobra.Command{
		Use:   "convert [temp|pressure|angle] [value] [unit]",
		Short: "convert a value between units",
		Args:  cobra.ExactArgs(3),
		RunE:  runConvert,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [numbers...]",
		Short: "summary statistics of numbers from args or stdin",
		RunE:  runStats,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive unit converter",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(tui.NewConverter(), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	rootCmd.AddCommand(beamCmd, projectileCmd, gasCmd, convertCmd, statsCmd, tuiCmd)
	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// resolveSamples picks a diagram resolution: an explicit flag wins over
// the scenario file, and anything below two points falls back to the
// default.
func resolveSamples(fromFile int, flagChanged bool, flagValue int) int {
	n := fromFile
	if flagChanged {
		n = flagValue
	}
	if n < 2 {
		return config.DefaultSamples
	}
	return n
}

func runBeam(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(beamConfigFile)
	if err != nil {
		return err
	}
	bc := cfg.Beam

	beam := statics.Beam{
		SupportA: bc.SupportA,
		SupportB: bc.SupportB,
	}
	for _, l := range bc.Loads {
		beam.Loads = append(beam.Loads, statics.PointLoad{Position: l.Position, Force: l.Force})
	}
	for _, u := range bc.UDLs {
		beam.UDLs = append(beam.UDLs, statics.UDL{Start: u.Start, End: u.End, Intensity: u.Intensity})
	}

	ra, rb, err := beam.Reactions()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Header("beam reactions"))
	fmt.Fprint(out, viz.Table([][2]string{
		viz.Row("reaction A", ra, "N"),
		viz.Row("reaction B", rb, "N"),
	}))

	n := resolveSamples(bc.Samples, cmd.Flags().Changed("samples"), beamSamples)
	xs := make([]float64, n)
	span := bc.SupportB - bc.SupportA
	for i := range xs {
		xs[i] = bc.SupportA + span*float64(i)/float64(n-1)
	}

	shear, err := beam.ShearDiagram(xs)
	if err != nil {
		return err
	}
	moment, err := beam.BendingMomentDiagram(xs)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, viz.Plot(shear, "shear force (N)"))
	fmt.Fprintln(out, viz.Plot(moment, "bending moment (N·m)"))
	fmt.Fprintln(out, viz.Note("left-limit convention: values at a load position show the jump's left side"))
	return nil
}

func runProjectile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(projConfigFile)
	if err != nil {
		return err
	}
	pc := cfg.Projectile

	// explicit flags win over the scenario file
	flags := cmd.Flags()
	if flags.Changed("speed") {
		pc.Speed = projSpeed
	}
	if flags.Changed("angle") {
		pc.AngleDeg = projAngleDeg
	}
	if flags.Changed("height") {
		pc.Height = projHeight
	}
	if flags.Changed("gravity") {
		pc.Gravity = projGravity
	}

	launch := kinematics.Launch{
		Speed:   pc.Speed,
		Angle:   angle.DegToRad(pc.AngleDeg),
		Height:  pc.Height,
		Gravity: pc.Gravity,
	}
	n := resolveSamples(pc.Samples, flags.Changed("samples"), projSamples)

	flight, err := launch.TimeOfFlight()
	if err != nil {
		return err
	}
	apex, err := launch.MaxHeight()
	if err != nil {
		return err
	}
	dist, err := launch.Range()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Header("projectile"))
	fmt.Fprint(out, viz.Table([][2]string{
		viz.Row("time of flight", flight, "s"),
		viz.Row("apex height", apex, "m"),
		viz.Row("range", dist, "m"),
	}))

	ys := make([]float64, n)
	for i := range ys {
		t := flight * float64(i) / float64(n-1)
		p, err := launch.PositionAt(t)
		if err != nil {
			return err
		}
		ys[i] = p.Y
	}
	fmt.Fprintln(out, viz.Plot(ys, "height over flight time (m)"))
	return nil
}

func runGas(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(gasConfigFile)
	if err != nil {
		return err
	}
	gc := cfg.Gas

	flags := cmd.Flags()
	if flags.Changed("moles") {
		gc.Moles = gasMoles
	}
	if flags.Changed("temp") {
		gc.Temperature = gasTemperature
	}
	if flags.Changed("volume") {
		gc.Volume = gasVolume
	}

	p, err := thermo.PressureFromMoles(gc.Moles, gc.Temperature, gc.Volume)
	if err != nil {
		return err
	}
	atm, err := units.ToAtmosphere(p, units.Pascal)
	if err != nil {
		return err
	}
	bar, err := units.ToBar(p, units.Pascal)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Header("ideal gas"))
	fmt.Fprint(out, viz.Table([][2]string{
		viz.Row("pressure", p, "Pa"),
		viz.Row("pressure", atm, "atm"),
		viz.Row("pressure", bar, "bar"),
	}))
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	kind := args[0]
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("value %q is not a number", args[1])
	}
	unit := args[2]
	out := cmd.OutOrStdout()

	switch kind {
	case "temp", "temperature":
		var from units.TemperatureUnit
		switch strings.ToLower(unit) {
		case "k", "kelvin":
			from = units.Kelvin
		case "c", "celsius":
			from = units.Celsius
		case "f", "fahrenheit":
			from = units.Fahrenheit
		default:
			return fmt.Errorf("unknown temperature unit %q", unit)
		}
		k, err := units.ToKelvin(v, from)
		if err != nil {
			return err
		}
		c, err := units.ToCelsius(v, from)
		if err != nil {
			return err
		}
		f, err := units.ToFahrenheit(v, from)
		if err != nil {
			return err
		}
		fmt.Fprint(out, viz.Table([][2]string{
			viz.Row("kelvin", k, "K"),
			viz.Row("celsius", c, "°C"),
			viz.Row("fahrenheit", f, "°F"),
		}))
	case "pressure":
		var from units.PressureUnit
		switch strings.ToLower(unit) {
		case "pa", "pascal":
			from = units.Pascal
		case "bar":
			from = units.Bar
		case "atm", "atmosphere":
			from = units.Atmosphere
		case "mmhg":
			from = units.MillimeterOfMercury
		default:
			return fmt.Errorf("unknown pressure unit %q", unit)
		}
		pa, err := units.ToPascal(v, from)
		if err != nil {
			return err
		}
		bar, err := units.ToBar(v, from)
		if err != nil {
			return err
		}
		atm, err := units.ToAtmosphere(v, from)
		if err != nil {
			return err
		}
		mm, err := units.ToMillimeterOfMercury(v, from)
		if err != nil {
			return err
		}
		fmt.Fprint(out, viz.Table([][2]string{
			viz.Row("pascal", pa, "Pa"),
			viz.Row("bar", bar, "bar"),
			viz.Row("atmosphere", atm, "atm"),
			viz.Row("mmHg", mm, "mmHg"),
		}))
	case "angle":
		switch strings.ToLower(unit) {
		case "deg", "degrees":
			fmt.Fprint(out, viz.Table([][2]string{
				viz.Row("radians", angle.DegToRad(v), "rad"),
				viz.Row("wrapped", angle.WrapDeg(v), "deg"),
			}))
		case "rad", "radians":
			fmt.Fprint(out, viz.Table([][2]string{
				viz.Row("degrees", angle.RadToDeg(v), "deg"),
				viz.Row("wrapped", angle.WrapRad(v), "rad"),
			}))
		default:
			return fmt.Errorf("unknown angle unit %q", unit)
		}
	default:
		return fmt.Errorf("unknown conversion %q (want temp, pressure, or angle)", kind)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	values, err := parseNumbers(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	mn, err := stats.Min(values)
	if err != nil {
		return err
	}
	mx, err := stats.Max(values)
	if err != nil {
		return err
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return err
	}
	median, err := stats.Median(values)
	if err != nil {
		return err
	}
	sd, err := stats.StdDev(values)
	if err != nil {
		return err
	}
	p95, err := stats.Percentile(values, 95)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Header(fmt.Sprintf("stats (n=%d)", len(values))))
	fmt.Fprint(out, viz.Table([][2]string{
		viz.Row("min", mn, ""),
		viz.Row("max", mx, ""),
		viz.Row("mean", mean, ""),
		viz.Row("median", median, ""),
		viz.Row("stddev", sd, ""),
		viz.Row("p95", p95, ""),
	}))
	return nil
}

func parseNumbers(args []string, stdin io.Reader) ([]float64, error) {
	tokens := args
	if len(tokens) == 0 {
		scanner := bufio.NewScanner(stdin)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			tokens = append(tokens, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	values := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", tok)
		}
		values = append(values, v)
	}
	return values, nil
}
