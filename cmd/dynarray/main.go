package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/dynarray/internal/config"
	"github.com/san-kum/dynarray/internal/dynarray"
	"github.com/san-kum/dynarray/internal/experiment"
	"github.com/san-kum/dynarray/internal/metrics"
	"github.com/san-kum/dynarray/internal/quicksort"
	"github.com/san-kum/dynarray/internal/storage"
	"github.com/san-kum/dynarray/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	desc       bool
	pattern    string
	sizes      []int
	seed       int64
	field      string
	pretty     bool
)

// demoCapacity is the starting capacity of the demo scenario.
const demoCapacity = 5

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dynarray",
		Short:        "growable array and quicksort lab",
		SilenceUsage: true,
		RunE:         runDemo,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".dynarray", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "render arrays as cells")
	rootCmd.Flags().Int("capacity", demoCapacity, "initial capacity")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "walk through append, insert, remove, set, sort and clear",
		RunE:  runDemo,
	}
	demoCmd.Flags().Int("capacity", demoCapacity, "initial capacity")

	sortCmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "sort integers with quicksort",
		Args:  cobra.ArbitraryArgs,
		RunE:  runSort,
	}
	sortCmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	sortCmd.Flags().Int("capacity", config.DefaultCapacity, "initial capacity")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "fill and sort arrays of growing size, then save the run",
		RunE:  runBench,
	}
	benchCmd.Flags().StringVar(&pattern, "pattern", config.DefaultPattern, "input pattern")
	benchCmd.Flags().IntSliceVar(&sizes, "sizes", config.DefaultSizes, "array sizes")
	benchCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	benchCmd.Flags().Int("capacity", config.DefaultCapacity, "initial capacity")
	benchCmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	benchCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list bench runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot bench run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&field, "field", "comparisons", "sample field to plot")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportCSV(cmd.OutOrStdout(), args[0])
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and samples to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(cmd.OutOrStdout(), args[0])
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available bench presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				cfg := config.GetPreset(p)
				fmt.Printf("  %-14s pattern=%s capacity=%d order=%s\n", p, cfg.Bench.Pattern, cfg.InitialCapacity, cfg.Order)
			}
			return nil
		},
	}

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "interactive array playground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("capacity") {
				cfg.InitialCapacity, _ = cmd.Flags().GetInt("capacity")
			}
			return viz.RunInteractive(cfg.InitialCapacity, time.Now().UnixNano())
		},
	}
	playCmd.Flags().Int("capacity", config.DefaultCapacity, "initial capacity")

	rootCmd.AddCommand(demoCmd, sortCmd, benchCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, playCmd)
	return rootCmd
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func show(a *dynarray.Array[int]) string {
	if pretty {
		return "\n" + viz.RenderArray(a, -1)
	}
	return a.String()
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	initial, err := cmd.Flags().GetInt("capacity")
	if err != nil {
		return err
	}
	if configFile != "" && !cmd.Flags().Changed("capacity") {
		initial = cfg.InitialCapacity
	}

	list, err := dynarray.New[int](initial)
	if err != nil {
		return err
	}

	values := cfg.Values
	for _, v := range values {
		if err := list.Append(v); err != nil {
			return err
		}
	}
	fmt.Printf("appended %v: %s\n", values, show(list))

	steps := []struct {
		desc string
		run  func() error
	}{
		{"insert 25 at index 2", func() error { return list.Insert(2, 25) }},
		{"remove index 3", func() error { _, err := list.Remove(3); return err }},
		{"set index 1 to 15", func() error { return list.Set(1, 15) }},
		{"sort " + cfg.Order, func() error { quicksort.Sort[int](list, cfg.Comparator()); return nil }},
		{"clear", func() error { list.Clear(); return nil }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			fmt.Printf("%s: %v\n", step.desc, err)
			continue
		}
		fmt.Printf("%s: %s\n", step.desc, show(list))
	}

	if _, err := dynarray.New[int](-5); errors.Is(err, dynarray.ErrInvalidCapacity) {
		fmt.Printf("new(-5): %v\n", err)
	}
	fmt.Printf("empty list: %s\n", dynarray.NewDefault[int]())

	return nil
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("capacity") || configFile == "" {
		if cfg.InitialCapacity, err = cmd.Flags().GetInt("capacity"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("desc") || configFile == "" {
		cfg.Order = config.OrderAsc
		if desc {
			cfg.Order = config.OrderDesc
		}
	}

	values := cfg.Values
	if len(args) > 0 {
		values = make([]int, 0, len(args))
		for _, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", arg, err)
			}
			values = append(values, v)
		}
	}

	list, err := dynarray.New[int](cfg.InitialCapacity)
	if err != nil {
		return err
	}
	growth := metrics.NewGrowth()
	growth.Observe(list.Len(), list.Cap())
	for _, v := range values {
		if err := list.Append(v); err != nil {
			return err
		}
		growth.Observe(list.Len(), list.Cap())
	}

	comparisons := metrics.NewComparisons[int]()
	writes := metrics.NewWrites[int](list)
	quicksort.Sort[int](writes, comparisons.Wrap(cfg.Comparator()))

	fmt.Println(show(list))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, m := range []metrics.Metric{comparisons, writes, growth} {
		fmt.Fprintf(w, "%s\t%.0f\n", m.Name(), m.Value())
	}
	fmt.Fprintf(w, "capacity\t%d\n", list.Cap())
	return w.Flush()
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	// Load preset if specified
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		fileCfg, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = fileCfg
	}

	// CLI flags override both
	if cmd.Flags().Changed("pattern") || (preset == "" && configFile == "") {
		cfg.Bench.Pattern = pattern
	}
	if cmd.Flags().Changed("sizes") || (preset == "" && configFile == "") {
		cfg.Bench.Sizes = sizes
	}
	if cmd.Flags().Changed("seed") || (preset == "" && configFile == "") {
		cfg.Bench.Seed = seed
	}
	if cmd.Flags().Changed("capacity") {
		cfg.InitialCapacity, _ = cmd.Flags().GetInt("capacity")
	}
	if cmd.Flags().Changed("desc") {
		cfg.Order = config.OrderAsc
		if desc {
			cfg.Order = config.OrderDesc
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	gen, err := experiment.NewRegistry().GetPattern(cfg.Bench.Pattern)
	if err != nil {
		return err
	}

	expCfg := experiment.Config{
		Pattern:         cfg.Bench.Pattern,
		Sizes:           cfg.Bench.Sizes,
		InitialCapacity: cfg.InitialCapacity,
		Seed:            cfg.Bench.Seed,
	}
	exp := experiment.New(expCfg)
	if err := exp.Setup(gen, cfg.Comparator()); err != nil {
		return err
	}

	fmt.Printf("benchmarking %s input\n\n", cfg.Bench.Pattern)
	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tCOMPARISONS\tWRITES\tREGROWTHS\tCAPACITY\tTIME")
	for _, s := range result.Samples {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%v\n",
			s.Size, s.Comparisons, s.Writes, s.Regrowths, s.Capacity, s.Elapsed)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	runID, err := st.Save(expCfg, cfg.Order, result)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATTERN\tTIME\tCAP\tORDER\tSIZES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%v\n",
			run.ID,
			run.Pattern,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.InitialCapacity,
			run.Order,
			run.Sizes,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("pattern: %s\n", meta.Pattern)
	fmt.Printf("samples: %d\n\n", len(samples))

	graph, err := viz.PlotSamples(samples, field)
	if err != nil {
		return err
	}
	fmt.Println(graph)
	fmt.Println()

	growth, err := st.LoadGrowth(runID)
	if err != nil {
		return err
	}
	fmt.Println(viz.PlotGrowth(growth))

	return nil
}
