package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/allpaths"
	"github.com/katalvlaran/wayfind/bellmanford"
	"github.com/katalvlaran/wayfind/bestfirst"
	"github.com/katalvlaran/wayfind/internal/config"
	"github.com/katalvlaran/wayfind/tilegrid"
)

var (
	version   = "dev"
	cfgFile   string
	logFormat string
	logLevel  string
	logger    *slog.Logger

	mapSize    int64
	mapSeed    int64
	mapDensity float64
	scenario   string
)

func main() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	root := &cobra.Command{
		Use:   "wayfind",
		Short: "Weighted-graph route finding on tile maps",
		Long:  "Generate or load tile maps and explore them with cheapest-route search, all-destinations routing, and exhaustive path enumeration.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLogLevel(logLevel)
			if err != nil {
				return err
			}
			opts := &slog.HandlerOptions{Level: level}
			switch logFormat {
			case "json":
				logger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
			case "text":
				logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
			default:
				return fmt.Errorf("invalid --log-format %q (use: text, json)", logFormat)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./wayfind.yaml)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format (text, json)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		demoCmd(),
		routesCmd(),
		enumerateCmd(),
		versionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// addMapFlags registers the shared map-source flags. Flags override the
// config file only when explicitly set.
func addMapFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&mapSize, "size", 0, "map size (overrides config)")
	cmd.Flags().Int64Var(&mapSeed, "seed", 0, "generation seed (overrides config)")
	cmd.Flags().Float64Var(&mapDensity, "density", 0, "blocked-tile probability in [0,1) (overrides config)")
	cmd.Flags().StringVar(&scenario, "scenario", "", "YAML scenario file (overrides config)")
}

func buildMap(cmd *cobra.Command) (*tilegrid.TileMap, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	mc := cfg.Map
	f := cmd.Flags()
	if f.Changed("size") {
		mc.Size = mapSize
	}
	if f.Changed("seed") {
		mc.Seed = mapSeed
	}
	if f.Changed("density") {
		mc.Density = mapDensity
	}
	if f.Changed("scenario") {
		mc.Scenario = scenario
	}

	if mc.Scenario != "" {
		fh, err := os.Open(mc.Scenario) // #nosec G304 -- path from config/flag
		if err != nil {
			return nil, fmt.Errorf("opening scenario: %w", err)
		}
		defer fh.Close() //nolint:errcheck // best-effort cleanup

		sc, m, err := tilegrid.LoadScenario(fh)
		if err != nil {
			return nil, err
		}
		logger.Info("scenario loaded", "name", sc.Name, "width", m.Width, "height", m.Height)
		return m, nil
	}

	m, err := tilegrid.New(mc.Size, tilegrid.Options{Seed: mc.Seed, BlockDensity: mc.Density})
	if err != nil {
		return nil, err
	}
	logger.Info("map generated", "size", mc.Size, "seed", mc.Seed, "density", mc.Density)
	return m, nil
}

// parseCoord reads a tile position given as "x,y".
func parseCoord(s string) (tilegrid.Vec2, error) {
	var v tilegrid.Vec2
	if _, err := fmt.Sscanf(s, "%d,%d", &v.X, &v.Y); err != nil {
		return tilegrid.Vec2{}, fmt.Errorf("invalid coordinate %q (use: x,y)", s)
	}
	return v, nil
}

// --- demo ---

func demoCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a map and walk its cheapest route",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := buildMap(cmd)
			if err != nil {
				return err
			}

			start := tilegrid.Vec2{}
			target := tilegrid.Vec2{X: m.Width - 1, Y: m.Height - 1}
			if to != "" {
				if target, err = parseCoord(to); err != nil {
					return err
				}
			}

			fmt.Println("Map:")
			if err := m.Render(os.Stdout); err != nil {
				return err
			}

			results, err := bestfirst.Search(m.Graph(), start, target)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Printf("\nNo route from (%d,%d) to (%d,%d).\n", start.X, start.Y, target.X, target.Y)
				return nil
			}

			sp := results[0]
			tiles := make(map[tilegrid.Vec2]struct{}, sp.Len())
			for _, e := range sp.Edges() {
				tiles[e.To] = struct{}{}
			}

			fmt.Printf("\nRoute to (%d,%d): cost %d, %d steps\n", target.X, target.Y, sp.Total(), sp.Len())
			return m.RenderPath(os.Stdout, tiles)
		},
	}

	addMapFlags(cmd)
	cmd.Flags().StringVar(&to, "to", "", "target tile as x,y (default: bottom-right corner)")
	return cmd
}

// --- routes ---

func routesCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Compute cheapest routes from one tile to every reachable tile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := buildMap(cmd)
			if err != nil {
				return err
			}

			start := tilegrid.Vec2{}
			if from != "" {
				if start, err = parseCoord(from); err != nil {
					return err
				}
			}

			routes, err := bellmanford.BellmanFord(m.Graph(), start)
			if err != nil {
				return err
			}

			dests := make([]tilegrid.Vec2, 0, len(routes))
			for d := range routes {
				dests = append(dests, d)
			}
			sort.Slice(dests, func(i, j int) bool {
				if dests[i].Y != dests[j].Y {
					return dests[i].Y < dests[j].Y
				}
				return dests[i].X < dests[j].X
			})

			fmt.Printf("Routes from (%d,%d): %d reachable tiles\n\n", start.X, start.Y, len(dests))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "TILE\tCOST\tSTEPS")
			for _, d := range dests {
				r := routes[d]
				_, _ = fmt.Fprintf(w, "(%d,%d)\t%d\t%d\n", d.X, d.Y, r.Total, len(r.Edges))
			}
			return w.Flush()
		},
	}

	addMapFlags(cmd)
	cmd.Flags().StringVar(&from, "from", "", "start tile as x,y (default: 0,0)")
	return cmd
}

// --- enumerate ---

func enumerateCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Enumerate every simple route from one tile, grouped by destination",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := buildMap(cmd)
			if err != nil {
				return err
			}

			start := tilegrid.Vec2{}
			if from != "" {
				if start, err = parseCoord(from); err != nil {
					return err
				}
			}

			if m.Width*m.Height > 36 {
				logger.Warn("route enumeration is exponential, large maps may take very long",
					"tiles", m.Width*m.Height)
			}

			all, err := allpaths.AllPaths(m.Graph(), start)
			if err != nil {
				return err
			}

			dests := make([]tilegrid.Vec2, 0, len(all))
			for d := range all {
				dests = append(dests, d)
			}
			sort.Slice(dests, func(i, j int) bool {
				if dests[i].Y != dests[j].Y {
					return dests[i].Y < dests[j].Y
				}
				return dests[i].X < dests[j].X
			})

			fmt.Printf("Routes from (%d,%d):\n\n", start.X, start.Y)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "TILE\tROUTES\tCHEAPEST")
			for _, d := range dests {
				paths := all[d]
				cheapest := paths[0].Total()
				for _, sp := range paths[1:] {
					if sp.Total() < cheapest {
						cheapest = sp.Total()
					}
				}
				_, _ = fmt.Fprintf(w, "(%d,%d)\t%d\t%d\n", d.X, d.Y, len(paths), cheapest)
			}
			return w.Flush()
		},
	}

	addMapFlags(cmd)
	cmd.Flags().StringVar(&from, "from", "", "start tile as x,y (default: 0,0)")
	return cmd
}

// --- version ---

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("wayfind %s\n", version)
		},
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid --log-level %q (use: debug, info, warn, error)", s)
	}
}
