package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wildfunctions/closedform/pkg/approx"
	"github.com/wildfunctions/closedform/pkg/engine"
	"github.com/wildfunctions/closedform/pkg/expr"
	"github.com/wildfunctions/closedform/pkg/genetics"
	"github.com/wildfunctions/closedform/pkg/plotting"
	"github.com/wildfunctions/closedform/pkg/target"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "closedform",
		Short:        "Evolve closed-form approximations of target functions",
		RunE:         run,
		SilenceUsage: true,
	}

	defaults := engine.DefaultConfig()
	flags := cmd.Flags()
	flags.String("target", "damped", "target function ("+strings.Join(target.Names(), ", ")+")")
	flags.String("set", "basic", "operator set ("+strings.Join(genetics.Names(), ", ")+")")
	flags.Int("population", defaults.PopulationSize, "population size")
	flags.Int("epochs", defaults.Epochs, "number of epochs")
	flags.Int("elites", defaults.EliteCount, "elites carried over per epoch")
	flags.Int("fresh", defaults.FreshCount, "fresh random candidates per epoch")
	flags.Int("crosses", defaults.RandomCrossCount, "random-vs-random crossovers per epoch")
	flags.Int("workers", defaults.Workers, "parallel scoring workers")
	flags.Int("depth", 4, "initial tree depth")
	flags.Int("max-depth", 8, "simplifier depth budget")
	flags.Float64("mutation", 0.15, "per-node mutation chance")
	flags.Int("samples", 200, "fitness sample points across the domain")
	flags.Uint64("seed", 0, "random seed (0 = random)")
	flags.String("format", "text", "output format (text, json)")
	flags.String("plots", "", "directory for PNG plots (empty = no plots)")
	flags.Bool("verbose", false, "log every epoch")
	flags.String("config", "", "config file (yaml)")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	v.SetEnvPrefix("CLOSEDFORM")
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	tgt, err := target.Get(v.GetString("target"))
	if err != nil {
		return err
	}
	set, err := genetics.Get(v.GetString("set"))
	if err != nil {
		return err
	}

	species := genetics.NewSpecies(set)
	species.InitialDepth = v.GetInt("depth")
	species.MaxDepth = v.GetInt("max-depth")
	species.MutationChance = v.GetFloat64("mutation")

	cfg := engine.DefaultConfig()
	cfg.PopulationSize = v.GetInt("population")
	cfg.Epochs = v.GetInt("epochs")
	cfg.EliteCount = v.GetInt("elites")
	cfg.FreshCount = v.GetInt("fresh")
	cfg.RandomCrossCount = v.GetInt("crosses")
	cfg.Workers = v.GetInt("workers")
	cfg.Seed = v.GetUint64("seed")
	cfg.Direction = engine.Minimize

	score := approx.MSEFitness(tgt.Fn, "x", tgt.Lo, tgt.Hi, v.GetInt("samples"))

	eng, err := engine.New[expr.Node](cfg, species, score)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if v.GetBool("verbose") {
		level = slog.LevelInfo
	}
	eng.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	eng.SetMetrics(species.Metrics())

	// Progress: print only improvements, the way one watches a long run.
	bestSoFar := math.Inf(1)
	eng.AddObserver(func(epoch int, best expr.Node, s float64) {
		if s < bestSoFar {
			bestSoFar = s
			fmt.Fprintf(os.Stderr, "[epoch %d] NEW BEST %.6g | %s\n", epoch, s, best)
		}
	})

	rec := plotting.NewFitnessRecorder()
	eng.AddObserver(rec.Observer())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := eng.Run(ctx)
	if err != nil {
		return err
	}

	switch v.GetString("format") {
	case "json":
		if err := engine.WriteJSONFinal(os.Stdout, report); err != nil {
			return err
		}
	default:
		engine.WriteTextFinal(os.Stdout, report)
		if best, err := eng.Best(); err == nil {
			fmt.Printf("LaTeX:     %s\n", best.Candidate.LaTeX())
		}
	}

	if dir := v.GetString("plots"); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		if err := rec.WritePNG(filepath.Join(dir, "fitness.png")); err != nil {
			fmt.Fprintf(os.Stderr, "error writing fitness plot: %v\n", err)
		}
		if best, err := eng.Best(); err == nil {
			overlay := filepath.Join(dir, "overlay.png")
			if err := plotting.WriteOverlayPNG(overlay, best.Candidate, "x", tgt.Fn, tgt.Lo, tgt.Hi, 200); err != nil {
				fmt.Fprintf(os.Stderr, "error writing overlay plot: %v\n", err)
			}
		}
	}

	return nil
}
