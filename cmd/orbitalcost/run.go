package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/powersat/orbitalcost/pkg/breakeven"
	"github.com/powersat/orbitalcost/pkg/config"
	"github.com/powersat/orbitalcost/pkg/constants"
	"github.com/powersat/orbitalcost/pkg/orbital"
	"github.com/powersat/orbitalcost/pkg/params"
	"github.com/powersat/orbitalcost/pkg/sweep"
	"github.com/powersat/orbitalcost/pkg/terrestrial"
	"github.com/powersat/orbitalcost/pkg/thermal"
)

// loadParams assembles the effective parameter set: defaults, then the
// optional document, then --set overrides, then range validation.
func loadParams(o opts) (params.ParameterSet, error) {
	p := params.Default()

	if o.paramsPath != "" {
		var err error
		p, err = config.LoadParameters(o.paramsPath)
		if err != nil {
			return p, err
		}
	}

	for _, kv := range o.set {
		key, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return p, fmt.Errorf("--set %q: expected key=value", kv)
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return p, fmt.Errorf("--set %s: %w", key, err)
		}
		p, err = params.Apply(p, key, val)
		if err != nil {
			return p, err
		}
	}

	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid parameters: %w", err)
	}
	return p, nil
}

func vfModel(o opts) thermal.VFModel {
	if o.legacyVF {
		return thermal.VFLegacy
	}
	return thermal.VFGeometric
}

func runCompare(o opts) error {
	p, err := loadParams(o)
	if err != nil {
		return err
	}
	c := constants.Default()

	orb := orbital.Calculate(p, c)
	terr := terrestrial.Calculate(p, c)
	th := thermal.Calculate(p, c, orb.ArrayAreaM2, vfModel(o))

	if o.jsonOut {
		return emitJSON(map[string]any{
			"parameters":  p,
			"orbital":     orb,
			"terrestrial": terr,
			"thermal":     th,
		})
	}

	printComparison(os.Stdout, orb, terr)
	printThermal(os.Stdout, th)
	return nil
}

func runThermal(o opts) error {
	p, err := loadParams(o)
	if err != nil {
		return err
	}
	c := constants.Default()

	// Thermal consumes the orbital model's array area.
	orb := orbital.Calculate(p, c)
	th := thermal.Calculate(p, c, orb.ArrayAreaM2, vfModel(o))

	if o.jsonOut {
		return emitJSON(th)
	}
	printThermal(os.Stdout, th)
	return nil
}

func runBreakeven(o opts) error {
	p, err := loadParams(o)
	if err != nil {
		return err
	}
	c := constants.Default()

	res := breakeven.Solve(p, c, o.searchLo, o.searchHi, o.tolerance)

	if o.jsonOut {
		return emitJSON(res)
	}
	printBreakeven(os.Stdout, res)
	return nil
}

func runSweep(ctx context.Context, o opts) error {
	p, err := loadParams(o)
	if err != nil {
		return err
	}
	c := constants.Default()

	scenario, err := config.LoadScenario(o.scenarioPath)
	if err != nil {
		return err
	}

	workers := o.workers
	if workers == 0 {
		workers = scenario.Workers
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	collector, err := sweep.NewCollector(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	var srv *http.Server
	if o.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv = &http.Server{Addr: o.metricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Warn("metrics listener", "err", err)
			}
		}()
		slog.Info("serving sweep metrics", "addr", o.metricsAddr)
	}

	runner := &sweep.Runner{Workers: workers, Metrics: collector}

	start := time.Now()
	points, err := runner.Run(ctx, p, c, scenario.Grid)
	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		_ = srv.Shutdown(shutdownCtx)
		cancel()
	}
	if err != nil {
		return err
	}
	slog.Info("sweep complete", "points", len(points), "elapsed", time.Since(start))

	if o.outPath != "" {
		f, err := os.Create(o.outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(points)
	}

	if o.jsonOut {
		return emitJSON(points)
	}
	printSweep(os.Stdout, scenario.Grid, points)
	return nil
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
