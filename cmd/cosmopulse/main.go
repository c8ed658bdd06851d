package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/signalsfoundry/cosmopulse/catalog"
	"github.com/signalsfoundry/cosmopulse/core"
	"github.com/signalsfoundry/cosmopulse/internal/logging"
	"github.com/signalsfoundry/cosmopulse/internal/mockdata"
	"github.com/signalsfoundry/cosmopulse/internal/observability"
	"github.com/signalsfoundry/cosmopulse/timectrl"
)

func main() {
	objects := flag.Int("objects", 25, "number of synthetic objects to track")
	seed := flag.Int64("seed", 42, "seed for the synthetic catalog generator")
	duration := flag.Duration("duration", 60*time.Second, "total assessment run duration")
	tick := flag.Duration("tick", 5*time.Second, "assessment cycle interval")
	accelerated := flag.Bool("accelerated", true, "run in accelerated mode (vs real-time)")
	thresholdKm := flag.Float64("threshold-km", core.DefaultConjunctionThresholdKm, "conjunction screening distance in km")
	metricsAddr := flag.String("metrics-addr", ":9090", "listen address for /metrics, empty to disable")

	flag.Parse()

	ctx := context.Background()
	log := logging.NewFromEnv()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "tracing init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdownTracing, log)

	metrics, err := observability.NewEngineCollector(nil)
	if err != nil {
		log.Error(ctx, "metrics init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Warn(ctx, "metrics server stopped", logging.String("error", err.Error()))
			}
		}()
		log.Info(ctx, "serving metrics", logging.String("addr", *metricsAddr))
	}

	start := time.Now().UTC()
	gen := mockdata.NewGenerator(*seed)
	store := catalog.NewStore()

	generated, err := gen.Catalog(*objects, start)
	if err != nil {
		log.Error(ctx, "catalog generation failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	for _, o := range generated {
		if err := store.AddObject(o); err != nil {
			log.Warn(ctx, "skipping object",
				logging.String("object", o.ID),
				logging.String("error", err.Error()),
			)
		}
	}
	// Seed a few hours of weather history so the first cycle has context.
	for _, snap := range gen.WeatherSeries(6, start.Add(-3*time.Hour), 30*time.Minute) {
		store.RecordWeather(snap)
	}
	log.Info(ctx, "catalog ready",
		logging.Int("objects", store.Size()),
		logging.Float64("threshold_km", *thresholdKm),
	)

	engine := core.NewEngine(store, core.AssessmentConfig{
		ThresholdKm: *thresholdKm,
		Log:         log,
		Metrics:     metrics,
	})

	mode := timectrl.RealTime
	if *accelerated {
		mode = timectrl.Accelerated
	}
	tc := timectrl.NewController(start, *tick, mode)

	var lastResult core.CycleResult
	tc.AddListener(func(now time.Time) {
		store.RecordWeather(gen.WeatherSnapshot(now))
		lastResult = engine.RunCycle(ctx, now)
		for _, alert := range lastResult.Alerts {
			log.Info(ctx, "alert",
				logging.String("type", string(alert.Type)),
				logging.String("severity", string(alert.Severity)),
				logging.Float64("risk", alert.RiskScore),
				logging.String("message", alert.Message),
			)
		}
	})

	log.Info(ctx, "starting assessment run",
		logging.String("duration", duration.String()),
		logging.String("tick", tick.String()),
		logging.String("mode", mode.String()),
	)
	<-tc.Start(*duration)

	printReport(lastResult)
}

// printReport writes the final mission impact report as indented JSON so a
// run always ends with a machine-readable summary on stdout.
func printReport(res core.CycleResult) {
	out, err := json.MarshalIndent(res.Report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode report: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
