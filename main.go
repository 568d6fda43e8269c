package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-modlogger/logconfig"
	"github.com/mordilloSan/go-modlogger/logger"
	"github.com/mordilloSan/go-modlogger/logmetrics"
)

// Modules are declared once per package, before Init runs.
var (
	storageLog = logger.MustDeclare("storage", logger.WarnLevel)
	radioLog   = logger.MustDeclare("radio", logger.DebugLevel)
	appLog     = logger.MustDeclareDefault("app")
)

var (
	cfgFile     string
	metricsAddr string
	hold        time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "go-modlogger",
	Short: "Demonstrates per-module log levels",
	Long: `go-modlogger logs a few records from three modules so the effect of
the global min/max levels, the tick prefix and colors can be seen.

Configuration comes from --config (TOML, YAML or JSON5) and the
LOGGER_TICK, LOGGER_COLORS, LOGGER_LEVEL_MIN, LOGGER_LEVEL_MAX,
LOGGER_LEVEL_DEFAULT and LOGGER_FILE environment variables.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml, .json5)")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :2112")
	rootCmd.Flags().DurationVar(&hold, "hold", 0, "keep serving metrics for this long after logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := logconfig.LoadConfig(cfgFile, logger.DefaultConfig())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	m := logmetrics.New(prometheus.DefaultRegisterer)
	cfg.Sink = logger.NewWriterSink(m.Writer(os.Stdout)).OnError(m.ObserveFailure)

	if err := logger.Init(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	if metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(metricsAddr, nil); err != nil {
				appLog.Errorf("metrics server: %v", err)
			}
		}()
		appLog.Infof("metrics on %s/metrics", metricsAddr)
	}

	appLog.Warnf("starting with levels [%s, %s]", cfg.MinLevel, cfg.MaxLevel)

	storageLog.Infof("mounted /data")
	storageLog.Warnf("disk at %d%%", 90)
	storageLog.Errorf("write failed: %v", "no space left on device")

	radioLog.Debugf("channel %d, tx power %d dBm", 11, 4)
	radioLog.Infof("joined network %q", "mesh-01")

	if radioLog.Enabled(logger.DebugLevel) {
		radioLog.Debugf("neighbor table: %v", []string{"0x1a2b", "0x3c4d"})
	}

	if hold > 0 {
		time.Sleep(hold)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
