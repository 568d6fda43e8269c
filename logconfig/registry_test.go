//go:build !nolog

package logconfig

import (
	"testing"

	"github.com/mordilloSan/go-modlogger/logger"
)

func TestLoadConfig_FeedsRegistry(t *testing.T) {
	path := writeFile(t, "logging.yaml", yamlConfig)
	cfg, err := LoadConfig(path, logger.DefaultConfig())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	var lines []string
	cfg.Sink = logger.SinkFunc(func(format string, args ...any) {
		lines = append(lines, format)
	})
	reg, err := logger.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log := reg.MustDeclare("cfg", logger.DebugLevel)
	log.Debugf("above the ceiling")
	log.Infof("at the ceiling")

	if len(lines) != 1 || lines[0] != "[cfg] INFO: at the ceiling\n" {
		t.Fatalf("records = %q", lines)
	}
}
