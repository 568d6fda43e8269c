//go:build !nolog

package logger

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

var recordPattern = regexp.MustCompile(
	`^\[ *\d+\] - (\x1b\[1;3[13]m)?\[mod-\d+\] (ERROR|WARNING|INFO|DEBUG): g\d+-m\d+(\x1b\[0m)?$`)

// TestConcurrency_RecordsDoNotInterleave verifies that records written from many
// goroutines through one WriterSink stay intact.
func TestConcurrency_RecordsDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	var tick atomic.Uint32
	cfg := Config{
		IncludeTick:  true,
		EnableColors: true,
		MinLevel:     ErrorLevel,
		MaxLevel:     DebugLevel,
		Sink:         NewWriterSink(&buf),
		Ticks:        TickFunc(func() uint32 { return tick.Add(1) }),
	}
	reg := newTestRegistry(t, cfg)

	const numGoroutines = 200
	const messagesPerGoroutine = 50

	modules := make([]*Module, numGoroutines)
	for i := range modules {
		modules[i] = reg.MustDeclare(fmt.Sprintf("mod-%d", i), DebugLevel)
	}

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			log := modules[id]
			for j := 0; j < messagesPerGoroutine; j++ {
				log.Errorf("g%d-m%d", id, j)
				log.Warnf("g%d-m%d", id, j)
				log.Infof("g%d-m%d", id, j)
				log.Debugf("g%d-m%d", id, j)
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	expected := numGoroutines * messagesPerGoroutine * 4
	if len(lines) != expected {
		t.Fatalf("expected %d log lines, got %d", expected, len(lines))
	}
	for i, line := range lines {
		if !recordPattern.MatchString(line) {
			t.Fatalf("line %d appears garbled: %q", i, line)
		}
	}
	if got := tick.Load(); got != uint32(expected) {
		t.Fatalf("tick source queried %d times, want %d", got, expected)
	}
}

// TestConcurrency_DeclareIsExclusive verifies only one of many racing
// declarations of the same name succeeds.
func TestConcurrency_DeclareIsExclusive(t *testing.T) {
	reg := newTestRegistry(t, plainConfig(&recordingSink{}))

	const numGoroutines = 64
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	var ok, dup atomic.Int64

	for n := 0; n < numGoroutines; n++ {
		go func() {
			defer wg.Done()
			_, err := reg.Declare("shared", InfoLevel)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, ErrDuplicateModule):
				dup.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if ok.Load() != 1 || dup.Load() != numGoroutines-1 {
		t.Fatalf("ok=%d dup=%d, want 1 and %d", ok.Load(), dup.Load(), numGoroutines-1)
	}
}

// TestConcurrency_LoggingWhileInit verifies modules can log while the default
// registry is being initialized.
func TestConcurrency_LoggingWhileInit(t *testing.T) {
	old := std
	defer func() { std = old }()
	std = newRegistry()

	var before bytes.Buffer
	std.cur.Store(buildSettings(plainConfig(NewWriterSink(&before))))

	var after bytes.Buffer
	log := MustDeclare("race", WarnLevel)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			log.Warnf("n=%d", i)
		}
	}()
	go func() {
		defer wg.Done()
		if err := Init(plainConfig(NewWriterSink(&after))); err != nil {
			t.Errorf("Init: %v", err)
		}
	}()
	wg.Wait()

	total := strings.Count(before.String(), "\n") + strings.Count(after.String(), "\n")
	if total != 1000 {
		t.Fatalf("expected 1000 records across both sinks, got %d", total)
	}
}
