//go:build nolog

package logger

import "testing"

func TestNolog_EverythingCompiledOut(t *testing.T) {
	var calls int
	var ticks int
	reg, err := New(Config{
		IncludeTick: true,
		MinLevel:    DebugLevel,
		MaxLevel:    DebugLevel,
		Sink:        SinkFunc(func(string, ...any) { calls++ }),
		Ticks:       TickFunc(func() uint32 { ticks++; return 1 }),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log := reg.MustDeclare("off", DebugLevel)

	log.Errorf("e")
	log.Warnf("w")
	log.Infof("i")
	log.Debugf("d")
	reg.Printf("raw\n")

	if calls != 0 || ticks != 0 {
		t.Fatalf("sink calls=%d tick queries=%d, want 0", calls, ticks)
	}
	if log.Enabled(ErrorLevel) {
		t.Fatal("Enabled must report false when logging is compiled out")
	}
	// Resolution still works; only output is removed.
	if log.Effective() != DebugLevel {
		t.Fatalf("Effective() = %s, want DEBUG", log.Effective())
	}
}
