package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// settings is a frozen configuration snapshot. It is never mutated after
// being stored in a Registry.
type settings struct {
	thresholds   Thresholds
	coerced      bool
	includeTick  bool
	enableColors bool
	defaultLevel Level
	sink         Sink
	ticks        TickSource
	file         *os.File
}

// Registry owns the frozen configuration and the set of declared modules.
// Modules declared in one Registry never share names.
type Registry struct {
	cur    atomic.Pointer[settings]
	frozen atomic.Bool

	mu      sync.Mutex
	modules map[string]*Module
}

// std is the default registry used by the package-level functions.
var std = newRegistry()

func newRegistry() *Registry {
	r := &Registry{modules: make(map[string]*Module)}
	r.cur.Store(buildSettings(DefaultConfig()))
	return r
}

// New returns a Registry whose configuration is frozen at cfg.
// Call Close to release the file mirror when Config.FilePath is set.
func New(cfg Config) (*Registry, error) {
	r := &Registry{modules: make(map[string]*Module)}
	if err := r.configure(cfg); err != nil {
		return nil, err
	}
	return r, nil
}

// Init installs cfg into the default registry. It succeeds once; later calls
// return ErrAlreadyInitialized. Modules declared before Init resolve against
// cfg from then on.
// Call Close() to properly close the log file when shutting down.
func Init(cfg Config) error {
	return std.configure(cfg)
}

// Close closes the default registry's log file if one was opened.
func Close() error {
	return std.Close()
}

// Declare declares a module in the default registry.
func Declare(name string, level Level) (*Module, error) {
	return std.Declare(name, level)
}

// DeclareDefault declares a module at the default registry's default level.
func DeclareDefault(name string) (*Module, error) {
	return std.DeclareDefault(name)
}

// MustDeclare declares a module in the default registry and panics on error.
// It is meant for package-level variables:
//
//	var log = logger.MustDeclare("storage", logger.InfoLevel)
func MustDeclare(name string, level Level) *Module {
	return std.MustDeclare(name, level)
}

// MustDeclareDefault declares a module at the default registry's default
// level and panics on error.
func MustDeclareDefault(name string) *Module {
	return std.MustDeclareDefault(name)
}

// Printf writes format and args to the default registry's sink unfiltered.
func Printf(format string, args ...any) {
	std.Printf(format, args...)
}

func (r *Registry) configure(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if !r.frozen.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}
	r.cur.Store(buildSettings(cfg))
	return nil
}

func buildSettings(cfg Config) *settings {
	th, coerced := cfg.Thresholds().Normalize()
	if coerced {
		fmt.Fprintf(outStderr, "logger: MinLevel %s > MaxLevel %s - assigning %s to MinLevel\n",
			cfg.MinLevel, cfg.MaxLevel, cfg.MaxLevel)
	}

	s := &settings{
		thresholds:   th,
		coerced:      coerced,
		includeTick:  cfg.IncludeTick,
		enableColors: cfg.EnableColors,
		defaultLevel: cfg.DefaultModuleLevel,
		sink:         cfg.Sink,
		ticks:        cfg.Ticks,
	}
	if s.sink == nil {
		s.sink = NewWriterSink(outStdout)
	}
	if s.ticks == nil {
		s.ticks = SystemTicks()
	}

	if cfg.FilePath != "" {
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(outStderr, "failed to open log file %s: %v\n", cfg.FilePath, err)
		} else {
			s.file = f
			mirror := NewWriterSink(&plainFileWriter{w: f})
			if ws, ok := s.sink.(*WriterSink); ok {
				mirror.OnError(ws.errorHook())
			}
			s.sink = teeSink{s.sink, mirror}
		}
	}
	return s
}

// teeSink duplicates every record to each sink in order.
type teeSink []Sink

func (t teeSink) Printf(format string, args ...any) {
	for _, s := range t {
		s.Printf(format, args...)
	}
}

// Declare registers a module called name with the given declared level.
// Names are unique per Registry: a second declaration of the same name fails
// with ErrDuplicateModule, even when the level is identical.
func (r *Registry) Declare(name string, level Level) (*Module, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("module %q level %d: %w", name, level, ErrInvalidLevel)
	}
	return r.declare(name, level, false)
}

// DeclareDefault registers a module that follows Config.DefaultModuleLevel.
func (r *Registry) DeclareDefault(name string) (*Module, error) {
	return r.declare(name, OffLevel, true)
}

// MustDeclare is like Declare but panics if the module cannot be declared.
func (r *Registry) MustDeclare(name string, level Level) *Module {
	m, err := r.Declare(name, level)
	if err != nil {
		panic("logger: " + err.Error())
	}
	return m
}

// MustDeclareDefault is like DeclareDefault but panics if the module cannot
// be declared.
func (r *Registry) MustDeclareDefault(name string) *Module {
	m, err := r.DeclareDefault(name)
	if err != nil {
		panic("logger: " + err.Error())
	}
	return m
}

func (r *Registry) declare(name string, level Level, inherit bool) (*Module, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyModuleName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.modules[name]; ok {
		return nil, fmt.Errorf("module %q: %w", name, ErrDuplicateModule)
	}
	m := &Module{
		name:    name,
		tag:     strings.ReplaceAll(name, "%", "%%"),
		level:   level,
		inherit: inherit,
		reg:     r,
	}
	r.modules[name] = m
	return m, nil
}

// Modules returns the declared module names in sorted order.
func (r *Registry) Modules() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Thresholds returns the normalized global window.
func (r *Registry) Thresholds() Thresholds {
	return r.cur.Load().thresholds
}

// Coerced reports whether the configured MinLevel was above MaxLevel and
// has been lowered to it.
func (r *Registry) Coerced() bool {
	return r.cur.Load().coerced
}

// Printf writes format and args to the sink without filtering or decoration.
func (r *Registry) Printf(format string, args ...any) {
	if !compiledIn {
		return
	}
	r.cur.Load().sink.Printf(format, args...)
}

// Close closes the log file if it was opened.
func (r *Registry) Close() error {
	s := r.cur.Load()
	if s.file == nil {
		return nil
	}
	f := s.file
	// Swap in a snapshot without the file so later records skip it.
	next := *s
	next.file = nil
	if tee, ok := s.sink.(teeSink); ok {
		next.sink = tee[0]
	}
	if !r.cur.CompareAndSwap(s, &next) {
		return nil
	}
	return f.Close()
}
