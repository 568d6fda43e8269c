package logger

// Module is the per-package logging handle. Keep one in a package-level
// variable and log through it; the name and declared level travel with it.
type Module struct {
	name    string
	tag     string // name with '%' escaped for use inside a format string
	level   Level
	inherit bool
	reg     *Registry
}

// Name returns the module name used in the record tag.
func (m *Module) Name() string {
	return m.name
}

// Level returns the declared level, or the registry default for modules
// created with DeclareDefault.
func (m *Module) Level() Level {
	return m.declared(m.reg.cur.Load())
}

func (m *Module) declared(s *settings) Level {
	if m.inherit {
		return s.defaultLevel
	}
	return m.level
}

// Effective returns the declared level clamped to the registry thresholds.
func (m *Module) Effective() Level {
	s := m.reg.cur.Load()
	return Effective(m.declared(s), s.thresholds)
}

// Enabled reports whether a record at l would be written. Use it to skip
// computing expensive arguments.
func (m *Module) Enabled(l Level) bool {
	return compiledIn && allows(m.Effective(), l)
}
