package logger

// Effective returns the level a module declared at declared actually logs at:
// min(ceiling, max(declared, floor)). An inverted window is normalized first,
// so the result always lies in [Floor, Ceiling] and equals Ceiling when
// Floor > Ceiling.
func Effective(declared Level, t Thresholds) Level {
	t, _ = t.Normalize()
	if declared < t.Floor {
		declared = t.Floor
	}
	if declared > t.Ceiling {
		declared = t.Ceiling
	}
	return declared
}

// allows reports whether a record at l passes an effective threshold.
// OffLevel records never pass.
func allows(effective, l Level) bool {
	return l != OffLevel && l <= effective
}
