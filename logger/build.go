//go:build !nolog

package logger

// compiledIn is false when building with -tags nolog, which turns every
// logging call into a no-op the compiler can remove.
const compiledIn = true
