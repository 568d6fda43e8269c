//go:build nolog

package logger

const compiledIn = false
