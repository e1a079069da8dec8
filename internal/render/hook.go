package render

import "github.com/faizmokh/orgstamp/internal/timestamp"

// Hook rewrites the inner markup of one rendered block. The bool reports
// whether the fragment changed; hosts commit only changed fragments.
type Hook interface {
	Rewrite(fragment string) (string, bool)
}

// HookFunc adapts a plain string rewrite to Hook.
type HookFunc func(fragment string) string

// Rewrite implements Hook.
func (f HookFunc) Rewrite(fragment string) (string, bool) {
	out := f(fragment)
	return out, out != fragment
}

// TimestampHook wraps recognised timestamps in styled spans.
var TimestampHook Hook = HookFunc(timestamp.Rewrite)
