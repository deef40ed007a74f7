package analyzer

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/buildwire/internal/host"
	"github.com/alexisbeaulieu97/buildwire/internal/logger"
)

// UnresolvedDependencies accumulates unresolved-module reports across a
// project's configuration-resolution passes and emits one consolidated
// warning when the build finishes. It never fails the build; unresolved
// dependencies are diagnostic only.
type UnresolvedDependencies struct {
	log     *logger.Logger
	order   []string
	entries map[string][]host.ModuleID
	flushed bool
}

// New creates an analyzer that reports through log.
func New(log *logger.Logger) *UnresolvedDependencies {
	return &UnresolvedDependencies{
		log:     log,
		entries: make(map[string][]host.ModuleID),
	}
}

// Analyze records the outcome of one resolution pass for the named
// configuration. A non-empty unresolved set replaces any earlier entry for
// the configuration; an empty set clears it, so a later successful
// re-resolve retires a stale diagnostic.
func (a *UnresolvedDependencies) Analyze(configuration string, unresolved []host.ModuleID) {
	if a.flushed {
		return
	}

	if len(unresolved) == 0 {
		if _, seen := a.entries[configuration]; seen {
			delete(a.entries, configuration)
			for i, name := range a.order {
				if name == configuration {
					a.order = append(a.order[:i], a.order[i+1:]...)
					break
				}
			}
		}
		return
	}

	if _, seen := a.entries[configuration]; !seen {
		a.order = append(a.order, configuration)
	}
	a.entries[configuration] = append([]host.ModuleID(nil), unresolved...)
}

// BuildFinished flushes the accumulated entries as a single warning. The
// flushed state is terminal: a second call is a no-op, and an analyzer with
// no entries emits nothing.
func (a *UnresolvedDependencies) BuildFinished(p *host.Project) {
	if a.flushed {
		return
	}
	a.flushed = true

	if len(a.entries) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString("unresolved dependencies detected:")
	for _, name := range a.order {
		modules := make([]string, 0, len(a.entries[name]))
		for _, m := range a.entries[name] {
			modules = append(modules, string(m))
		}
		fmt.Fprintf(&b, " [%s: %s]", name, strings.Join(modules, ", "))
	}

	a.log.WithFields(map[string]any{
		"project":        p.Name(),
		"configurations": len(a.entries),
	}).Warn(b.String())
}
