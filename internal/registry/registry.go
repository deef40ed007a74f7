package registry

import (
	"github.com/alexisbeaulieu97/buildwire/internal/host"
)

// Action is a unit of deferred plugin configuration: when the capability it
// names becomes present on a project, its effect runs against that project,
// at most once per (project, capability) pair.
type Action interface {
	// Capability returns the capability that gates execution.
	Capability() host.Capability

	// Execute applies the action's side effects to the project.
	Execute(p *host.Project) error
}

// NewAction builds an Action from a capability and an effect function.
func NewAction(c host.Capability, effect func(p *host.Project) error) Action {
	return &funcAction{capability: c, effect: effect}
}

type funcAction struct {
	capability host.Capability
	effect     func(p *host.Project) error
}

func (a *funcAction) Capability() host.Capability {
	return a.capability
}

func (a *funcAction) Execute(p *host.Project) error {
	return a.effect(p)
}

// ActionRegistry holds an ordered sequence of actions and wires each of them
// to the host's capability-presence notifications. Registration order decides
// nothing about execution order; actions fire in the order the host applies
// the plugins they watch for.
type ActionRegistry struct {
	actions []Action
}

// New returns an empty registry.
func New() *ActionRegistry {
	return &ActionRegistry{}
}

// Register appends an action to the registry.
func (r *ActionRegistry) Register(a Action) {
	r.actions = append(r.actions, a)
}

// Len returns the number of registered actions.
func (r *ActionRegistry) Len() int {
	return len(r.actions)
}

// Wire subscribes every registered action to the project's capability
// notifications. A capability that never appears simply leaves its action
// dormant. The host may report a capability present multiple times; each
// action still executes at most once per project. An effect error is
// propagated unmodified: immediately if the capability is already present,
// otherwise through the host's AddCapability call, and wiring of the
// remaining actions is abandoned.
func (r *ActionRegistry) Wire(p *host.Project) error {
	for _, action := range r.actions {
		action := action
		executed := false
		err := p.OnCapabilityPresent(action.Capability(), func(proj *host.Project) error {
			if executed {
				return nil
			}
			executed = true
			return action.Execute(proj)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
