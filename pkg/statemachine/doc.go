// Package statemachine implements a small generic finite state machine.
//
// States and events are any comparable types, usually string enums:
//
//	type Phase string
//	type Trigger string
//
//	m := statemachine.MustNew[Phase, Trigger]("idle",
//	    statemachine.WithTransition[Phase, Trigger]("idle", "busy", "start"),
//	    statemachine.WithTransitionFrom[Phase, Trigger]([]Phase{"busy"}, "idle", "stop"),
//	)
//	if err := m.Fire(ctx, "start", nil); err != nil {
//	    // statemachine.IsNoTransitionAvailableError(err) when "start" is not valid here
//	}
//
// Guards veto transitions; actions run before the state changes and abort it
// on error. All methods are safe for concurrent use.
package statemachine
