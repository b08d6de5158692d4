// Package registry provides the dispatch table that connects externally
// triggered commands to internal module logic.
//
// At boot the application binds a fixed, enumerated set of command names to
// collaborator functions. Triggers that cannot hold a direct reference to a
// module (CLI invocations, scripted events) look handlers up by name at
// dispatch time. Each binding is a 1:1 alias except for a small number of
// named adapters that supply fixed arguments or default behavior.
//
// Binding performs no validation of the collaborators: a command backed by a
// missing module surfaces as a runtime failure at its first invocation, not
// at bind time. Re-running the binding step is safe; the last registration
// for a name wins.
package registry
