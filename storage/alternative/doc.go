// Package alternative composes two storage backends of which at most one
// accepts new allocations at a time. The composite starts allocating from
// the First backend and switches to the Second, permanently, the first time
// First refuses an allocation. The Second backend is built lazily at the
// moment of the switch, so its resources are never committed while First
// still serves.
//
// Handles remain tagged with the backend that produced them, and slots
// allocated from First stay valid after the switch; only new allocations
// move to Second. The switch itself is the one hazardous moment: if
// building the Second backend panics, the composite is left poisoned and
// every later operation panics. A poisoned composite cannot be recovered.
package alternative
