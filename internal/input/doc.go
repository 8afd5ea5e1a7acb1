// Package input turns raw device events into engine events and routes
// them through the frame's consumer chain.
//
// The Dispatcher drains an EventSource once per frame, normalizes what
// it finds into Event values, re-emits Pressed events for every held
// key, and hands the ordered batch to the consumer chain. Consumers
// have first claim: an event removed by an earlier consumer is never
// seen by a later one. Whatever survives the chain is matched against
// the Bindings registry and the bound command strings are submitted to
// the script runner.
package input
