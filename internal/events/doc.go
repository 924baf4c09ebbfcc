// Package events carries domain events from the use cases to whoever wants
// to observe them.
//
// Services emit an Event through an EventEmitter without knowing which
// handlers will process it. The server registers an audit handler that
// writes every event to the structured log.
package events
