// Package api exposes the case and identity use cases over HTTP as JSON.
// Handlers decode requests, call the services and map their results to
// status codes; routing lives with the server in cmd/server.
package api
