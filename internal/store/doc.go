// Package store defines the persistence ports of the application.
// The interfaces here keep the use cases independent of the backend that
// holds cases and sessions; adapters live under internal/platform.
package store
