// Package service contains the application's use cases.
//
// CaseService creates, lists, fetches and solves mystery cases on top of a
// store.CaseStore. IdentityService manages self-declared public-key
// identities on top of a store.SessionStore. Both receive their
// dependencies through constructor injection and never depend on a concrete
// storage backend.
//
// Case use cases do not return errors. Each returns a result value carrying
// a success flag, a human-readable message, field-level validation errors and
// a Reason the delivery layer maps to its own status codes. Backend failures
// are logged and replaced with a generic message.
package service
