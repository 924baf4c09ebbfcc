// Package domain contains the core business entities of the application:
// mystery cases, the evidence attached to them, and the self-declared users
// who author and solve them. It is independent of any storage technology or
// delivery mechanism.
package domain
