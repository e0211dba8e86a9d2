// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - the screen stack and the chrome around it (header, status, key help)
//
// Not allowed here:
// - concrete screen rendering implementations
// - low-level widget rendering primitives
package core
