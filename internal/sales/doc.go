// Package sales computes the dashboard reports over a fetched order and user
// snapshot. Every function is pure: callers pass the snapshot, the store
// location for calendar math and, where a window is relative, the current time.
package sales
