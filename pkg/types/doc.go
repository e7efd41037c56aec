// Package types defines the core types and interfaces shared across brewbump.
// This includes the FS interface used for all file access and the result
// structures produced by commands and consumed by the renderers.
package types
