// Package store persists the event list as a flat file in the user's home
// directory (or at an explicitly injected path).
//
// The on-disk document is the stored events as a sequence under a single
// "events" key. The codec follows the file extension: TOML by default,
// YAML for .yaml/.yml paths. Saves go through a temp file and rename so a
// crash never leaves a half-written event file behind.
package store
