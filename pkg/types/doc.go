// Package types defines the core types and interfaces used throughout dotdash.
// This includes the FS filesystem interface and the Profile data structure.
package types
