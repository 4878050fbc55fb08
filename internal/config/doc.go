// Package config centralizes configuration loading and path resolution.
//
// Configuration is assembled from three layers: struct-tag defaults,
// CATALOG_* environment variables, and an optional YAML file. The merged
// result is validated before use so every consumer can trust it.
package config
