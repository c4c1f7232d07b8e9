// Package infra contains technical adapters such as metrics exporters,
// structured loggers and reference-data lookups. These packages should
// depend only on the interfaces defined in the core packages.
package infra
