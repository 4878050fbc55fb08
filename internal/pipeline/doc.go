// Package pipeline implements the catalog cleaning pipeline: load the raw
// table, deduplicate by title, impute missing director/country, parse and
// enforce date_added, derive year/month columns, and persist the cleaned
// table.
//
// Each stage is a pure function over a domain.RecordSet: it returns a new
// set and never mutates its input. The stage order in Run is a contract —
// later stages assume earlier ones completed. Only loading and persisting
// can fail; every per-record anomaly after load is handled by substitution
// or filtering.
package pipeline
