// Package domain contains the core domain model for aoc.
//
// The domain is persistence-agnostic: it does not depend on YAML parsing,
// cobra, or the filesystem. Infra/adapters map into/from these types.
package domain
