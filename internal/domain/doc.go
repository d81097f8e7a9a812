// Package domain contains the core model shared by the puzzle runner.
//
// The domain does not depend on YAML, HTTP or the filesystem, and it knows
// nothing about individual puzzles. Day solvers keep their own types; infra
// adapters map into/from the types here.
package domain
