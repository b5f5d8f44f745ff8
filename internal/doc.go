// Package internal contains the implementation packages of new-component.
//
// # Package Organization
//
//   - config: configuration resolution from defaults, override files,
//     environment and flags
//   - templates: the bundled component and test templates
//   - format: formatting of generated source
//   - scaffolding: path planning, preflight checks and the write pipeline
//   - report: user-facing progress output
//   - logging: structured diagnostics on stderr
//   - errors: structured scaffold errors
//   - version: build metadata
//   - testutils: filesystem helpers for tests
//
// # Flow
//
// The command resolves a config.Config, derives a scaffolding.Plan from it,
// runs scaffolding.Preflight and, when the plan is ready, hands it to a
// scaffolding.Runner which writes the files in a fixed order and reports
// each finished step.
package internal
