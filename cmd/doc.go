// Package cmd provides the command-line interface for new-component.
//
// The CLI has a single command that scaffolds one component per invocation:
//
//	new-component Widget
//	new-component Widget --type class --dir app/components --extension js
//
// # Configuration Integration
//
// Settings are resolved from several sources in order of precedence:
//
//  1. Command-line flags (highest priority)
//  2. Environment variables (NEW_COMPONENT_*)
//  3. Local override file (./.new-component-config.json, or --config)
//  4. Global override file (~/.new-component-config.json)
//  5. Default values (lowest priority)
//
// # Exit Status
//
// The command exits 0 after a successful scaffold and also when it declines
// to scaffold because the name is missing, the parent directory does not
// exist, or the component already exists; in those cases a remediation
// message is printed instead. It exits 1 when the configuration is invalid
// or a filesystem step fails part way through.
package cmd
