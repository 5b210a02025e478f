// Package domain defines the core business entities for the helper.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Topic: A static knowledge-base record for one student-facing subject
//   - Registry: The ordered, read-only collection of topics
//   - AskResult: The outcome of answering one question
//   - GeneratorSettings: Deployment-time answer-provider configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
