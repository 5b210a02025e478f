// Package services implements the core question-answering pipeline:
// tokenisation, topic scoring, retrieval, context building, and the
// orchestrator that composes retrieval with answer generation.
//
// Services depend only on domain types and ports, never on concrete
// adapters.
package services
