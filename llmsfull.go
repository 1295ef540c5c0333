// Package llmsfull builds a single flat text corpus from a documentation
// website for LLM ingestion. It discovers documentation links from a hub
// page, extracts the main content of each page with a selector-fallback
// heuristic, optionally rewrites the text with a language model, and
// concatenates the results into one output file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, fs/, gemini/).
package llmsfull
