// Package config implements a library for reading, manipulating, and
// writing structured configuration documents in a libconfig-style textual
// format.
//
// # Overview
//
// A Document owns a tree of Settings rooted at an unnamed GROUP. Settings
// are typed scalars (INT, INT64, FLOAT, BOOL, STRING) or containers (ARRAY,
// LIST, GROUP). The tree is built either by parsing source text (see
// package config/parser) or programmatically via the Add/Set family of
// methods on Setting.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│  Source text│────▶│   parser    │────▶│    tree     │
//	│   (bytes)   │     │ (+ scanner, │     │ (*Setting,  │
//	│             │     │  includes)  │     │  *Document) │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                                               ▼
//	                                        ┌─────────────┐
//	                                        │   format    │
//	                                        │ (serializer)│
//	                                        └─────────────┘
//
// # Concurrency
//
// A Document and its tree are not internally synchronized. Concurrent
// mutation of the same Document from multiple goroutines is undefined;
// distinct Documents are independent and safe to use concurrently.
package config
