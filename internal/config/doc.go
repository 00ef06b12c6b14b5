// Package config provides configuration loading, merging, and validation
// facilities for the salary service.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. The returned configuration
// is constructed once at process start and treated as immutable thereafter;
// components receive the sub-sections they need at construction time instead
// of reading ambient global state.
package config
