// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (optionally seeded from a .env file)
//  3. Command-line flags
//  4. JSON config file
//
// The main entry point is [GetStructuredConfig]. The resulting
// [StructuredConfig] is built once at startup and passed explicitly into
// every constructor; there is no package-level accessor.
package config
