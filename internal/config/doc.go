// SPDX-License-Identifier: MPL-2.0

// Package config handles glbench configuration using Viper with CUE as the file format.
//
// Configuration is loaded from config.cue in the glbench configuration directory
// ($XDG_CONFIG_HOME/glbench on Linux, ~/Library/Application Support/glbench on macOS,
// %APPDATA%\glbench on Windows), falling back to ./config.cue. Files are validated
// against the embedded #Config schema (config_schema.cue) before being merged over
// the defaults; GLBENCH_* environment variables override both.
package config
