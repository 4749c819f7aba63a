// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against an embedded schema.
//
// Parsing follows three steps: compile the schema, compile the user data and
// unify it with a schema definition, then validate and decode. Errors carry the
// file name and the JSON-style path of the offending field.
package cueutil
