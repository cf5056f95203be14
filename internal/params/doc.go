// Package params turns the free-form tokens that follow a tool name on the
// command line into the JSON object sent to the tool.
//
// Two token forms are understood:
//
//	--name value     a single parameter; the value's type is inferred
//	--name           a boolean flag set to true
//	--json '{...}'   a JSON object merged into the parameters
//
// Tokens are applied left to right, so later tokens overwrite earlier ones with
// the same key, including keys coming from a --json payload. Tokens that match
// neither form are ignored.
package params
