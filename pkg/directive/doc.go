// Package directive parses the three template directives that feed a
// registry.
//
//	require [group] name [deps...]
//	require_inline name group [deps...]
//	render_requirements [groups...]
//
// For require, the first argument is taken as a group when, after group
// aliasing, it is a recognized group; otherwise the group is inferred from
// the requirement name's extension. A recognized group on its own is an
// error. require_inline always takes the name first and the group second,
// and does not check the group against the recognized ones.
// render_requirements with no arguments renders every recognized group.
//
// Requirement names and dependency names pass through the requirement
// aliases. Malformed directives fail with an INVALID_DIRECTIVE error.
package directive
