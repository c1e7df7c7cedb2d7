// Package config holds the process-wide settings of requiremedia: the media
// base URL, the recognized groups, the renderer table entries and the alias
// tables.
//
// A [Config] is built once at startup, with [Default] or [Load], and passed by
// value to the constructors that need it. Nothing reads settings lazily or
// from globals.
//
// [Load] reads an optional TOML or YAML file through viper on top of the
// defaults, then applies REQUIREMEDIA_* environment overrides
// (REQUIREMEDIA_BASE_URL, REQUIREMEDIA_GROUPS, ...):
//
//	base_url = "https://cdn.example.com/static/"
//	groups   = ["css", "js", "js_head"]
//
//	[renderers.js_head]
//	directory         = "js/"
//	external_template = '<script src="%s"></script>'
//	inline_template   = '<script>%s</script>'
//
//	[[requirement_aliases]]
//	from = "jquery.min.js"
//	to   = "jquery.js"
package config
