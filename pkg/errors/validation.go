package errors

import (
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// maxNameLength bounds requirement names; long enough for CDN URLs with
// query strings.
const maxNameLength = 2048

// ValidateName validates a requirement name.
//
// Names are either paths relative to the media directory or absolute URLs,
// so the rules are permissive:
//   - No empty names
//   - No control characters or null bytes
//   - Maximum length of 2048 characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "requirement name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "requirement name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "requirement name contains invalid control characters")
		}
	}

	return nil
}

// groupNameRegex matches group identifiers such as "js", "css" or "js_head".
var groupNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateGroup validates a group name. The empty string (untagged) is valid.
func ValidateGroup(group string) error {
	if group == "" {
		return nil
	}
	if !groupNameRegex.MatchString(group) {
		return New(ErrCodeInvalidInput, "invalid group name: %q", group)
	}
	return nil
}

// ValidateTemplate validates a renderer fragment template.
// The template must contain exactly one %s verb and no other verbs.
func ValidateTemplate(tmpl string) error {
	if tmpl == "" {
		return New(ErrCodeInvalidTemplate, "template cannot be empty")
	}

	verbs := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		if i+1 >= len(tmpl) {
			return New(ErrCodeInvalidTemplate, "template ends with a lone %%: %q", tmpl)
		}
		switch tmpl[i+1] {
		case '%':
		case 's':
			verbs++
		default:
			return New(ErrCodeInvalidTemplate, "template may only use %%s: %q", tmpl)
		}
		i++
	}

	if verbs != 1 {
		return New(ErrCodeInvalidTemplate, "template must contain exactly one %%s, found %d: %q", verbs, tmpl)
	}
	return nil
}

// ValidateBaseURL validates the media base URL.
// Relative paths ("/media/") and absolute URLs ("https://cdn.example.com/")
// are both accepted; the value only has to parse.
func ValidateBaseURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "base URL cannot be empty")
	}
	if _, err := url.Parse(rawURL); err != nil {
		return Wrap(ErrCodeInvalidConfig, err, "invalid base URL %q", rawURL)
	}
	return nil
}

// ValidateFormat validates an output format against the supported set.
func ValidateFormat(format string, supported []string) error {
	if !slices.Contains(supported, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (supported: %s)", format, strings.Join(supported, ", "))
	}
	return nil
}

// ValidatePath validates a page path requested from the server.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
