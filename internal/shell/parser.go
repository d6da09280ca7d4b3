// Package shell implements the line-oriented command interface of the
// simulator: tokenizing user input, dispatching to the vfs operations, and
// formatting their results.
package shell

import "strings"

// Request is one parsed input line. Name is the lowercased command word,
// Args the whitespace-split arguments after it, and Rest the raw tail of
// the line for commands that re-parse quoted content themselves.
type Request struct {
	Name string
	Args []string
	Rest string
}

// Parse splits an input line into a Request. Returns false for blank lines.
func Parse(line string) (Request, bool) {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return Request{}, false
	}

	fields := strings.Fields(raw)
	return Request{
		Name: strings.ToLower(fields[0]),
		Args: fields[1:],
		Rest: strings.TrimSpace(raw[len(fields[0]):]),
	}, true
}

// extractQuoted returns the content of the first double-quoted span in s
// and the trimmed remainder after the closing quote.
func extractQuoted(s string) (quoted, rest string, ok bool) {
	start := strings.Index(s, `"`)
	if start == -1 {
		return "", "", false
	}
	end := strings.Index(s[start+1:], `"`)
	if end == -1 {
		return "", "", false
	}

	quoted = s[start+1 : start+1+end]
	rest = strings.TrimSpace(s[start+2+end:])
	return quoted, rest, true
}

// ParseRedirect parses the tail of an echo command:
//
//	"content" > path
//
// Returns false when the quotes, the redirect marker, or the path are
// missing; malformed echo lines are ignored rather than reported.
func ParseRedirect(rest string) (content, path string, ok bool) {
	content, after, ok := extractQuoted(rest)
	if !ok {
		return "", "", false
	}
	if !strings.HasPrefix(after, ">") {
		return "", "", false
	}

	path = strings.TrimSpace(after[1:])
	if path == "" {
		return "", "", false
	}
	return content, path, true
}

// ParseQuotedArg parses the tail of a grep command:
//
//	"pattern" path
//
// Returns false when the quotes or the trailing path are missing.
func ParseQuotedArg(rest string) (quoted, arg string, ok bool) {
	quoted, after, ok := extractQuoted(rest)
	if !ok {
		return "", "", false
	}
	if after == "" {
		return "", "", false
	}
	return quoted, after, true
}
