package commandparsing

import (
	"strings"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/command"
)

// splitters is the whole whitespace set; newlines never reach the parser.
const splitters = " \t"

func isSplitter(r rune) bool {
	return strings.ContainsRune(splitters, r)
}

/*
stripModifiers trims the line and removes a trailing '?' or '&', reporting
which one it found. newWord is set when whitespace separates the '?' from the
text before it, so completion starts an empty word instead of extending the
last one.
*/
func stripModifiers(line string) (body string, background, autoComplete, newWord bool) {
	body = strings.Trim(line, splitters)
	if body == "" {
		return body, false, false, false
	}
	switch body[len(body)-1] {
	case '?':
		autoComplete = true
	case '&':
		background = true
	default:
		return body, false, false, false
	}
	rest := body[:len(body)-1]
	body = strings.TrimRight(rest, splitters)
	newWord = autoComplete && body != "" && len(body) < len(rest)
	return body, background, autoComplete, newWord
}

func tokenize(body string) []string {
	return strings.FieldsFunc(body, isSplitter)
}

/*
redirectTarget picks the path for a redirect operator. The path normally
follows the operator inside the same token ("<in.txt"); when the token is
the bare operator the next token is used instead, unless it is a pipe. It
returns how many extra tokens were consumed.
*/
func redirectTarget(inline string, rest []string) (string, int) {
	if inline != "" {
		return inline, 0
	}
	if len(rest) == 0 || rest[0] == "|" {
		return "", 0
	}
	return rest[0], 1
}

// setRedirect binds path to slot. A missing path is tolerated and ignored.
// Stdout and Append are exclusive; the later one wins.
func setRedirect(cmd *command.Command, slot command.RedirectSlot, path string) {
	if path == "" {
		return
	}
	cmd.Redirects[slot] = path
	switch slot {
	case command.Stdout:
		cmd.Redirects[command.Append] = ""
	case command.Append:
		cmd.Redirects[command.Stdout] = ""
	}
}

// unquote strips one pair of matching outer quotes from a token longer than two characters.
func unquote(tok string) string {
	n := len(tok)
	if n > 2 && tok[0] == tok[n-1] && (tok[0] == '"' || tok[0] == '\'') {
		return tok[1 : n-1]
	}
	return tok
}
