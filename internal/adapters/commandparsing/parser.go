package commandparsing

import (
	"github.com/AntonioJCosta/shellfyre/internal/core/domain/command"
	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// WhitespaceParser splits input on spaces and tabs only. Quotes are stripped
// from a token that is wholly wrapped in them, but they never join tokens.
type WhitespaceParser struct{}

// NewWhitespaceParser creates a new WhitespaceParser.
func NewWhitespaceParser() ports.CommandParser {
	return &WhitespaceParser{}
}

/*
Parse turns a raw line into a command chain.

The line-level modifiers are checked once, on the trimmed line, before any
tokenizing: a final '?' requests auto-complete and a final '&' requests a
background run. The marker is removed and the flag is copied onto every
stage of the resulting chain. When whitespace precedes the '?', the word
being completed is empty: the last stage gets an empty final argument, or an
empty stage is appended after a trailing "|".

An empty or all-whitespace line yields a single stage with an empty name.
*/
func (p *WhitespaceParser) Parse(line string) *command.Command {
	body, background, autoComplete, newWord := stripModifiers(line)

	tokens := tokenize(body)
	head := p.parseStage(tokens)
	if newWord {
		tail := head
		for tail.Next != nil {
			tail = tail.Next
		}
		if tokens[len(tokens)-1] == "|" {
			tail.Next = &command.Command{}
		} else {
			tail.Args = append(tail.Args, "")
		}
	}
	for s := head; s != nil; s = s.Next {
		s.Background = background
		s.AutoComplete = autoComplete
	}
	return head
}

// parseStage consumes tokens for one stage. On a "|" token the rest of the
// tokens are parsed recursively and attached as the next stage.
func (p *WhitespaceParser) parseStage(tokens []string) *command.Command {
	cmd := &command.Command{}
	if len(tokens) == 0 {
		return cmd
	}
	cmd.Name = tokens[0]

	for i := 1; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case tok == "|":
			if rest := tokens[i+1:]; len(rest) > 0 {
				cmd.Next = p.parseStage(rest)
			}
			return cmd
		case tok == "&":
			// Only a trailing '&' means anything, and it was handled on the whole line.
			continue
		case tok[0] == '<':
			path, used := redirectTarget(tok[1:], tokens[i+1:])
			i += used
			setRedirect(cmd, command.Stdin, path)
		case tok[0] == '>':
			slot, target := command.Stdout, tok[1:]
			if len(target) > 0 && target[0] == '>' {
				slot, target = command.Append, target[1:]
			}
			path, used := redirectTarget(target, tokens[i+1:])
			i += used
			setRedirect(cmd, slot, path)
		default:
			cmd.Args = append(cmd.Args, unquote(tok))
		}
	}
	return cmd
}
