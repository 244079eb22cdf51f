package ports

import "github.com/AntonioJCosta/shellfyre/internal/core/domain/command"

/*
CommandParser defines the contract for turning one raw input line into a
command chain. This is a driven port, representing a domain capability.
Parsing never fails: malformed input degrades to a best-effort chain.
*/
type CommandParser interface {
	Parse(line string) *command.Command
}
