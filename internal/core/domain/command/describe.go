package command

import (
	"fmt"
	"io"
)

// Describe writes a structural dump of the chain, one indented block per stage.
func (c *Command) Describe(w io.Writer) {
	c.describe(w, "")
}

func (c *Command) describe(w io.Writer, indent string) {
	if c == nil {
		return
	}
	fmt.Fprintf(w, "%sCommand: <%s>\n", indent, c.Name)
	fmt.Fprintf(w, "%s\tIs Background: %s\n", indent, yesNo(c.Background))
	fmt.Fprintf(w, "%s\tNeeds Auto-complete: %s\n", indent, yesNo(c.AutoComplete))
	fmt.Fprintf(w, "%s\tRedirects:\n", indent)
	for slot := Stdin; slot <= Append; slot++ {
		p, ok := c.Redirect(slot)
		if !ok {
			p = "N/A"
		}
		fmt.Fprintf(w, "%s\t\t%d: %s\n", indent, slot, p)
	}
	fmt.Fprintf(w, "%s\tArguments (%d):\n", indent, len(c.Args))
	for i, arg := range c.Args {
		fmt.Fprintf(w, "%s\t\tArg %d: %s\n", indent, i, arg)
	}
	if c.Next != nil {
		fmt.Fprintf(w, "%s\tPiped to:\n", indent)
		c.Next.describe(w, indent+"\t")
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
