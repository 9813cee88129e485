package command

import (
	"fmt"
	"io"
	"strings"
)

// usageColumn is the column the help text is aligned to.
const usageColumn = 40

// usageMinGap is the minimum dot fill between a command and its help, so
// deeply nested names still get a visible separator.
const usageMinGap = 4

// Usage prints the full command-tree usage for the tree rooted at root.
func Usage(w io.Writer, root *Command, prog string) {
	fmt.Fprintf(w, "Usage: %s [options] [command] /sys/class/input/eventX\n", prog)
	fmt.Fprintf(w, "/path/to/device ..... Open the given device only\n")
	fmt.Fprintf(w, "\nCommands:\n")

	renderSubcommands(w, root, "")

	fmt.Fprintf(w, "\nOptions:\n")
	fmt.Fprintf(w, "    --verbose[=raw] ....... Print debugging output, with protocol output if requested.\n")
	fmt.Fprintf(w, "    --help .......... Print this help.\n")
}

// renderSubcommands renders each of cmd's subcommands with the accumulated
// prefix, then recurses so grandchildren appear under their full path.
func renderSubcommands(w io.Writer, cmd *Command, prefix string) {
	for _, sub := range cmd.Subcommands {
		gap := usageColumn - len(sub.Name) - len(prefix)
		if sub.Args != "" {
			gap -= 1 + len(sub.Args)
		}
		if gap < usageMinGap {
			gap = usageMinGap
		}

		if sub.Help != "" {
			name := sub.Name
			if sub.Args != "" {
				name += " " + sub.Args
			}
			fmt.Fprintf(w, "    %s%s %s %s\n", prefix, name, strings.Repeat(".", gap), sub.Help)
		}

		childPrefix := prefix + sub.Name
		if sub.Args != "" {
			childPrefix += " " + sub.Args
		}
		renderSubcommands(w, sub, childPrefix+" ")
	}
}
