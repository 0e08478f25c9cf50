package main

import (
	"fmt"
	"os"

	"github.com/erraggy/namekit"
	"github.com/erraggy/namekit/cmd/namekit/commands"
)

// commandNames lists every command for "did you mean" suggestions.
var commandNames = []string{"convert", "replace", "match", "preview", "apply", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("namekit %s\n", namekit.Version())
		fmt.Printf("commit: %s\n", namekit.Commit())
		fmt.Printf("built: %s\n", namekit.BuildTime())
		fmt.Printf("go: %s\n", namekit.GoVersion())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		run(commands.HandleConvert)
	case "replace":
		run(commands.HandleReplace)
	case "match":
		run(commands.HandleMatch)
	case "preview":
		run(commands.HandlePreview)
	case "apply":
		run(commands.HandleApply)
	case "mcp":
		run(commands.HandleMCP)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

func run(handler func([]string) error) {
	if err := handler(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	usage := `namekit - Batch Rename Design Elements

Usage:
  namekit <command> [options]

Commands:
  convert     Convert names between case conventions
  replace     Find and replace text in names
  match       Filter names by a plain or regular expression query
  preview     Show how the elements of a design document would be renamed
  apply       Rename the elements of a design document
  mcp         Serve the namekit tools over the Model Context Protocol
  version     Show version information
  help        Show this help message

Examples:
  namekit convert -t snake "Icon Button"
  namekit preview -c COMPONENT -f nodeName=pascal design.yaml
  namekit apply -c STYLE -m replace --find primary --replace brand -i design.yaml
  namekit mcp

Run 'namekit <command> --help' for more information on a command.`

	fmt.Println(usage)
}
