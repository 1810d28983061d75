package shell

import (
	"fmt"
	"io"
	"strings"
)

// DebugPrint writes an indented dump of the command tree to w.
func DebugPrint(w io.Writer, cmd Command) error {
	var b strings.Builder
	debugPrint(&b, cmd, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func debugPrint(b *strings.Builder, cmd Command, depth int) {
	indent := strings.Repeat("  ", depth)

	switch node := cmd.(type) {
	case *Empty:
		fmt.Fprintf(b, "%sEmpty\n", indent)

	case *Simple:
		fmt.Fprintf(b, "%sSimple %q\n", indent, node.Name)
		for _, arg := range node.Args {
			fmt.Fprintf(b, "%s  arg %q\n", indent, arg)
		}
		for _, r := range node.Redirects {
			fmt.Fprintf(b, "%s  redirect %s %q\n", indent, r.Kind, r.Target)
		}

	case *Pipeline:
		fmt.Fprintf(b, "%sPipeline\n", indent)
		for _, child := range node.Commands {
			debugPrint(b, child, depth+1)
		}

	case *Sequence:
		fmt.Fprintf(b, "%sSequence\n", indent)
		for _, child := range node.Commands {
			debugPrint(b, child, depth+1)
		}

	case *And:
		fmt.Fprintf(b, "%sAnd\n", indent)
		debugPrint(b, node.Left, depth+1)
		debugPrint(b, node.Right, depth+1)

	case *Or:
		fmt.Fprintf(b, "%sOr\n", indent)
		debugPrint(b, node.Left, depth+1)
		debugPrint(b, node.Right, depth+1)

	case *Background:
		fmt.Fprintf(b, "%sBackground\n", indent)
		debugPrint(b, node.Inner, depth+1)

	default:
		fmt.Fprintf(b, "%s%T\n", indent, cmd)
	}
}
