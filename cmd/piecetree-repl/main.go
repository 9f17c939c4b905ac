// Command piecetree-repl is an interactive demo of the piecetree library: a
// small command loop that drives a single Tree so its behavior can be
// poked at by hand.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nrakin/piecetree"
)

// REPL holds the state of the interactive session.
type REPL struct {
	tree   *piecetree.Tree
	owning *piecetree.OwningSnap
	ref    *piecetree.ReferenceSnapshot
	reader *bufio.Reader
}

func main() {
	fmt.Println("piecetree REPL - persistent piece-table demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{
		tree:   piecetree.New(),
		reader: bufio.NewReader(os.Stdin),
	}

	for {
		fmt.Print("piecetree> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !repl.handleCommand(input) {
			break
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()
	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false
	case "new":
		r.cmdNew(args)
	case "insert":
		r.cmdInsert(args)
	case "remove":
		r.cmdRemove(args)
	case "at":
		r.cmdAt(args)
	case "line":
		r.cmdLine(args)
	case "status":
		r.cmdStatus()
	case "dump":
		r.cmdDump()
	case "undo":
		r.cmdUndo(args)
	case "redo":
		r.cmdRedo(args)
	case "commit":
		r.cmdCommit(args)
	case "snap":
		r.cmdSnap(args)
	case "snapdump":
		r.cmdSnapDump(args)
	case "read":
		r.cmdRead(args)
	default:
		fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}
	return true
}

func (r *REPL) printHelp() {
	fmt.Print(`
Available commands:

  new <text>                 Start over with a fresh Tree seeded with text
  insert <offset> <text>     Insert text at offset
  remove <offset> <length>   Remove length characters starting at offset
  at <offset>                Show the byte at offset
  line <n>                   Show the content of line n
  status                     Show length/line-count/line-feed-count
  dump                       Print the whole document
  undo [op_offset]           Try to undo the last edit
  redo [op_offset]           Try to redo the last undone edit
  commit [op_offset]         Record the current state as an undo point
  snap owning|ref            Capture a snapshot of the current state
  snapdump owning|ref        Print the content captured by a snapshot
  read forward|reverse <offset> <n>
                              Stream n bytes starting at offset
  help                        Show this help message
  quit, exit                  Exit the REPL
`)
}

func (r *REPL) cmdNew(args []string) {
	text := strings.Join(args, " ")
	text = strings.ReplaceAll(text, "\\n", "\n")
	if text == "" {
		r.tree = piecetree.New()
	} else {
		r.tree = piecetree.NewFromBlobs([]byte(text))
	}
	r.owning = nil
	r.ref = nil
	fmt.Printf("Created a new tree with %d characters\n", r.tree.Len())
}

func (r *REPL) cmdInsert(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: insert <offset> <text>")
		return
	}
	offset, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("Invalid offset: %v\n", err)
		return
	}
	text := strings.ReplaceAll(strings.Join(args[1:], " "), "\\n", "\n")
	r.tree.Insert(offset, []byte(text))
	fmt.Printf("Inserted %d characters at offset %d\n", len(text), offset)
}

func (r *REPL) cmdRemove(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: remove <offset> <length>")
		return
	}
	offset, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("Invalid offset: %v\n", err)
		return
	}
	length, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fmt.Printf("Invalid length: %v\n", err)
		return
	}
	r.tree.Remove(offset, length)
	fmt.Printf("Removed %d characters starting at offset %d\n", length, offset)
}

func (r *REPL) cmdAt(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: at <offset>")
		return
	}
	offset, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("Invalid offset: %v\n", err)
		return
	}
	b := r.tree.At(offset)
	fmt.Printf("At offset %d: %q (0x%02x)\n", offset, b, b)
}

func (r *REPL) cmdLine(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: line <n>")
		return
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("Invalid line number: %v\n", err)
		return
	}
	fmt.Printf("Line %d: %q\n", n, r.tree.LineContent(n))
}

func (r *REPL) cmdStatus() {
	fmt.Printf("Length: %d\n", r.tree.Len())
	fmt.Printf("Line count: %d\n", r.tree.LineCount())
	fmt.Printf("Line feed count: %d\n", r.tree.LineFeedCount())
}

func (r *REPL) cmdDump() {
	fmt.Println(streamAll(r.tree))
}

func (r *REPL) cmdUndo(args []string) {
	res := r.tree.TryUndo(opOffsetArg(args))
	if !res.Success {
		fmt.Println("Nothing to undo")
		return
	}
	fmt.Printf("Undid to op_offset=%d\n", res.OpOffset)
}

func (r *REPL) cmdRedo(args []string) {
	res := r.tree.TryRedo(opOffsetArg(args))
	if !res.Success {
		fmt.Println("Nothing to redo")
		return
	}
	fmt.Printf("Redid to op_offset=%d\n", res.OpOffset)
}

func (r *REPL) cmdCommit(args []string) {
	r.tree.CommitHead(opOffsetArg(args))
	fmt.Println("Recorded the current state as an undo point")
}

func (r *REPL) cmdSnap(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: snap owning|ref")
		return
	}
	switch args[0] {
	case "owning":
		r.owning = r.tree.OwningSnap()
		fmt.Println("Captured an owning snapshot")
	case "ref":
		r.ref = r.tree.RefSnap()
		fmt.Println("Captured a referencing snapshot")
	default:
		fmt.Println("Usage: snap owning|ref")
	}
}

func (r *REPL) cmdSnapDump(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: snapdump owning|ref")
		return
	}
	switch args[0] {
	case "owning":
		if r.owning == nil {
			fmt.Println("No owning snapshot captured yet")
			return
		}
		fmt.Println(streamAll(r.owning))
	case "ref":
		if r.ref == nil {
			fmt.Println("No referencing snapshot captured yet")
			return
		}
		fmt.Println(streamAll(r.ref))
	default:
		fmt.Println("Usage: snapdump owning|ref")
	}
}

func (r *REPL) cmdRead(args []string) {
	if len(args) < 3 {
		fmt.Println("Usage: read forward|reverse <offset> <n>")
		return
	}
	offset, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fmt.Printf("Invalid offset: %v\n", err)
		return
	}
	n, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		fmt.Printf("Invalid count: %v\n", err)
		return
	}

	var out []byte
	switch args[0] {
	case "forward":
		w := r.tree.Forward(offset)
		for i := int64(0); i < n && !w.Exhausted(); i++ {
			out = append(out, w.Next())
		}
	case "reverse":
		w := r.tree.Reverse(offset)
		for i := int64(0); i < n && !w.Exhausted(); i++ {
			out = append(out, w.Next())
		}
	default:
		fmt.Println("Usage: read forward|reverse <offset> <n>")
		return
	}
	fmt.Printf("%q\n", out)
}

func opOffsetArg(args []string) int64 {
	if len(args) == 0 {
		return 0
	}
	v, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// reader is the common surface between Tree and its snapshots that
// streamAll needs: just enough to drain a forward walk of everything.
type reader interface {
	Forward(offset int64) *piecetree.ForwardWalker
}

func streamAll(r reader) string {
	w := r.Forward(0)
	var out []byte
	for !w.Exhausted() {
		out = append(out, w.Next())
	}
	return string(out)
}
