package ordering

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Ring2Dot outputs the internal structure of an Ordering in Graphviz DOT
// format (for debugging purposes).
//
// Every member becomes a node labeled with its value and tag; solid edges
// follow next links, dashed edges follow prev links. The front anchor is
// drawn as a doubly-outlined box.
func Ring2Dot[T comparable](o *Ordering[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := make(map[T]int)
	id := 1
	for value := range o.Range() {
		ids[value] = id
		id++
	}
	nodelist, edgelist := "", ""
	for value, tag := range o.RangeWithTags() {
		styles := "style=filled,shape=box,fillcolor=\"#a3d7e4\""
		if value == o.front {
			styles = "style=filled,shape=box,peripheries=2,fillcolor=\"#ffcc88\""
		}
		label := fmt.Sprintf("“%v”\\n#%d", value, tag)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ids[value], label, styles)
		pos := o.positions[value]
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ids[value], ids[pos.next])
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [style=dashed,constraint=false];\n", ids[value], ids[pos.prev])
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

var (
	frontColor = color.New(color.FgRed, color.Bold)
	itemColor  = color.New(color.FgBlue)
	tagColor   = color.New(color.FgHiBlack)
)

// Dump writes a one-line rendering of the ring to w, front to back, each
// member with its tag (for debugging purposes).
func Dump[T comparable](o *Ordering[T], w io.Writer) {
	fdump(o, w, 0)
}

// DumpToConsole prints the ring to stdout. If stdout is an interactive
// terminal, long rings are elided in the middle to fit the terminal width.
func DumpToConsole[T comparable](o *Ordering[T]) {
	width := 0
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	fdump(o, os.Stdout, width)
}

func fdump[T comparable](o *Ordering[T], w io.Writer, width int) {
	if o.Len() == 0 {
		fmt.Fprintln(w, "ring ⟨empty⟩")
		return
	}
	entries := make([]string, 0, o.Len())
	for value, tag := range o.RangeWithTags() {
		c := itemColor
		if value == o.front {
			c = frontColor
		}
		entry := c.Sprintf("%v", value) + tagColor.Sprintf("#%d", tag)
		entries = append(entries, entry)
	}
	line := fmt.Sprintf("ring %s ⟲", strings.Join(entries, " → "))
	if width > 0 && runeLen(line) > width {
		line = elide(entries, width)
	}
	fmt.Fprintln(w, line)
}

// elide keeps a prefix and a suffix of the entries, joined by an ellipsis,
// aiming for the given budget of character positions. Color escape sequences
// are not counted against the budget, and the glyphs are multi-byte, so the
// accounting counts runes, not bytes.
func elide(entries []string, width int) string {
	const sepLen = 3 // " → "
	head, tail := []string{}, []string{}
	budget := width - runeLen("ring  … ⟲")
	for i, j := 0, len(entries)-1; i <= j; i, j = i+1, j-1 {
		headLen := runeLen(entries[i])
		if budget-headLen < 0 {
			break
		}
		budget -= headLen + sepLen
		head = append(head, entries[i])
		if i == j {
			break
		}
		tailLen := runeLen(entries[j])
		if budget-tailLen < 0 {
			break
		}
		budget -= tailLen + sepLen
		tail = append([]string{entries[j]}, tail...)
	}
	if len(head)+len(tail) >= len(entries) {
		return fmt.Sprintf("ring %s ⟲", strings.Join(entries, " → "))
	}
	return fmt.Sprintf("ring %s → … → %s ⟲", strings.Join(head, " → "), strings.Join(tail, " → "))
}

// runeLen measures the character positions a string occupies on screen:
// rune count after removing escape sequences.
func runeLen(s string) int {
	return utf8.RuneCountInString(stripped(s))
}

// stripped removes ANSI SGR escape sequences for width accounting.
func stripped(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
