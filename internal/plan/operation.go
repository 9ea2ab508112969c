package plan

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"brytekit/internal/slot"
)

// Kind names what an Operation does.
type Kind string

const (
	KindRename Kind = "rename"
	KindInvoke Kind = "invoke"
)

// Operation is one planned step of a batch.
type Operation struct {
	Kind Kind
	Slot slot.Slot

	// Rename: Source is moved over Destination, replacing it.
	Source      string
	Destination string

	// Invoke: Executable runs with Args and is waited on.
	Executable string
	Args       []string
}

// Rename plans moving src over dst.
func Rename(s slot.Slot, src, dst string) Operation {
	return Operation{Kind: KindRename, Slot: s, Source: src, Destination: dst}
}

// Invoke plans running exe with args.
func Invoke(s slot.Slot, exe string, args []string) Operation {
	cp := make([]string, len(args))
	copy(cp, args)
	return Operation{Kind: KindInvoke, Slot: s, Executable: exe, Args: cp}
}

// Command renders the operation the way a shell user would type it.
func (o Operation) Command() string {
	switch o.Kind {
	case KindRename:
		return joinWords("mv", "-f", o.Source, o.Destination)
	case KindInvoke:
		words := make([]string, 0, len(o.Args)+1)
		words = append(words, o.Executable)
		words = append(words, o.Args...)
		return joinWords(words...)
	default:
		return "# unknown operation " + string(o.Kind)
	}
}

func joinWords(words ...string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = quoteWord(w)
	}
	return strings.Join(quoted, " ")
}

func quoteWord(word string) string {
	q, err := syntax.Quote(word, syntax.LangPOSIX)
	if err != nil {
		// POSIX quoting cannot express some bytes; show those words raw.
		return word
	}
	return q
}
