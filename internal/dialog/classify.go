package dialog

import (
	"strconv"
	"strings"
)

type inputKind int

const (
	inputFreeText inputKind = iota
	inputBack     // "0"
	inputChoice   // 1-based menu selection
	inputRewrite  // "A"/"a"
)

// input is the classified form of one raw message. Range checks against the
// current menu stay in the per-state handlers; the classifier only tags.
type input struct {
	kind   inputKind
	choice int
	text   string
}

func classify(text string) input {
	switch {
	case text == "0":
		return input{kind: inputBack}
	case strings.EqualFold(text, "A"):
		return input{kind: inputRewrite}
	}
	if n, err := strconv.Atoi(text); err == nil && n >= 1 {
		return input{kind: inputChoice, choice: n}
	}
	return input{kind: inputFreeText, text: text}
}
