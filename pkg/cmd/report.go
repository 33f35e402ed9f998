package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Diagnostic renders rec as a caret diagnostic: the reconstructed command
// line with the offending part highlighted, a caret under its midpoint, and
// a message. path is the command path without the leading slash.
func Diagnostic(path string, slots []Slot, rec ErrorRecord) Text {
	tokens := rec.Tokens
	at := rec.TokenIndex
	if at > len(tokens) {
		at = len(tokens)
	}
	correct := strings.Join(tokens[:at], " ")
	if correct != "" {
		correct += " "
	}
	column := 1 + utf8.RuneCountInString(path) + utf8.RuneCountInString(correct)
	prefix := Segment{Style: StyleError, Text: "/" + path + " " + correct}

	var offending, message string
	line := Line{prefix}
	switch rec.Kind {
	case InvalidArgValue, InvalidArguments:
		if at < len(tokens) {
			offending = tokens[at]
		}
		line = append(line, Segment{Style: StyleHighlight, Text: offending})
		if at+1 < len(tokens) {
			line = append(line, Segment{Style: StyleError, Text: " " + strings.Join(tokens[at+1:], " ")})
		}
		if rec.Kind == InvalidArgValue {
			message = fmt.Sprintf("Command expected argument %d to be %s but %s was given.",
				rec.SlotIndex+1, expectedTypes(slots, rec.SlotIndex), Classify(offending).Kind)
		} else {
			message = fmt.Sprintf("Invalid argument %d: %s.", rec.SlotIndex+1, rec.Detail)
		}
	case TooManyArguments, NoArguments:
		offending = strings.Join(tokens[at:], " ")
		line = append(line, Segment{Style: StyleHighlight, Text: offending})
		// Slots before SlotIndex are filled; each leftover token counts once.
		message = countMessage(len(slots), rec.SlotIndex+len(tokens)-at)
	case InsufficientArguments:
		var parts []string
		for i := rec.SlotIndex; i >= 0 && i < len(slots); i++ {
			parts = append(parts, slots[i].Usage())
		}
		offending = strings.Join(parts, " ")
		line = append(line, Segment{Style: StyleHighlight, Text: offending})
		message = countMessage(len(slots), rec.SlotIndex)
	default:
		return Error("/%s: %s", path, rec.Kind)
	}

	caret := strings.Repeat(" ", column+utf8.RuneCountInString(offending)/2) + "^"
	return Text{
		line,
		Line{{Style: StyleHighlight, Text: caret}},
		Line{{Style: StyleError, Text: message}},
	}
}

func expectedTypes(slots []Slot, index int) string {
	if index < 0 || index >= len(slots) {
		return "nothing"
	}
	names := slots[index].TypeNames()
	if len(names) == 1 {
		return article(names[0]) + " " + names[0]
	}
	return "one of " + strings.Join(names, ", ")
}

func article(word string) string {
	if word != "" && strings.ContainsRune("aeiouAEIOU", rune(word[0])) {
		return "an"
	}
	return "a"
}

func countMessage(expected, given int) string {
	noun := "arguments"
	if expected == 1 {
		noun = "argument"
	}
	return fmt.Sprintf("Command expected %d %s, %d given.", expected, noun, given)
}
