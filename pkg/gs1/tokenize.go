// SPDX-License-Identifier: MPL-2.0

package gs1

import "strings"

// Token is one element read from an element string. A Token with a non-nil Err marks
// a segment that was skipped; its AI is set when the code itself was recognised.
type Token struct {
	AI     AI
	Value  string
	Offset int
	Raw    string
	Err    error
}

// Tokenize splits an element string into tokens in a single left-to-right pass.
//
// Both the bracketed form "(01)09506000134352(10)ABC" and raw GS1-128 data
// "0109506000134352" GS "10ABC" are accepted, and may be mixed. A leading "]C1"
// symbology identifier is ignored. At each position the longest known AI code is
// matched and its value read by the AI's definition; variable-length values end at
// '(', a GS character, their maximum length, or the first character they cannot hold.
// Unknown or malformed segments are skipped up to the next '(' or GS and reported as
// tokens carrying a *SyntaxError.
func Tokenize(input string) []Token {
	var tokens []Token
	pos := 0
	if strings.HasPrefix(input, SymbologyIdentifier) {
		pos = len(SymbologyIdentifier)
	}

	for pos < len(input) {
		switch input[pos] {
		case GroupSeparator, ' ', '\t', '\r', '\n':
			pos++
			continue
		}

		start := pos
		if input[pos] == '(' {
			pos++
		}
		def, ok := matchAI(input[pos:])
		if !ok {
			end := resync(input, start+1)
			tokens = append(tokens, syntaxToken(input, start, end, "", "unknown application identifier"))
			pos = end
			continue
		}
		pos += len(def.AI)
		if pos < len(input) && input[pos] == ')' {
			pos++
		}

		value, reason := def.scan(input[pos:])
		if reason != "" {
			end := resync(input, pos)
			tokens = append(tokens, syntaxToken(input, start, end, def.AI, reason))
			pos = end
			continue
		}
		pos += len(value)
		tokens = append(tokens, Token{AI: def.AI, Value: value, Offset: start, Raw: input[start:pos]})
	}
	return tokens
}

// resync returns the offset of the next '(' or GS at or after from.
func resync(input string, from int) int {
	if from >= len(input) {
		return len(input)
	}
	if i := strings.IndexAny(input[from:], "(\x1d"); i >= 0 {
		return from + i
	}
	return len(input)
}

func syntaxToken(input string, start, end int, ai AI, reason string) Token {
	raw := input[start:end]
	return Token{
		AI:     ai,
		Offset: start,
		Raw:    raw,
		Err:    &SyntaxError{Offset: start, Text: raw, Reason: reason},
	}
}
