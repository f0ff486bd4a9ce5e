// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"strings"
	"unicode"
)

// TokenType is the type of a lexical token.
//
type TokenType int

// Tokens
const (
	EOF TokenType = iota
	Identifier
	Number
	Char   // character literal: '0'
	String // string or bit string literal: "0101"
	Punct  // operators and delimiters
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "end of input"
	case Identifier:
		return "identifier"
	case Number:
		return "number"
	case Char:
		return "character literal"
	case String:
		return "string literal"
	}
	return "delimiter"
}

// Token is a lexical token.
//
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// Is returns true if t is the identifier or delimiter s. Identifiers compare
// case insensitively.
//
func (t Token) Is(s string) bool {
	switch t.Type {
	case Identifier:
		return strings.EqualFold(t.Value, s)
	case Punct:
		return t.Value == s
	}
	return false
}

func (t Token) String() string {
	if t.Type == EOF {
		return t.Type.String()
	}
	return t.Type.String() + " " + t.Value
}

// lexer splits VHDL source text into tokens. Comments are skipped.
//
type lexer struct {
	in  string
	pos int
}

var compound = [...]string{":=", "=>", "<=", ">=", "/=", "**"}

func isIdentRune(r byte) bool {
	return r == '_' || r < 0x80 && (unicode.IsLetter(rune(r)) || unicode.IsDigit(rune(r)))
}

func (l *lexer) next() Token {
	for l.pos < len(l.in) {
		c := l.in[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.pos++
			continue
		case strings.HasPrefix(l.in[l.pos:], "--"):
			if i := strings.IndexByte(l.in[l.pos:], '\n'); i >= 0 {
				l.pos += i + 1
			} else {
				l.pos = len(l.in)
			}
			continue
		}
		break
	}
	start := l.pos
	if l.pos >= len(l.in) {
		return Token{EOF, "", start}
	}
	c := l.in[l.pos]
	switch {
	case c == '_' || unicode.IsLetter(rune(c)):
		for l.pos < len(l.in) && isIdentRune(l.in[l.pos]) {
			l.pos++
		}
		return Token{Identifier, l.in[start:l.pos], start}
	case '0' <= c && c <= '9':
		for l.pos < len(l.in) && (isIdentRune(l.in[l.pos]) || l.in[l.pos] == '.' || l.in[l.pos] == '#') {
			l.pos++
		}
		return Token{Number, l.in[start:l.pos], start}
	case c == '"':
		i := strings.IndexByte(l.in[l.pos+1:], '"')
		if i < 0 {
			l.pos = len(l.in)
			return Token{String, l.in[start:], start}
		}
		l.pos += i + 2
		return Token{String, l.in[start:l.pos], start}
	case c == '\'' && l.pos+2 < len(l.in) && l.in[l.pos+2] == '\'':
		l.pos += 3
		return Token{Char, l.in[start:l.pos], start}
	}
	for _, p := range compound {
		if strings.HasPrefix(l.in[l.pos:], p) {
			l.pos += len(p)
			return Token{Punct, p, start}
		}
	}
	l.pos++
	return Token{Punct, l.in[start:l.pos], start}
}

// join rebuilds source text from a token list with normalized spacing.
//
func join(ts []Token) string {
	var b strings.Builder
	for i, t := range ts {
		if i > 0 {
			prev := ts[i-1]
			switch {
			case prev.Is("(") || prev.Is("'"):
			case t.Is(")") || t.Is(",") || t.Is("(") || t.Is("'"):
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.Value)
	}
	return b.String()
}

// Tokenize returns the tokens of src, without the final EOF token.
//
func Tokenize(src string) []Token {
	l := lexer{in: src}
	var ts []Token
	for t := l.next(); t.Type != EOF; t = l.next() {
		ts = append(ts, t)
	}
	return ts
}
