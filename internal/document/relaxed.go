package document

import (
	"bytes"
	"strconv"
)

// DecodeRelaxed parses a document written in a relaxed JSON dialect:
// line comments (// and #), block comments, trailing commas, unquoted
// keys, single-quoted strings and hexadecimal integer literals. The
// input is normalized to strict JSON and then decoded with Decode.
//
// This adapter keeps legacy document conventions out of the core: the
// tree handed to callers is indistinguishable from a strictly parsed one.
func DecodeRelaxed(data []byte) (*Node, error) {
	return Decode(normalizeRelaxed(data))
}

// normalizeRelaxed rewrites relaxed-dialect input into strict JSON.
// It works on bytes and makes no attempt to validate the result; the
// strict decoder reports whatever remains malformed.
func normalizeRelaxed(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))

	// A comma is held back until the next significant byte: if that
	// byte closes a container the comma was trailing and is dropped.
	pendingComma := false

	flushComma := func(next byte) {
		if !pendingComma {
			return
		}
		pendingComma = false
		if next != '}' && next != ']' {
			out.WriteByte(',')
		}
	}

	i := 0
	for i < len(data) {
		c := data[i]

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			out.WriteByte(c)
			i++

		case c == '/' && i+1 < len(data) && data[i+1] == '/':
			i = skipLineComment(data, i+2)

		case c == '#':
			i = skipLineComment(data, i+1)

		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			i = skipBlockComment(data, i+2)

		case c == ',':
			flushComma(0)
			pendingComma = true
			i++

		case c == '"':
			flushComma(c)
			i = copyString(&out, data, i)

		case c == '\'':
			flushComma('"')
			i = copySingleQuoted(&out, data, i)

		case isIdentStart(c):
			flushComma(c)
			i = copyBareWord(&out, data, i)

		case c >= '0' && c <= '9':
			flushComma(c)
			i = copyNumber(&out, data, i)

		default:
			flushComma(c)
			out.WriteByte(c)
			i++
		}
	}

	return out.Bytes()
}

func skipLineComment(data []byte, i int) int {
	for i < len(data) && data[i] != '\n' {
		i++
	}
	return i
}

func skipBlockComment(data []byte, i int) int {
	for i+1 < len(data) {
		if data[i] == '*' && data[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return len(data)
}

// copyString copies a double-quoted string verbatim, honoring escapes.
func copyString(out *bytes.Buffer, data []byte, i int) int {
	out.WriteByte('"')
	i++
	for i < len(data) {
		c := data[i]
		if c == '\\' && i+1 < len(data) {
			out.WriteByte(c)
			out.WriteByte(data[i+1])
			i += 2
			continue
		}
		out.WriteByte(c)
		i++
		if c == '"' {
			break
		}
	}
	return i
}

// copySingleQuoted rewrites a single-quoted string as a double-quoted one.
func copySingleQuoted(out *bytes.Buffer, data []byte, i int) int {
	out.WriteByte('"')
	i++
	for i < len(data) {
		c := data[i]
		switch {
		case c == '\\' && i+1 < len(data) && data[i+1] == '\'':
			out.WriteByte('\'')
			i += 2
		case c == '\\' && i+1 < len(data):
			out.WriteByte(c)
			out.WriteByte(data[i+1])
			i += 2
		case c == '\'':
			out.WriteByte('"')
			return i + 1
		case c == '"':
			out.WriteString(`\"`)
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}
	return i
}

// copyBareWord quotes an unquoted key or bare identifier. JSON keywords
// pass through untouched.
func copyBareWord(out *bytes.Buffer, data []byte, i int) int {
	start := i
	for i < len(data) && isIdentByte(data[i]) {
		i++
	}
	word := data[start:i]

	switch string(word) {
	case "true", "false", "null":
		out.Write(word)
	default:
		out.WriteByte('"')
		out.Write(word)
		out.WriteByte('"')
	}
	return i
}

// copyNumber copies a numeric literal, converting hexadecimal integers
// to their decimal form.
func copyNumber(out *bytes.Buffer, data []byte, i int) int {
	if data[i] == '0' && i+1 < len(data) && (data[i+1] == 'x' || data[i+1] == 'X') {
		start := i + 2
		j := start
		for j < len(data) && isHexDigit(data[j]) {
			j++
		}
		if v, err := strconv.ParseUint(string(data[start:j]), 16, 64); err == nil {
			out.WriteString(strconv.FormatUint(v, 10))
			return j
		}
		// Not a valid hex literal after all; fall through byte by byte.
		out.WriteByte(data[i])
		return i + 1
	}

	for i < len(data) && isNumberByte(data[i]) {
		out.WriteByte(data[i])
		i++
	}
	return i
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isNumberByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E'
}
