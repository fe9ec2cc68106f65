package main

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// LSP characters count UTF-16 code units; tagline offsets count bytes.

// lineOf returns line i of content without its newline.
func lineOf(content string, i int) string {
	for range i {
		nl := strings.IndexByte(content, '\n')
		if nl == -1 {
			return ""
		}
		content = content[nl+1:]
	}
	if nl := strings.IndexByte(content, '\n'); nl != -1 {
		content = content[:nl]
	}
	return strings.TrimSuffix(content, "\r")
}

// character converts a byte offset in line to UTF-16 units.
func character(line string, off int) uint32 {
	if off > len(line) {
		off = len(line)
	}
	n := 0
	for _, r := range line[:off] {
		n += utf16.RuneLen(r)
	}
	return uint32(n)
}

// byteOffset converts UTF-16 units in line to a byte offset.
func byteOffset(line string, char uint32) int {
	n := uint32(0)
	for i, r := range line {
		if n >= char {
			return i
		}
		n += uint32(utf16.RuneLen(r))
	}
	return len(line)
}

// positionOf converts a byte offset in content to a position.
func positionOf(content string, off int) protocol.Position {
	line := strings.Count(content[:off], "\n")
	start := strings.LastIndexByte(content[:off], '\n') + 1
	end := strings.IndexByte(content[start:], '\n')
	if end == -1 {
		end = len(content)
	} else {
		end += start
	}
	return protocol.Position{
		Line:      uint32(line),
		Character: character(content[start:end], off-start),
	}
}

// lineRange covers byte offsets [start, end) of line i.
func lineRange(content string, i, start, end int) protocol.Range {
	line := lineOf(content, i)
	if end <= start {
		end = start + 1
		if start < len(line) {
			_, w := utf8.DecodeRuneInString(line[start:])
			end = start + w
		}
	}
	return protocol.Range{
		Start: protocol.Position{Line: uint32(i), Character: character(line, start)},
		End:   protocol.Position{Line: uint32(i), Character: character(line, end)},
	}
}
