// Package scanner turns Markdown text into an ordered sequence of classified
// lines.
//
// Scanning happens in a single left-to-right pass over normalized text:
//   - Normalize unifies line endings and guarantees a trailing newline.
//   - A cursor walks the text one character at a time, tracking the column
//     and buffering everything consumed since the start of the line.
//   - The classifier looks at the cursor after leading spaces and decides
//     which Kind the line belongs to.
//
// Every source line yields exactly one Statement. Classification never fails:
// a line that matches nothing else is a paragraph line.
package scanner
