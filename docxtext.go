// Package docxtext extracts plain text from WordprocessingML (.docx)
// packages. It reads the document body part from the ZIP container, walks
// its paragraphs and text runs, and produces newline-delimited text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., zip/, etree/, sqlite/).
package docxtext
