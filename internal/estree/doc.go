// Package estree loads ESTree and typescript-estree documents into an
// ast.Tree.
//
// Two encodings are accepted: JSON (as printed by acorn, espree or
// @typescript-eslint/typescript-estree) and MessagePack with the same
// shape. A document is either a bare Program node or an envelope:
//
//	{"path": "src/a.ts", "source": "...", "offsets": "utf16", "program": {...}}
//
// When the envelope carries the source text, diagnostics can show the
// offending line. Offsets default to bytes; "utf16" converts JavaScript
// string indices to byte offsets using the source text.
//
// The loader only builds the tree. Identifier marks are left empty and
// filled in by the resolve package.
package estree
