// Package glyph renders text onto pixel targets.
//
// Two kinds of fonts are supported and selected through a [Face]:
//
//   - Structured fonts ([Source]) provide a bounding box and per character
//     glyphs with their own size, baseline offset and advance. Adapters exist
//     for golang.org/x/image font faces (including TrueType fonts parsed with
//     freetype) and for tinyfont fonts.
//   - Binary fonts ([BinFont]) are fixed size cell fonts stored as a blob of
//     column bytes, such as the classic font5x8.bin.
//
// Both renderers are plain functions over a [Target], they keep no state of
// their own.
package glyph
