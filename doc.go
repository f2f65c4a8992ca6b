// Package linestruct implements the LineStruct format kernel: a schema
// language and parser, a nested-delimiter row tokenizer, a bidirectional
// bridge between LineStruct documents and a language-neutral tree model,
// schema inference from tree data, and strict validation against an
// external schema.
package linestruct
