// Package token provides tokenization support for tagline annotations.
//
// [Tokenize] splits annotation source into a flat token sequence with
// positions. Quoting helpers ([IsIdent], [QuoteName], [QuoteString]) define
// the canonical lexical forms shared by the encoder and path printing.
//
// Problems found while reading source are reported as [Diagnostic] values
// rather than aborting, so callers can collect every problem of a
// multi-line annotation in one pass.
package token
