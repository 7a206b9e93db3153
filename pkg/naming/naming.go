// Copyright (c) 2026 Atelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package naming canonicalizes artist names and aliases.
//
// # Usage
//
// Every name is normalized before it is persisted or compared, so that
// "Serafleur", "serafleur " and "SERAFLEUR" all resolve to the same record.
// Wiki page titles share the same canonical form, which is what keeps the
// artist/page soft reference stable.
package naming

import (
	"strings"

	"golang.org/x/text/cases"
)

// folder performs full Unicode case folding, which handles locale-sensitive
// mappings (ß → ss) that plain ToLower misses.
var folder = cases.Fold()

// Normalize converts an arbitrary name into its canonical stored form.
//
// # Transformation Pipeline
//
// 1. Full Unicode case folding.
// 2. Trim surrounding whitespace.
// 3. Replace internal spaces with underscores.
//
// Normalize is idempotent: applying it twice yields the same result.
func Normalize(name string) string {
	folded := folder.String(name)
	folded = strings.TrimSpace(folded)
	return strings.ReplaceAll(folded, " ", "_")
}

// Pretty converts a canonical name back into its display form by
// substituting spaces for underscores.
func Pretty(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
