package parser

import "github.com/google/uuid"

// newParagraphID assigns a fresh identifier to a parsed paragraph. Source
// formats carry no stable block IDs, so every parse mints new ones.
func newParagraphID() string {
	return uuid.NewString()
}
