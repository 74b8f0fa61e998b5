// Package registry holds the static token reference table and resolves
// user-supplied token names to asset identifiers. The table is sourced from
// the Puzzle Swap token list and may lag the chain; it is reference data,
// not truth.
package registry

import "strings"

// NativeAssetID is the sentinel identifier for the chain's own token.
const NativeAssetID = "WAVES"

// Real asset identifiers are 32-byte digests in base58, far longer than any
// display name. Inputs at or past this length are treated as identifiers
// that need no resolution.
const identifierMinLen = 15

// Token is one immutable reference record.
type Token struct {
	AssetID    string   `json:"asset_id"`
	Name       string   `json:"name"`
	Categories []string `json:"categories,omitempty"`
}

// TokenRef is a tagged token reference for callers that already know whether
// they hold a name or an identifier, bypassing the length heuristic.
type TokenRef struct {
	value string
	isID  bool
}

func Name(v string) TokenRef { return TokenRef{value: v} }
func ID(v string) TokenRef   { return TokenRef{value: v, isID: true} }

func (r TokenRef) String() string { return r.value }

// Resolve maps a token name or identifier to an asset identifier. Short
// inputs are resolved against the table case-insensitively, matching either
// the exact name or a name the input is a prefix of; the first table entry
// wins. Long inputs are passed through as identifiers.
func Resolve(nameOrID string) (string, bool) {
	trimmed := strings.TrimSpace(nameOrID)
	if trimmed == "" {
		return "", false
	}
	if strings.EqualFold(trimmed, NativeAssetID) {
		return NativeAssetID, true
	}
	if len(trimmed) >= identifierMinLen {
		return trimmed, true
	}
	return resolveName(trimmed)
}

// ResolveRef resolves a tagged reference without the length heuristic.
func ResolveRef(ref TokenRef) (string, bool) {
	trimmed := strings.TrimSpace(ref.value)
	if trimmed == "" {
		return "", false
	}
	if ref.isID {
		return trimmed, true
	}
	if strings.EqualFold(trimmed, NativeAssetID) {
		return NativeAssetID, true
	}
	return resolveName(trimmed)
}

func resolveName(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, tok := range tokens {
		candidate := strings.ToLower(tok.Name)
		if candidate == lower || strings.HasPrefix(candidate, lower) {
			return tok.AssetID, true
		}
	}
	return "", false
}

// Lookup returns the reference record for an asset identifier.
func Lookup(assetID string) (Token, bool) {
	for _, tok := range tokens {
		if tok.AssetID == assetID {
			return tok, true
		}
	}
	return Token{}, false
}

// Tokens returns the full table in its source order.
func Tokens() []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return out
}
