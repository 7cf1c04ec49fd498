// Package constraints provides constraints for generic string handling.
package constraints

// Byteseq represents a generic byte string. Indexing a Byteseq yields raw
// bytes, never runes, which is the unit the restriction checks operate on.
type Byteseq interface {
	~string | ~[]byte
}
