// Package naryhuff provides deterministic n-ary Huffman coding for Go
// applications. Codes are built by compress/huffman on top of the generic
// heap in container/pqueue and stored in container/chainmap tables.
package naryhuff

import "github.com/intel/naryhuff/compress/huffman"

// MaxOrder is the widest tree the digit alphabet 0-9a-f can address.
const MaxOrder = huffman.MaxOrder

// SupportedOrder reports whether k is a merge order compress/huffman
// accepts. Order 2 is classic binary Huffman.
func SupportedOrder(k int) bool {
	return k >= huffman.MinOrder && k <= huffman.MaxOrder
}
