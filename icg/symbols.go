package icg

// SymbolTable maps a function name to its byte offset in the emitted text
// segment, populated monotonically as FUNCTION records are processed.
type SymbolTable map[string]int64

func newSymbolTable() SymbolTable {
	return make(SymbolTable)
}
