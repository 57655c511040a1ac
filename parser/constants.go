package parser

// Arity is the fixed number of operands a mnemonic consumes.
var Arity = map[string]int{
	"SET":      2,
	"AND":      3,
	"OR":       3,
	"XOR":      3,
	"ADD":      3,
	"SUB":      3,
	"MULT":     3,
	"DIV":      3,
	"LSH":      3,
	"RSH":      3,
	"BR":       2,
	"NOT":      2,
	"LOAD":     2,
	"SAVE":     2,
	"MOV":      2,
	"CALL":     1,
	"RET":      0,
	"FUNCTION": 1,
	"LABEL":    1,
	"ADDRESS":  2,
}
