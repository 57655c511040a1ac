package parser

// Command is a mnemonic and its fixed-arity operands, in source order.
type Command struct {
	Mnemonic string
	Operands []string
	Pos      Position
}

// Parse tokenizes source and groups the resulting lexemes into command
// records using the arity map. filename is used only for error positions.
func Parse(source, filename string) ([]Command, error) {
	tokens, err := NewLexer(source, filename).Lex()
	if err != nil {
		return nil, err
	}
	return group(tokens)
}

func group(tokens []Token) ([]Command, error) {
	var commands []Command
	i := 0
	for i < len(tokens) {
		mnemonic := tokens[i]
		arity, ok := Arity[mnemonic.Literal]
		if !ok {
			return nil, newError(mnemonic.Pos, ErrorUnknownMnemonic, mnemonic.Literal)
		}
		i++
		if i+arity > len(tokens) {
			return nil, newError(mnemonic.Pos, ErrorTruncatedCommand, mnemonic.Literal)
		}
		operands := make([]string, arity)
		for k := 0; k < arity; k++ {
			operands[k] = tokens[i+k].Literal
		}
		i += arity
		commands = append(commands, Command{
			Mnemonic: mnemonic.Literal,
			Operands: operands,
			Pos:      mnemonic.Pos,
		})
	}
	return commands, nil
}
