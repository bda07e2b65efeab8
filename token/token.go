package token

import (
	"strconv"
)

// Token is the set of lexical tokens understood by the scanner.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) {
		if s := token2string[t]; s != "" {
			return s
		}
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

type keyword struct {
	token      Token
	contextual bool
}

// LiteralKeyword returns the keyword token for literal. The second result
// reports whether the keyword may still be used as an identifier (let, of).
// A zero token means literal is not a keyword.
func LiteralKeyword(literal string) (Token, bool) {
	if k, exists := keywordTable[literal]; exists {
		return k.token, k.contextual
	}
	return 0, false
}

// IsKeyword reports whether t is a reserved or contextual keyword.
func IsKeyword(t Token) bool {
	return t > firstKeyword && t < lastKeyword
}

// ID reports whether t can name a binding or a property.
func ID(t Token) bool {
	return t == Identifier || t == Let || t == Of
}

// IsAssign reports whether t is "=" or one of the compound assignment
// operators.
func IsAssign(t Token) bool {
	switch t {
	case Assign, AddAssign, SubtractAssign, MultiplyAssign, ExponentAssign,
		QuotientAssign, RemainderAssign, AndAssign, OrAssign, ExclusiveOrAssign,
		ShiftLeftAssign, ShiftRightAssign, UnsignedShiftRightAssign,
		LogicalAndAssign, LogicalOrAssign, CoalesceAssign:
		return true
	}
	return false
}

// Binary returns the binary operator a compound assignment applies, or 0 for
// tokens that are not compound assignments.
func (t Token) Binary() Token {
	switch t {
	case AddAssign:
		return Plus
	case SubtractAssign:
		return Minus
	case MultiplyAssign:
		return Multiply
	case ExponentAssign:
		return Exponent
	case QuotientAssign:
		return Slash
	case RemainderAssign:
		return Remainder
	case AndAssign:
		return And
	case OrAssign:
		return Or
	case ExclusiveOrAssign:
		return ExclusiveOr
	case ShiftLeftAssign:
		return ShiftLeft
	case ShiftRightAssign:
		return ShiftRight
	case UnsignedShiftRightAssign:
		return UnsignedShiftRight
	case LogicalAndAssign:
		return LogicalAnd
	case LogicalOrAssign:
		return LogicalOr
	case CoalesceAssign:
		return Coalesce
	}
	return 0
}
