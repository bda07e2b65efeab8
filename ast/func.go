package ast

type (
	FunctionLiteral struct {
		Function      Idx
		Name          *Identifier
		ParameterList *ParameterList
		Body          *BlockStatement
	}

	ArrowFunctionLiteral struct {
		Start         Idx
		ParameterList *ParameterList
		Body          ConciseBody
	}

	// ConciseBody is an arrow function body: a *BlockStatement or an
	// *Expression.
	ConciseBody interface {
		VisitableNode
		_conciseBody()
	}

	ParameterList struct {
		Opening Idx
		List    VariableDeclarators // Initializer holds the default value
		Rest    *Identifier
		Closing Idx
	}

	Properties []Property

	Property struct {
		Prop
	}

	// Prop is implemented by *PropertyKeyed, *PropertyShort and *SpreadElement.
	Prop interface {
		VisitableNode
		_prop()
	}

	PropertyKind string

	PropertyKeyed struct {
		Key      *Expression
		Kind     PropertyKind
		Computed bool
		Value    *Expression
	}

	PropertyShort struct {
		Name *Identifier
	}
)

const (
	PropertyKindValue  PropertyKind = "value"
	PropertyKindGet    PropertyKind = "get"
	PropertyKindSet    PropertyKind = "set"
	PropertyKindMethod PropertyKind = "method"
)

func (*BlockStatement) _conciseBody() {}
func (*Expression) _conciseBody()     {}

func (*PropertyKeyed) _prop() {}
func (*PropertyShort) _prop() {}
func (*SpreadElement) _prop() {}
