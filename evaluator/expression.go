package evaluator

import (
	"github.com/reloopjs/reloop/ast"
	"github.com/reloopjs/reloop/token"
)

func (in *interpreter) eval(s *scope, e *ast.Expression) (Value, error) {
	if e == nil || e.Expr == nil {
		return undefinedValue, nil
	}
	switch n := e.Expr.(type) {
	case *ast.NumberLiteral:
		return float64Value(n.Value), nil
	case *ast.StringLiteral:
		return stringValue(n.Value), nil
	case *ast.BooleanLiteral:
		return boolValue(n.Value), nil
	case *ast.NullLiteral:
		return nullValue, nil
	case *ast.ThisExpression:
		return s.thisValue(), nil
	case *ast.Identifier:
		b := s.lookup(n.Name)
		if b == nil {
			return undefinedValue, throwReferenceError(n.Name)
		}
		return b.value, nil
	case *ast.ArrayLiteral:
		values := make([]Value, 0, len(n.Value))
		for i := range n.Value {
			if spread, ok := n.Value[i].Expr.(*ast.SpreadElement); ok {
				items, err := in.spread(s, spread)
				if err != nil {
					return undefinedValue, err
				}
				values = append(values, items...)
				continue
			}
			v, err := in.eval(s, &n.Value[i])
			if err != nil {
				return undefinedValue, err
			}
			values = append(values, v)
		}
		return objectValue(newArray(values)), nil
	case *ast.ObjectLiteral:
		return in.evalObject(s, n)
	case *ast.FunctionLiteral:
		fn := in.closure(s, n.ParameterList, n.Body, false)
		if n.Name != nil {
			// A named function expression sees its own name.
			inner := newScope(s, false)
			inner.declare(n.Name.Name, fn, true)
			fn.object().fn.scope = inner
		}
		return fn, nil
	case *ast.ArrowFunctionLiteral:
		return in.closure(s, n.ParameterList, n.Body, true), nil
	case *ast.SequenceExpression:
		var v Value
		for i := range n.Sequence {
			var err error
			if v, err = in.eval(s, &n.Sequence[i]); err != nil {
				return undefinedValue, err
			}
		}
		return v, nil
	case *ast.ConditionalExpression:
		test, err := in.eval(s, n.Test)
		if err != nil {
			return undefinedValue, err
		}
		if test.bool() {
			return in.eval(s, n.Consequent)
		}
		return in.eval(s, n.Alternate)
	case *ast.UnaryExpression:
		return in.evalUnary(s, n)
	case *ast.UpdateExpression:
		old, err := in.eval(s, n.Operand)
		if err != nil {
			return undefinedValue, err
		}
		num := old.float64()
		updated := num + 1
		if n.Operator == token.Decrement {
			updated = num - 1
		}
		if err := in.assignTo(s, n.Operand, float64Value(updated)); err != nil {
			return undefinedValue, err
		}
		if n.Postfix {
			return float64Value(num), nil
		}
		return float64Value(updated), nil
	case *ast.BinaryExpression:
		return in.evalBinary(s, n)
	case *ast.AssignExpression:
		return in.evalAssign(s, n)
	case *ast.MemberExpression:
		obj, key, err := in.member(s, n)
		if err != nil {
			return undefinedValue, err
		}
		return getProperty(obj, key)
	case *ast.CallExpression:
		return in.evalCall(s, n)
	case *ast.NewExpression:
		return in.evalNew(s, n)
	case *ast.RegExpLiteral:
		return undefinedValue, unsupported("regular expression")
	case *ast.SpreadElement:
		return undefinedValue, unsupported("spread outside of a list")
	}
	return undefinedValue, unsupported("expression")
}

func (in *interpreter) spread(s *scope, n *ast.SpreadElement) ([]Value, error) {
	v, err := in.eval(s, n.Expression)
	if err != nil {
		return nil, err
	}
	if v.IsString() {
		var items []Value
		for _, r := range v.String() {
			items = append(items, stringValue(string(r)))
		}
		return items, nil
	}
	if o := v.object(); o != nil && o.kind == objectArray {
		return append([]Value(nil), o.array...), nil
	}
	return nil, throwTypeError("%s is not iterable", v.String())
}

func (in *interpreter) evalObject(s *scope, n *ast.ObjectLiteral) (Value, error) {
	o := newObject()
	for _, p := range n.Value {
		switch prop := p.Prop.(type) {
		case *ast.PropertyShort:
			v, err := in.eval(s, &ast.Expression{Expr: prop.Name})
			if err != nil {
				return undefinedValue, err
			}
			o.set(prop.Name.Name, v)
		case *ast.SpreadElement:
			v, err := in.eval(s, prop.Expression)
			if err != nil {
				return undefinedValue, err
			}
			if src := v.object(); src != nil {
				for _, k := range src.ownKeys() {
					pv, _ := src.get(k)
					o.set(k, pv)
				}
			}
		case *ast.PropertyKeyed:
			if prop.Kind == ast.PropertyKindGet || prop.Kind == ast.PropertyKindSet {
				return undefinedValue, unsupported("accessor property")
			}
			key, err := in.propertyKey(s, prop)
			if err != nil {
				return undefinedValue, err
			}
			v, err := in.eval(s, prop.Value)
			if err != nil {
				return undefinedValue, err
			}
			o.set(key, v)
		}
	}
	return objectValue(o), nil
}

func (in *interpreter) propertyKey(s *scope, prop *ast.PropertyKeyed) (string, error) {
	if !prop.Computed {
		switch key := prop.Key.Expr.(type) {
		case *ast.Identifier:
			return key.Name, nil
		case *ast.StringLiteral:
			return key.Value, nil
		case *ast.NumberLiteral:
			return floatToString(key.Value), nil
		}
	}
	v, err := in.eval(s, prop.Key)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// member evaluates the object and key of a member expression.
func (in *interpreter) member(s *scope, n *ast.MemberExpression) (Value, string, error) {
	obj, err := in.eval(s, n.Object)
	if err != nil {
		return undefinedValue, "", err
	}
	if !n.Computed {
		if id, ok := n.Property.Expr.(*ast.Identifier); ok {
			return obj, id.Name, nil
		}
	}
	key, err := in.eval(s, n.Property)
	if err != nil {
		return undefinedValue, "", err
	}
	return obj, key.String(), nil
}

func getProperty(obj Value, key string) (Value, error) {
	switch obj.kind {
	case valueUndefined, valueNull:
		return undefinedValue, throwTypeError("cannot read property '%s' of %s", key, obj.String())
	case valueString:
		str := []rune(obj.String())
		if key == "length" {
			return float64Value(float64(len(str))), nil
		}
		if i, ok := arrayIndex(key); ok && i < len(str) {
			return stringValue(string(str[i])), nil
		}
		return undefinedValue, nil
	case valueObject:
		v, _ := obj.object().get(key)
		return v, nil
	}
	return undefinedValue, nil
}

func (in *interpreter) evalUnary(s *scope, n *ast.UnaryExpression) (Value, error) {
	switch n.Operator {
	case token.Typeof:
		if id, ok := n.Operand.Expr.(*ast.Identifier); ok && s.lookup(id.Name) == nil {
			return stringValue("undefined"), nil
		}
	case token.Delete:
		m, ok := n.Operand.Expr.(*ast.MemberExpression)
		if !ok {
			return trueValue, nil
		}
		obj, key, err := in.member(s, m)
		if err != nil {
			return undefinedValue, err
		}
		if o := obj.object(); o != nil {
			return boolValue(o.delete(key)), nil
		}
		return trueValue, nil
	}

	v, err := in.eval(s, n.Operand)
	if err != nil {
		return undefinedValue, err
	}
	switch n.Operator {
	case token.Not:
		return boolValue(!v.bool()), nil
	case token.Minus:
		return float64Value(-v.float64()), nil
	case token.Plus:
		return float64Value(v.float64()), nil
	case token.BitwiseNot:
		return int32Value(^toInt32(v)), nil
	case token.Typeof:
		return stringValue(v.typeOf()), nil
	case token.Void:
		return undefinedValue, nil
	}
	return undefinedValue, unsupported("unary operator " + n.Operator.String())
}

func (in *interpreter) evalBinary(s *scope, n *ast.BinaryExpression) (Value, error) {
	left, err := in.eval(s, n.Left)
	if err != nil {
		return undefinedValue, err
	}
	switch n.Operator {
	case token.LogicalAnd:
		if !left.bool() {
			return left, nil
		}
		return in.eval(s, n.Right)
	case token.LogicalOr:
		if left.bool() {
			return left, nil
		}
		return in.eval(s, n.Right)
	case token.Coalesce:
		if !left.IsUndefined() && !left.IsNull() {
			return left, nil
		}
		return in.eval(s, n.Right)
	}
	right, err := in.eval(s, n.Right)
	if err != nil {
		return undefinedValue, err
	}
	return calculateBinaryExpression(n.Operator, left, right)
}

func (in *interpreter) evalAssign(s *scope, n *ast.AssignExpression) (Value, error) {
	if n.Operator == token.Assign {
		v, err := in.eval(s, n.Right)
		if err != nil {
			return undefinedValue, err
		}
		return v, in.assignTo(s, n.Left, v)
	}

	left, err := in.eval(s, n.Left)
	if err != nil {
		return undefinedValue, err
	}
	op := n.Operator.Binary()
	switch op {
	case token.LogicalAnd, token.LogicalOr, token.Coalesce:
		short := op == token.LogicalAnd && !left.bool() ||
			op == token.LogicalOr && left.bool() ||
			op == token.Coalesce && !left.IsUndefined() && !left.IsNull()
		if short {
			return left, nil
		}
		v, err := in.eval(s, n.Right)
		if err != nil {
			return undefinedValue, err
		}
		return v, in.assignTo(s, n.Left, v)
	}
	right, err := in.eval(s, n.Right)
	if err != nil {
		return undefinedValue, err
	}
	v, err := calculateBinaryExpression(op, left, right)
	if err != nil {
		return undefinedValue, err
	}
	return v, in.assignTo(s, n.Left, v)
}

func (in *interpreter) assign(s *scope, name string, v Value) error {
	b := s.lookup(name)
	if b == nil {
		// Sloppy mode creates a global.
		in.global.declare(name, v, false)
		return nil
	}
	if b.constant {
		return throwTypeError("assignment to constant variable '%s'", name)
	}
	b.value = v
	return nil
}

func (in *interpreter) assignTo(s *scope, target *ast.Expression, v Value) error {
	switch t := target.Expr.(type) {
	case *ast.Identifier:
		return in.assign(s, t.Name, v)
	case *ast.MemberExpression:
		obj, key, err := in.member(s, t)
		if err != nil {
			return err
		}
		o := obj.object()
		if o == nil {
			if obj.IsUndefined() || obj.IsNull() {
				return throwTypeError("cannot set property '%s' of %s", key, obj.String())
			}
			return nil
		}
		o.set(key, v)
		return nil
	}
	return unsupported("assignment target")
}

func (in *interpreter) arguments(s *scope, list ast.Expressions) ([]Value, error) {
	args := make([]Value, 0, len(list))
	for i := range list {
		if spread, ok := list[i].Expr.(*ast.SpreadElement); ok {
			items, err := in.spread(s, spread)
			if err != nil {
				return nil, err
			}
			args = append(args, items...)
			continue
		}
		v, err := in.eval(s, &list[i])
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

func (in *interpreter) evalCall(s *scope, n *ast.CallExpression) (Value, error) {
	var callee, this Value
	var err error
	if m, ok := n.Callee.Expr.(*ast.MemberExpression); ok {
		var key string
		if this, key, err = in.member(s, m); err != nil {
			return undefinedValue, err
		}
		if callee, err = getProperty(this, key); err != nil {
			return undefinedValue, err
		}
	} else if callee, err = in.eval(s, n.Callee); err != nil {
		return undefinedValue, err
	}
	args, err := in.arguments(s, n.ArgumentList)
	if err != nil {
		return undefinedValue, err
	}
	return in.call(callee, this, args)
}

func (in *interpreter) evalNew(s *scope, n *ast.NewExpression) (Value, error) {
	callee, err := in.eval(s, n.Callee)
	if err != nil {
		return undefinedValue, err
	}
	args, err := in.arguments(s, n.ArgumentList)
	if err != nil {
		return undefinedValue, err
	}
	o := callee.object()
	if o == nil || o.kind != objectFunction || o.fn.arrow {
		return undefinedValue, throwTypeError("%s is not a constructor", callee.String())
	}
	this := objectValue(newObject())
	result, err := in.call(callee, this, args)
	if err != nil {
		return undefinedValue, err
	}
	if result.IsObject() {
		return result, nil
	}
	return this, nil
}

func (in *interpreter) call(callee, this Value, args []Value) (Value, error) {
	o := callee.object()
	if o == nil || !o.callable() {
		return undefinedValue, throwTypeError("%s is not a function", callee.String())
	}
	if o.kind == objectBuiltin {
		return o.builtin(in, this, args)
	}
	if in.depth >= maxCallDepth {
		return undefinedValue, &Exception{Value: stringValue("RangeError: Maximum call stack size exceeded")}
	}
	in.depth++
	defer func() { in.depth-- }()

	fn := o.fn
	sc := newScope(fn.scope, true)
	if fn.arrow {
		sc.this = fn.scope.thisValue()
	} else {
		sc.this = this
	}
	for i, p := range fn.params.List {
		v := undefinedValue
		if i < len(args) {
			v = args[i]
		}
		if v.IsUndefined() && p.Initializer != nil {
			var err error
			if v, err = in.eval(sc, p.Initializer); err != nil {
				return undefinedValue, err
			}
		}
		sc.declare(p.Target.Name, v, false)
	}
	if fn.params.Rest != nil {
		var rest []Value
		if len(args) > len(fn.params.List) {
			rest = append(rest, args[len(fn.params.List):]...)
		}
		sc.declare(fn.params.Rest.Name, objectValue(newArray(rest)), false)
	}

	switch body := fn.body.(type) {
	case *ast.Expression:
		return in.eval(sc, body)
	case *ast.BlockStatement:
		hoistVars(sc, body.List)
		if err := in.hoistFunctions(sc, body.List); err != nil {
			return undefinedValue, err
		}
		c, err := in.execList(sc, body.List)
		if err != nil {
			return undefinedValue, err
		}
		if c.kind == completionReturn {
			return c.value, nil
		}
	}
	return undefinedValue, nil
}
