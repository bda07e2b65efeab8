package evaluator

import (
	"math"
	"strings"

	"github.com/reloopjs/reloop/token"
)

func evaluateDivide(left float64, right float64) Value {
	if math.IsNaN(left) || math.IsNaN(right) {
		return NaNValue()
	}
	if math.IsInf(left, 0) && math.IsInf(right, 0) {
		return NaNValue()
	}
	if left == 0 && right == 0 {
		return NaNValue()
	}
	if math.IsInf(left, 0) {
		if math.Signbit(left) == math.Signbit(right) {
			return positiveInfinityValue()
		}
		return negativeInfinityValue()
	}
	if math.IsInf(right, 0) {
		if math.Signbit(left) == math.Signbit(right) {
			return positiveZeroValue()
		}
		return negativeZeroValue()
	}
	if right == 0 {
		if math.Signbit(left) == math.Signbit(right) {
			return positiveInfinityValue()
		}
		return negativeInfinityValue()
	}
	return float64Value(left / right)
}

// toPrimitive flattens objects to their string form, which is what the
// default valueOf/toString pair produces for plain objects and arrays.
func toPrimitive(v Value) Value {
	if v.IsObject() {
		return stringValue(v.String())
	}
	return v
}

func strictEquals(left, right Value) bool {
	if left.kind != right.kind {
		return false
	}
	switch left.kind {
	case valueUndefined, valueNull:
		return true
	case valueNumber:
		return left.float64() == right.float64()
	case valueObject:
		return left.object() == right.object()
	}
	return left.value == right.value
}

func looseEquals(left, right Value) bool {
	if left.kind == right.kind {
		return strictEquals(left, right)
	}
	nullish := func(v Value) bool { return v.IsUndefined() || v.IsNull() }
	if nullish(left) || nullish(right) {
		return nullish(left) && nullish(right)
	}
	if left.IsObject() {
		return looseEquals(toPrimitive(left), right)
	}
	if right.IsObject() {
		return looseEquals(left, toPrimitive(right))
	}
	return left.float64() == right.float64()
}

// compare evaluates left < right. The second result is false when either
// side is NaN.
func compare(left, right Value) (less bool, ok bool) {
	left, right = toPrimitive(left), toPrimitive(right)
	if left.IsString() && right.IsString() {
		return left.String() < right.String(), true
	}
	l, r := left.float64(), right.float64()
	if math.IsNaN(l) || math.IsNaN(r) {
		return false, false
	}
	return l < r, true
}

func calculateBinaryExpression(operator token.Token, left Value, right Value) (Value, error) {
	switch operator {
	// Additive
	case token.Plus:
		left, right = toPrimitive(left), toPrimitive(right)
		if left.IsString() || right.IsString() {
			return stringValue(strings.Join([]string{left.String(), right.String()}, "")), nil
		}
		return float64Value(left.float64() + right.float64()), nil
	case token.Minus:
		return float64Value(left.float64() - right.float64()), nil

	// Multiplicative
	case token.Multiply:
		return float64Value(left.float64() * right.float64()), nil
	case token.Slash:
		return evaluateDivide(left.float64(), right.float64()), nil
	case token.Remainder:
		return float64Value(math.Mod(left.float64(), right.float64())), nil
	case token.Exponent:
		return float64Value(math.Pow(left.float64(), right.float64())), nil

	// Bitwise
	case token.And:
		return int32Value(toInt32(left) & toInt32(right)), nil
	case token.Or:
		return int32Value(toInt32(left) | toInt32(right)), nil
	case token.ExclusiveOr:
		return int32Value(toInt32(left) ^ toInt32(right)), nil

	// Shift
	// (Masking of 0x1f is to restrict the shift to a maximum of 31 places)
	case token.ShiftLeft:
		return int32Value(toInt32(left) << (toUint32(right) & 0x1f)), nil
	case token.ShiftRight:
		return int32Value(toInt32(left) >> (toUint32(right) & 0x1f)), nil
	case token.UnsignedShiftRight:
		// Shifting an unsigned integer is a logical shift
		return uint32Value(toUint32(left) >> (toUint32(right) & 0x1f)), nil

	// Equality
	case token.StrictEqual:
		return boolValue(strictEquals(left, right)), nil
	case token.StrictNotEqual:
		return boolValue(!strictEquals(left, right)), nil
	case token.Equal:
		return boolValue(looseEquals(left, right)), nil
	case token.NotEqual:
		return boolValue(!looseEquals(left, right)), nil

	// Relational
	case token.Less:
		less, _ := compare(left, right)
		return boolValue(less), nil
	case token.Greater:
		greater, _ := compare(right, left)
		return boolValue(greater), nil
	case token.LessOrEqual:
		greater, ok := compare(right, left)
		return boolValue(ok && !greater), nil
	case token.GreaterOrEqual:
		less, ok := compare(left, right)
		return boolValue(ok && !less), nil
	case token.In:
		o := right.object()
		if o == nil {
			return undefinedValue, throwTypeError("cannot use 'in' operator on %s", right.String())
		}
		_, ok := o.get(toPrimitive(left).String())
		return boolValue(ok), nil
	}

	return undefinedValue, unsupported("binary operator " + operator.String())
}
