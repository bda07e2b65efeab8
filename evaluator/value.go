package evaluator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const builtinStringTrimWhitespace = "\u0009\u000A\u000B\u000C\u000D\u0020\u00A0\u1680\u180E\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200A\u2028\u2029\u202F\u205F\u3000\uFEFF"

var stringToNumberParseInteger = regexp.MustCompile(`^(?:0[xXoObB])`)

func parseNumber(value string) float64 {
	value = strings.Trim(value, builtinStringTrimWhitespace)

	if value == "" {
		return 0
	}

	switch value {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if stringToNumberParseInteger.MatchString(value) {
		number, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(number)
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	// ParseFloat accepts spellings that are not numeric literals.
	if strings.ContainsAny(value, "nN_xXpP") {
		return math.NaN()
	}
	return number
}

type valueKind int

const (
	valueUndefined valueKind = iota
	valueNull
	valueNumber
	valueString
	valueBoolean
	valueObject
)

var (
	undefinedValue = Value{}
	nullValue      = Value{kind: valueNull}
	falseValue     = Value{kind: valueBoolean, value: false}
	trueValue      = Value{kind: valueBoolean, value: true}
)

// Value is the representation of a JavaScript value.
type Value struct {
	value any
	kind  valueKind
}

var matchLeading0Exponent = regexp.MustCompile(`([eE][\+\-])0+([1-9])`) // 1e-07 => 1e-7

func floatToString(value float64) string {
	if math.IsNaN(value) {
		return "NaN"
	} else if math.IsInf(value, 0) {
		if math.Signbit(value) {
			return "-Infinity"
		}
		return "Infinity"
	}
	if value == 0 {
		return "0" // Take care not to return -0
	}
	exponent := math.Log10(math.Abs(value))
	if exponent >= 21 || exponent < -6 {
		return matchLeading0Exponent.ReplaceAllString(strconv.FormatFloat(value, 'g', -1, 64), "$1$2")
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// String converts v the way String(v) does.
func (v Value) String() string {
	switch v.kind {
	case valueUndefined:
		return "undefined"
	case valueNull:
		return "null"
	case valueBoolean:
		return strconv.FormatBool(v.value.(bool))
	case valueNumber:
		return floatToString(v.value.(float64))
	case valueString:
		return v.value.(string)
	}
	return v.object().String()
}

func (v Value) float64() float64 {
	switch v.kind {
	case valueUndefined:
		return math.NaN()
	case valueNull:
		return 0
	case valueBoolean:
		if v.value.(bool) {
			return 1
		}
		return 0
	case valueNumber:
		return v.value.(float64)
	case valueString:
		return parseNumber(v.value.(string))
	}
	o := v.object()
	if o.array != nil || o.kind == objectPlain {
		return parseNumber(o.String())
	}
	return math.NaN()
}

func (v Value) bool() bool {
	switch v.kind {
	case valueUndefined, valueNull:
		return false
	case valueBoolean:
		return v.value.(bool)
	case valueNumber:
		value := v.value.(float64)
		return !math.IsNaN(value) && value != 0
	case valueString:
		return len(v.value.(string)) != 0
	}
	return true
}

func (v Value) object() *object {
	if v.kind != valueObject {
		return nil
	}
	return v.value.(*object)
}

// IsBoolean will return true if value is a boolean (primitive).
func (v Value) IsBoolean() bool {
	return v.kind == valueBoolean
}

// IsNumber will return true if value is a number (primitive).
func (v Value) IsNumber() bool {
	return v.kind == valueNumber
}

// IsString will return true if value is a string (primitive).
func (v Value) IsString() bool {
	return v.kind == valueString
}

// IsNull will return true if the value is null, and false otherwise.
func (v Value) IsNull() bool {
	return v.kind == valueNull
}

// IsUndefined will return true if the value is undefined, and false otherwise.
func (v Value) IsUndefined() bool {
	return v.kind == valueUndefined
}

// IsObject reports whether v is an object, array or function.
func (v Value) IsObject() bool {
	return v.kind == valueObject
}

func (v Value) typeOf() string {
	switch v.kind {
	case valueUndefined:
		return "undefined"
	case valueNull:
		return "object"
	case valueNumber:
		return "number"
	case valueString:
		return "string"
	case valueBoolean:
		return "boolean"
	}
	if v.object().callable() {
		return "function"
	}
	return "object"
}

// ECMA 262: 9.5.
func toInt32(value Value) int32 {
	floatValue := value.float64()
	if math.IsNaN(floatValue) || math.IsInf(floatValue, 0) || floatValue == 0 {
		return 0
	}

	// Convert to int64 before int32 to force correct wrapping.
	return int32(int64(floatValue))
}

func toUint32(value Value) uint32 {
	floatValue := value.float64()
	if math.IsNaN(floatValue) || math.IsInf(floatValue, 0) || floatValue == 0 {
		return 0
	}

	// Convert to int64 before uint32 to force correct wrapping.
	return uint32(int64(floatValue))
}

var (
	nan              float64 = math.NaN()
	positiveInfinity float64 = math.Inf(+1)
	negativeInfinity float64 = math.Inf(-1)
	positiveZero     float64 = 0
	negativeZero     float64 = math.Float64frombits(0 | (1 << 63))
)

// NaNValue will return a value representing NaN.
//
// It is equivalent to:
//
//	ToValue(math.NaN())
func NaNValue() Value {
	return Value{kind: valueNumber, value: nan}
}

func positiveInfinityValue() Value {
	return Value{kind: valueNumber, value: positiveInfinity}
}

func negativeInfinityValue() Value {
	return Value{kind: valueNumber, value: negativeInfinity}
}

func positiveZeroValue() Value {
	return Value{kind: valueNumber, value: positiveZero}
}

func negativeZeroValue() Value {
	return Value{kind: valueNumber, value: negativeZero}
}

func stringValue(value string) Value {
	return Value{
		kind:  valueString,
		value: value,
	}
}

func float64Value(value float64) Value {
	return Value{
		kind:  valueNumber,
		value: value,
	}
}

func boolValue(value bool) Value {
	if value {
		return trueValue
	}
	return falseValue
}

func int32Value(value int32) Value {
	return float64Value(float64(value))
}

func uint32Value(value uint32) Value {
	return float64Value(float64(value))
}

func objectValue(o *object) Value {
	return Value{
		kind:  valueObject,
		value: o,
	}
}

