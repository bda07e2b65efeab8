package evaluator

import (
	"strconv"
	"strings"

	"github.com/reloopjs/reloop/ast"
)

type objectKind int

const (
	objectPlain objectKind = iota
	objectArray
	objectFunction
	objectBuiltin
)

type builtinFunc func(in *interpreter, this Value, args []Value) (Value, error)

type object struct {
	kind objectKind

	keys  []string
	props map[string]Value

	array []Value

	fn      *function
	builtin builtinFunc
	name    string
}

// function is a closure over the scope it was created in.
type function struct {
	params *ast.ParameterList
	body   ast.ConciseBody
	scope  *scope
	arrow  bool
}

func newObject() *object {
	return &object{kind: objectPlain, props: map[string]Value{}}
}

func newArray(values []Value) *object {
	if values == nil {
		values = []Value{}
	}
	return &object{kind: objectArray, props: map[string]Value{}, array: values}
}

func newBuiltin(name string, fn builtinFunc) *object {
	return &object{kind: objectBuiltin, props: map[string]Value{}, builtin: fn, name: name}
}

func (o *object) callable() bool {
	return o.kind == objectFunction || o.kind == objectBuiltin
}

func arrayIndex(key string) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

func (o *object) get(key string) (Value, bool) {
	if o.kind == objectArray {
		if key == "length" {
			return float64Value(float64(len(o.array))), true
		}
		if i, ok := arrayIndex(key); ok {
			if i < len(o.array) {
				return o.array[i], true
			}
			return undefinedValue, false
		}
		if key == "push" {
			return objectValue(newBuiltin("push", arrayPush)), true
		}
	}
	v, ok := o.props[key]
	return v, ok
}

func (o *object) set(key string, v Value) {
	if o.kind == objectArray {
		if i, ok := arrayIndex(key); ok {
			for len(o.array) <= i {
				o.array = append(o.array, undefinedValue)
			}
			o.array[i] = v
			return
		}
		if key == "length" {
			n := int(toUint32(v))
			for len(o.array) < n {
				o.array = append(o.array, undefinedValue)
			}
			o.array = o.array[:n]
			return
		}
	}
	if _, ok := o.props[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.props[key] = v
}

func (o *object) delete(key string) bool {
	if o.kind == objectArray {
		if i, ok := arrayIndex(key); ok {
			if i < len(o.array) {
				o.array[i] = undefinedValue
			}
			return true
		}
	}
	if _, ok := o.props[key]; !ok {
		return true
	}
	delete(o.props, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// ownKeys lists enumerable keys in for-in order.
func (o *object) ownKeys() []string {
	keys := make([]string, 0, len(o.array)+len(o.keys))
	for i := range o.array {
		keys = append(keys, strconv.Itoa(i))
	}
	return append(keys, o.keys...)
}

func (o *object) String() string {
	switch o.kind {
	case objectArray:
		parts := make([]string, len(o.array))
		for i, v := range o.array {
			if !v.IsUndefined() && !v.IsNull() {
				parts[i] = v.String()
			}
		}
		return strings.Join(parts, ",")
	case objectFunction:
		return "function () { [code] }"
	case objectBuiltin:
		return "function " + o.name + "() { [native code] }"
	}
	return "[object Object]"
}

func arrayPush(_ *interpreter, this Value, args []Value) (Value, error) {
	o := this.object()
	if o == nil || o.kind != objectArray {
		return undefinedValue, throwTypeError("push called on non-array")
	}
	o.array = append(o.array, args...)
	return float64Value(float64(len(o.array))), nil
}
