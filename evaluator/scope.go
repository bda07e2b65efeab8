package evaluator

type binding struct {
	value    Value
	constant bool
}

type scope struct {
	outer    *scope
	bindings map[string]*binding

	// function scopes hold this and receive var declarations
	function bool
	this     Value
}

func newScope(outer *scope, function bool) *scope {
	return &scope{outer: outer, bindings: map[string]*binding{}, function: function}
}

func (s *scope) lookup(name string) *binding {
	for sc := s; sc != nil; sc = sc.outer {
		if b, ok := sc.bindings[name]; ok {
			return b
		}
	}
	return nil
}

func (s *scope) declare(name string, v Value, constant bool) {
	s.bindings[name] = &binding{value: v, constant: constant}
}

// declareVar creates name in the nearest function scope unless it exists.
func (s *scope) declareVar(name string) {
	fs := s.functionScope()
	if _, ok := fs.bindings[name]; !ok {
		fs.declare(name, undefinedValue, false)
	}
}

func (s *scope) functionScope() *scope {
	sc := s
	for !sc.function && sc.outer != nil {
		sc = sc.outer
	}
	return sc
}

func (s *scope) thisValue() Value {
	return s.functionScope().this
}
