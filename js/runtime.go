package js

import (
	"fmt"
	"strconv"

	"github.com/lukehoban/browser/dom"
)

// ValueKind distinguishes the three runtime value variants.
type ValueKind int

const (
	NumberValue ValueKind = iota
	StringValue
	ElementValue
)

// Value is a JS runtime value: Number(uint64) | StringLiteral(string) |
// HtmlElement{object, property}.
type Value struct {
	Kind ValueKind

	Num uint64 // NumberValue
	Str string // StringValue

	Element  *dom.Node // ElementValue; nil if getElementById found no match
	Property string    // ElementValue; "" if absent
}

func NumberVal(n uint64) Value  { return Value{Kind: NumberValue, Num: n} }
func StringVal(s string) Value  { return Value{Kind: StringValue, Str: s} }

// ElementVal wraps a DOM node as a runtime HtmlElement value with no
// property selected yet.
func ElementVal(n *dom.Node) Value {
	return Value{Kind: ElementValue, Element: n}
}

// String renders a Value's display representation, used both for `+`
// string concatenation and for textContent assignment.
func (v Value) String() string {
	switch v.Kind {
	case NumberValue:
		return strconv.FormatUint(v.Num, 10)
	case StringValue:
		return v.Str
	case ElementValue:
		if v.Element == nil {
			return "HtmlElement(null)"
		}
		return fmt.Sprintf("HtmlElement(%s)", v.Element.Tag)
	default:
		return ""
	}
}

// Add implements JS `+`: numeric add if both operands are numbers,
// otherwise string concatenation of their display representations.
func Add(a, b Value) Value {
	if a.Kind == NumberValue && b.Kind == NumberValue {
		return NumberVal(a.Num + b.Num)
	}
	return StringVal(a.String() + b.String())
}

// Sub implements JS `-`: numeric subtraction if both operands are
// numbers, otherwise Number(0).
func Sub(a, b Value) Value {
	if a.Kind == NumberValue && b.Kind == NumberValue {
		return NumberVal(a.Num - b.Num)
	}
	return NumberVal(0)
}

// binding is one (name, value) entry in an Environment. Value is nil for
// an uninitialized declarator ("var a;").
type binding struct {
	name  string
	value *Value
}

// Environment is an ordered list of bindings with a link to an outer
// scope. Lookup walks outward; declaration always adds to the current
// scope; update rewrites the nearest existing binding.
type Environment struct {
	bindings []binding
	outer    *Environment
}

// NewEnvironment creates a root or child Environment.
func NewEnvironment(outer *Environment) *Environment {
	return &Environment{outer: outer}
}

// AddVariable appends a new binding to the current scope.
func (e *Environment) AddVariable(name string, value *Value) {
	e.bindings = append(e.bindings, binding{name: name, value: value})
}

// GetVariable looks up name, walking outward through parent scopes.
// The most recently declared binding for a name wins within one scope.
func (e *Environment) GetVariable(name string) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		for i := len(env.bindings) - 1; i >= 0; i-- {
			if env.bindings[i].name == name {
				if env.bindings[i].value == nil {
					return Value{}, false
				}
				return *env.bindings[i].value, true
			}
		}
	}
	return Value{}, false
}

// UpdateVariable locates the nearest binding for name (searching this
// scope outward) and rewrites it. If no binding exists anywhere, it adds
// one to the current scope rather than silently losing the write.
func (e *Environment) UpdateVariable(name string, value Value) {
	for env := e; env != nil; env = env.outer {
		for i := len(env.bindings) - 1; i >= 0; i-- {
			if env.bindings[i].name == name {
				env.bindings[i].value = &value
				return
			}
		}
	}
	e.AddVariable(name, &value)
}

// function is a declared user function record.
type function struct {
	id     string
	params []*Identifier
	body   *BlockStatement
}

// Runtime is a tree-walking interpreter. One Runtime executes exactly one
// Program against one DOM tree, per Page.receive_response's ordering
// guarantee (JS runs once, fully, before layout).
type Runtime struct {
	global    *Environment
	functions []*function
	window    *dom.Window
}

// NewRuntime creates a Runtime bound to window's DOM tree.
func NewRuntime(window *dom.Window) *Runtime {
	return &Runtime{global: NewEnvironment(nil), window: window}
}

// Execute runs every top-level statement of prog in the global scope and
// returns the value produced by the last statement.
func (r *Runtime) Execute(prog *Program) Value {
	var last evalResult
	for _, stmt := range prog.Body {
		last = r.evalStatement(stmt, r.global)
	}
	return last.value
}

// evalResult carries a value plus whether a ReturnStatement produced it,
// so BlockStatement/function-call evaluation can stop early instead of
// evaluating statements after a return (an explicit, intentional
// improvement over letting later statements overwrite the result).
type evalResult struct {
	value    Value
	returned bool
}

func (r *Runtime) evalStatement(node Node, env *Environment) evalResult {
	switch n := node.(type) {
	case *FunctionDeclaration:
		var params []*Identifier
		params = append(params, n.Params...)
		r.functions = append(r.functions, &function{id: n.ID.Name, params: params, body: n.Body})
		return evalResult{}
	case *VariableDeclaration:
		for _, d := range n.Declarations {
			if d.Init == nil {
				env.AddVariable(d.ID.Name, nil)
				continue
			}
			v := r.eval(d.Init, env)
			env.AddVariable(d.ID.Name, &v)
		}
		return evalResult{}
	case *ReturnStatement:
		var v Value
		if n.Argument != nil {
			v = r.eval(n.Argument, env)
		}
		return evalResult{value: v, returned: true}
	case *BlockStatement:
		var last evalResult
		for _, stmt := range n.Body {
			last = r.evalStatement(stmt, env)
			if last.returned {
				return last
			}
		}
		return last
	case *ExpressionStatement:
		return evalResult{value: r.eval(n.Expression, env)}
	default:
		return evalResult{value: r.eval(node, env)}
	}
}

// eval evaluates an expression node to a Value.
func (r *Runtime) eval(node Node, env *Environment) Value {
	switch n := node.(type) {
	case *NumericLiteral:
		return NumberVal(n.Value)
	case *StringLiteral:
		return StringVal(n.Value)
	case *Identifier:
		if v, ok := env.GetVariable(n.Name); ok {
			return v
		}
		// Undeclared identifiers fall back to their own name as a string,
		// which is what lets `document.getElementById` compose by plain
		// textual concatenation below.
		return StringVal(n.Name)
	case *AdditiveExpression:
		left := r.eval(n.Left, env)
		right := r.eval(n.Right, env)
		if n.Operator == "+" {
			return Add(left, right)
		}
		return Sub(left, right)
	case *AssignmentExpression:
		right := r.eval(n.Right, env)
		if id, ok := n.Left.(*Identifier); ok {
			env.UpdateVariable(id.Name, right)
			return right
		}
		left := r.eval(n.Left, env)
		if left.Kind == ElementValue && left.Property == "textContent" && left.Element != nil {
			left.Element.Children = nil
			left.Element.AppendChild(dom.NewText(right.String()))
		}
		return right
	case *MemberExpression:
		object := r.eval(n.Object, env)
		if n.Property == nil {
			return object
		}
		if object.Kind == ElementValue {
			object.Property = n.Property.Name
			return object
		}
		return StringVal(object.String() + "." + n.Property.Name)
	case *CallExpression:
		calleeEnv := NewEnvironment(env)
		callee := r.eval(n.Callee, calleeEnv)
		args := make([]Value, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = r.eval(a, env)
		}
		if callee.Kind == StringValue {
			if v, ok := r.callBrowserAPI(callee.Str, args); ok {
				return v
			}
			return r.callUserFunction(callee.Str, args)
		}
		return Value{}
	default:
		return Value{}
	}
}

// callBrowserAPI implements the one DOM bridge function the spec names:
// document.getElementById(id).
func (r *Runtime) callBrowserAPI(name string, args []Value) (Value, bool) {
	if name != "document.getElementById" {
		return Value{}, false
	}
	var id string
	if len(args) > 0 {
		id = args[0].String()
	}
	node := findElementByID(r.window.Document, id)
	return ElementVal(node), true
}

func findElementByID(n *dom.Node, id string) *dom.Node {
	if n.Kind == dom.ElementKind && n.ID() == id {
		return n
	}
	for _, c := range n.Children {
		if found := findElementByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func (r *Runtime) callUserFunction(name string, args []Value) Value {
	for _, fn := range r.functions {
		if fn.id != name {
			continue
		}
		scope := NewEnvironment(r.global)
		for i, p := range fn.params {
			if i < len(args) {
				v := args[i]
				scope.AddVariable(p.Name, &v)
			} else {
				scope.AddVariable(p.Name, nil)
			}
		}
		result := r.evalStatement(fn.body, scope)
		return result.value
	}
	return Value{}
}
