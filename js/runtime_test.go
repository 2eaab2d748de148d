package js

import (
	"testing"

	"github.com/lukehoban/browser/dom"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) Value {
	t.Helper()
	prog, err := ParseProgram(src)
	require.NoError(t, err)
	rt := NewRuntime(dom.NewWindow())
	return rt.Execute(prog)
}

func TestRuntimeAdditiveNumbers(t *testing.T) {
	require.Equal(t, NumberVal(3), run(t, "1+2;"))
}

func TestRuntimeSubtraction(t *testing.T) {
	require.Equal(t, NumberVal(2), run(t, "3-1;"))
}

func TestRuntimeVariableReference(t *testing.T) {
	require.Equal(t, NumberVal(43), run(t, "var a=42; a+1;"))
}

func TestRuntimeFunctionCall(t *testing.T) {
	require.Equal(t, NumberVal(43), run(t, "function f(){return 42;} f()+1;"))
}

func TestRuntimeFunctionLocalScopeDoesNotLeak(t *testing.T) {
	require.Equal(t, NumberVal(43), run(t, "var a=42; function f(){var a=1; return a;} f()+a;"))
}

func TestRuntimeReassignment(t *testing.T) {
	require.Equal(t, NumberVal(1), run(t, "var a=42; a=1; a;"))
}

func TestRuntimeNonLeftAssociativeAdditive(t *testing.T) {
	// 1-2+3 parses as 1-(2+3) = 1-5, which wraps the same way the spec's
	// unsigned Number representation does.
	var want uint64 = 1
	want -= 5
	require.Equal(t, NumberVal(want), run(t, "1-2+3;"))
}

func TestRuntimeUndeclaredIdentifierIsItsOwnName(t *testing.T) {
	require.Equal(t, StringVal("foo"), run(t, "foo;"))
}

func TestRuntimeGetElementByIdAndTextContentAssignment(t *testing.T) {
	w := dom.NewWindow()
	body := dom.NewElement(dom.Body, nil)
	h1 := dom.NewElement(dom.H1, []dom.Attribute{{Name: "id", Value: "t"}})
	h1.AppendChild(dom.NewText("hi"))
	body.AppendChild(h1)
	w.Document.AppendChild(body)

	prog, err := ParseProgram(`document.getElementById("t").textContent = "ok";`)
	require.NoError(t, err)
	rt := NewRuntime(w)
	rt.Execute(prog)

	require.Len(t, h1.Children, 1)
	require.Equal(t, "ok", h1.Children[0].Text)
}

func TestRuntimeGetElementByIdMissingIsNoOp(t *testing.T) {
	w := dom.NewWindow()
	body := dom.NewElement(dom.Body, nil)
	w.Document.AppendChild(body)

	prog, err := ParseProgram(`document.getElementById("missing").textContent = "ok";`)
	require.NoError(t, err)
	rt := NewRuntime(w)
	require.NotPanics(t, func() { rt.Execute(prog) })
}
