// Package exprs compiles textual single-expression lambdas into stage
// callbacks for the seqs query surface. It is strictly opt-in: the
// core engine only ever sees callables.
//
// Expressions are CEL programs over two variables: "it", the current
// item, and "index", the zero-based step number:
//
//	pred, err := exprs.Predicate[int]("it % 2 == 0")
//	evens := seqs.Of(1, 2, 3, 4).Where(pred)
//
// Items must be representable as CEL values (numbers, strings, bools,
// maps, lists); structs should be projected to maps first.
package exprs

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"ripple/seqs"
)

// ErrInvalidExpression is returned when a textual lambda fails to
// parse or type-check.
var ErrInvalidExpression = fmt.Errorf("invalid expression")

var baseEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("it", cel.DynType),
		cel.Variable("index", cel.IntType),
	)
})

// Expression is a compiled textual lambda, ready to evaluate against
// one item per call.
type Expression struct {
	prg cel.Program
	src string
}

// Compile parses and checks the expression text. Malformed text fails
// with ErrInvalidExpression.
func Compile(src string) (*Expression, error) {
	env, err := baseEnv()
	if err != nil {
		return nil, err
	}
	ast, issues := env.Compile(src)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidExpression, src, issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidExpression, src, err)
	}
	return &Expression{prg: prg, src: src}, nil
}

// Source returns the original expression text.
func (e *Expression) Source() string { return e.src }

// Eval evaluates the expression against one item.
func (e *Expression) Eval(item any, index int) (any, error) {
	out, _, err := e.prg.Eval(map[string]any{
		"it":    item,
		"index": index,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", e.src, err)
	}
	return out.Value(), nil
}

// Predicate compiles the text into a filtering callback. A result that
// is not a boolean (or an evaluation error) counts as no match.
func Predicate[T any](src string) (seqs.Predicate[T], error) {
	e, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return func(item T, ctx *seqs.Context[T]) bool {
		v, err := e.Eval(item, ctx.Index)
		if err != nil {
			return false
		}
		b, ok := v.(bool)
		return ok && b
	}, nil
}

// Selector compiles the text into a projecting callback. Evaluation
// errors project to nil.
func Selector[T any](src string) (seqs.Selector[T, any], error) {
	e, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return func(item T, ctx *seqs.Context[T]) any {
		v, err := e.Eval(item, ctx.Index)
		if err != nil {
			return nil
		}
		return v
	}, nil
}

// Key compiles the text into a key-extraction callback for grouping
// and joins.
func Key[T any](src string) (seqs.KeySelector[T, any], error) {
	sel, err := Selector[T](src)
	if err != nil {
		return nil, err
	}
	return seqs.KeySelector[T, any](sel), nil
}
