package menuconfig

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/atomicstack/gridmenu/internal/contextmenu"
	"github.com/atomicstack/gridmenu/internal/grid"
	"github.com/atomicstack/gridmenu/internal/logging"
)

// Evaluator compiles cell expressions once and evaluates them per cell.
type Evaluator struct {
	cache sync.Map // expression string → compiled *vm.Program
}

// NewEvaluator returns an empty evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// cellEnv is the variable set visible to shown and active expressions.
func cellEnv(g *grid.Grid, col *grid.Column, row *grid.Row) map[string]any {
	env := map[string]any{
		"column": "",
		"value":  "",
		"row":    0,
		"marked": false,
		"index":  -1,
	}
	if col != nil {
		env["column"] = col.Name
	}
	if row != nil {
		env["row"] = row.ID
		env["marked"] = row.Marked
		env["value"] = row.Value(col)
		if g != nil {
			env["index"] = g.Table().IndexOf(row)
		}
	}
	return env
}

// Compile checks expression and returns it as a predicate. An empty
// expression yields nil so the registry default applies.
func (e *Evaluator) Compile(expression string) (contextmenu.Predicate, error) {
	if expression == "" {
		return nil, nil
	}
	program, err := e.compile(expression)
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expression, err)
	}
	return func(g contextmenu.Grid, col contextmenu.Column, row contextmenu.Row) bool {
		gr, _ := g.(*grid.Grid)
		c, _ := col.(*grid.Column)
		r, _ := row.(*grid.Row)
		result, err := expr.Run(program, cellEnv(gr, c, r))
		if err != nil {
			logging.Error(fmt.Errorf("evaluate expression %q: %w", expression, err))
			return false
		}
		b, _ := result.(bool)
		return b
	}, nil
}

func (e *Evaluator) compile(expression string) (*vm.Program, error) {
	if cached, ok := e.cache.Load(expression); ok {
		return cached.(*vm.Program), nil
	}
	program, err := expr.Compile(expression, expr.Env(cellEnv(nil, nil, nil)), expr.AsBool())
	if err != nil {
		return nil, err
	}
	e.cache.Store(expression, program)
	return program, nil
}
