package tales

import (
	"github.com/expr-lang/expr"
)

// ProcessExpr evaluates its body with the expr language, exposing the
// context stack as a single environment. Earlier contexts shadow later
// ones, matching path resolution order.
func ProcessExpr(body string, ctxs ...Context) (any, error) {
	env := map[string]any{}
	for i := len(ctxs) - 1; i >= 0; i-- {
		for k, v := range ctxs[i] {
			env[k] = v
		}
	}
	return expr.Eval(body, env)
}
