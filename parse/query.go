package parse

import (
	"fmt"

	"github.com/dzjyyds666/acon/parse/acon"
	"github.com/expr-lang/expr"
)

// Query evaluates an expr-lang expression against a document. The
// document's top-level keys are variables, and lookup("a.0.b") resolves a
// dot path, returning nil when the path does not exist.
func Query(root *acon.Table, source string) (any, error) {
	if source == "" {
		return nil, fmt.Errorf("empty expression")
	}

	env, ok := ToUntyped(root).(map[string]any)
	if !ok {
		env = map[string]any{}
	}

	program, err := expr.Compile(source, expr.Env(env), lookup(root))
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", source, err)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("run %q: %w", source, err)
	}
	return out, nil
}

func lookup(root *acon.Table) expr.Option {
	return expr.Function(
		"lookup",
		func(params ...any) (any, error) {
			path, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("lookup: path must be a string, got %T", params[0])
			}
			n, ok := acon.Path(root, path)
			if !ok {
				return nil, nil
			}
			return ToUntyped(n), nil
		},
		new(func(string) any),
	)
}
