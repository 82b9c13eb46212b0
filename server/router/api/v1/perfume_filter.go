package v1

import (
	"github.com/google/cel-go/cel"
	"github.com/pkg/errors"

	"github.com/fragora/fragora/store"
)

// perfumeFilterEnv declares the variables a catalog filter expression may
// reference, e.g. `name.contains("bloom") && "fresco" in tags`.
var perfumeFilterEnv, perfumeFilterEnvError = cel.NewEnv(
	cel.Variable("name", cel.StringType),
	cel.Variable("brand", cel.StringType),
	cel.Variable("family", cel.StringType),
	cel.Variable("concentration", cel.StringType),
	cel.Variable("year", cel.IntType),
	cel.Variable("average_rating", cel.DoubleType),
	cel.Variable("average_intensity", cel.StringType),
	cel.Variable("tags", cel.ListType(cel.StringType)),
)

// compilePerfumeFilter compiles a CEL filter expression into a program.
// Returns an error for syntactically invalid or non-boolean expressions.
func compilePerfumeFilter(expression string) (cel.Program, error) {
	if perfumeFilterEnvError != nil {
		return nil, errors.Wrap(perfumeFilterEnvError, "failed to create filter environment")
	}

	ast, issues := perfumeFilterEnv.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, errors.Wrap(issues.Err(), "failed to compile filter")
	}
	if ast.OutputType() != cel.BoolType {
		return nil, errors.New("filter expression must evaluate to a boolean")
	}

	program, err := perfumeFilterEnv.Program(ast)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create filter program")
	}
	return program, nil
}

// matchPerfumeFilter evaluates a compiled filter against one perfume.
func matchPerfumeFilter(program cel.Program, perfume *store.Perfume) (bool, error) {
	out, _, err := program.Eval(map[string]any{
		"name":              perfume.Name,
		"brand":             perfume.Brand,
		"family":            perfume.Family,
		"concentration":     perfume.Concentration,
		"year":              int64(perfume.Year),
		"average_rating":    perfume.AverageRating,
		"average_intensity": perfume.AverageIntensity,
		"tags":              perfume.Tags,
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to evaluate filter")
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, errors.New("filter did not produce a boolean")
	}
	return matched, nil
}
