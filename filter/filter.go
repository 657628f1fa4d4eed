// Package filter compiles expr expressions and evaluates them against job
// search results, letting the CLI narrow API responses client-side.
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/kamui-fin/adzuna-go/adzuna"
)

// Filter is a compiled job filter expression.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile parses and compiles a filter expression. Expressions evaluate to
// a boolean over job fields, e.g.:
//
//	SalaryMin > 50000 and Contains(Title, "engineer")
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // job fields are injected at evaluation time
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the original filter expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single job.
func (f *Filter) Match(job adzuna.Job) (bool, error) {
	env := environment(job)
	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Err: err}
	}
	matched, ok := result.(bool)
	return ok && matched, nil
}

// Apply evaluates the filter against every job and returns the matches.
// The first evaluation error aborts the pass.
func (f *Filter) Apply(jobs []adzuna.Job) ([]adzuna.Job, error) {
	var matches []adzuna.Job
	for _, job := range jobs {
		ok, err := f.Match(job)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, job)
		}
	}
	return matches, nil
}

// environment builds the evaluation environment for a job. Field names
// match the adzuna.Job struct so expressions read naturally.
func environment(job adzuna.Job) map[string]any {
	env := map[string]any{
		"ID":           job.ID,
		"Title":        job.Title,
		"Description":  job.Description,
		"Created":      job.Created,
		"Company":      job.Company.DisplayName,
		"Category":     job.Category.Label,
		"CategoryTag":  job.Category.Tag,
		"SalaryMin":    job.SalaryMin,
		"SalaryMax":    job.SalaryMax,
		"Predicted":    bool(job.SalaryIsPredicted),
		"ContractType": string(job.ContractType),
		"ContractTime": string(job.ContractTime),
		"Area":         job.Location.Area,
		"Location":     job.Location.DisplayName,
		"Latitude":     job.Latitude,
		"Longitude":    job.Longitude,
	}
	for name, fn := range helperFunctions() {
		env[name] = fn
	}
	return env
}

// helperFunctions returns the helpers available inside expressions.
func helperFunctions() map[string]any {
	return map[string]any{
		"Contains": func(s, substr string) bool {
			return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
		},
		"HasArea": func(area []string, name string) bool {
			for _, a := range area {
				if strings.EqualFold(a, name) {
					return true
				}
			}
			return false
		},
	}
}
