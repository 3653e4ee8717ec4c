package scaffold

import (
	"fmt"
	"strings"
	"text/template"
)

// solutionTemplate is the fixed Rust solver skeleton, parameterized only by
// the day number. Both parts start unimplemented and self-register through
// the distributed SOLVERS slice.
const solutionTemplate = `use advent_of_code_data as aoc;
use yuletide as yt;

use linkme::distributed_slice;

use crate::SOLVERS;

#[distributed_slice(SOLVERS)]
static SOLVER: yt::SolverAutoRegister = yt::SolverAutoRegister {
    modpath: std::module_path!(),
    part_one: yt::SolverPart {
        func: day_{{.Day}}_1,
        examples: &[/*yt::Example {
            input: "",
            expected: aoc::Answer::Int(0),
        }*/],
    },
    part_two: yt::SolverPart {
        func: day_{{.Day}}_2,
        examples: &[/*yt::Example {
            input: "",
            expected: aoc::Answer::Int(0),
        }*/],
    },
};

pub fn day_{{.Day}}_1(args: &yt::SolverArgs) -> yt::Result<aoc::Answer> {
    Err(yt::SolverError::NotFinished)
}

pub fn day_{{.Day}}_2(_args: &yt::SolverArgs) -> yt::Result<aoc::Answer> {
    Err(yt::SolverError::NotFinished)
}
`

var solutionTmpl = template.Must(template.New("solution").Parse(solutionTemplate))

// RenderSolution produces the content of a new solution file for the given
// day.
func RenderSolution(day int) (string, error) {
	var b strings.Builder
	if err := solutionTmpl.Execute(&b, struct{ Day int }{Day: day}); err != nil {
		return "", fmt.Errorf("failed to render solution template: %w", err)
	}
	return b.String(), nil
}
