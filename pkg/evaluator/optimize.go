package evaluator

import (
	"github.com/tampio-lang/tampio/internal/tree"
	"github.com/tampio-lang/tampio/pkg/morph"
)

// optimization is an arithmetic peephole rule: a call shape that, once every
// argument has reduced to a Num, can be computed directly instead of walking
// the Peano-encoded "$seuraaja" equations in the standard library — the
// reason Num exists at all alongside the purely symbolic Call
// representation (§9 of the spec, "efficient native integers").
type optimization struct {
	operator string
	headCase morph.Case
	argCases []morph.Case
	ok       func(args []int) bool
	fn       func(args []int) int
}

var optimizations = []optimization{
	{
		operator: "$seuraaja", headCase: morph.CaseNone, argCases: []morph.Case{morph.Genitive},
		ok: func(args []int) bool { return true },
		fn: func(args []int) int { return args[0] + 1 },
	},
	{
		operator: "$plus", headCase: morph.CaseNone, argCases: []morph.Case{morph.CaseNone, morph.CaseNone},
		ok: func(args []int) bool { return true },
		fn: func(args []int) int { return args[0] + args[1] },
	},
	{
		operator: "$miinus", headCase: morph.CaseNone, argCases: []morph.Case{morph.CaseNone, morph.CaseNone},
		ok: func(args []int) bool { return args[0] >= args[1] },
		fn: func(args []int) int { return args[0] - args[1] },
	},
	{
		operator: "$kerrottu", headCase: morph.Essive, argCases: []morph.Case{morph.CaseNone, morph.Adessive},
		ok: func(args []int) bool { return true },
		fn: func(args []int) int { return args[0] * args[1] },
	},
	{
		operator: "$jaettu", headCase: morph.Essive, argCases: []morph.Case{morph.CaseNone, morph.Adessive},
		ok: func(args []int) bool { return args[1] != 0 },
		fn: func(args []int) int { return args[0] / args[1] },
	},
	{
		operator: "$modulo", headCase: morph.CaseNone, argCases: []morph.Case{morph.CaseNone, morph.CaseNone},
		ok: func(args []int) bool { return args[1] != 0 },
		fn: func(args []int) int { return args[0] % args[1] },
	},
}

// matchOptimization reports whether t is fully-reduced-to-Num arguments of
// one of the arithmetic peephole shapes, and if so its result.
func matchOptimization(t tree.Node) (tree.Node, bool) {
	call, ok := t.(*tree.Call)
	if !ok {
		return nil, false
	}
	for _, opt := range optimizations {
		if !call.HeadNameIs(opt.operator, opt.headCase, opt.argCases) {
			continue
		}
		values := make([]int, len(call.Args))
		allNums := true
		for i, arg := range call.Args {
			n, isNum := arg.(*tree.Num)
			if !isNum {
				allNums = false

				break
			}
			values[i] = n.Value
		}
		if !allNums || !opt.ok(values) {
			continue
		}

		return tree.NewNum(opt.fn(values)), true
	}

	return nil, false
}
