package demo

import (
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/ib-77/fallible/pkg/demoerr"
	"github.com/ib-77/fallible/pkg/numfile"
	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/chain"
	"github.com/ib-77/fallible/pkg/rop/solo"
)

const (
	MsgEven        = "数字不能是偶数"
	MsgDivByZero   = "除数不能为 0"
	MsgNotANumber  = "不是数字"
	MsgParseFailed = "解析失败: "
)

// ParseInt parses trimmed text as an int, reporting a parse failure.
func ParseInt(s string) rop.Result[int, *demoerr.Error] {
	return solo.Lift[int](demoerr.FromParse)(strconv.Atoi(strings.TrimSpace(s)))
}

// ParseOdd parses s and rejects even numbers.
func ParseOdd(s string) rop.Result[int, *demoerr.Error] {
	return solo.AndValidate(ParseInt(s), requireOdd)
}

func requireOdd(n int) (bool, *demoerr.Error) {
	if n%2 == 0 {
		return false, demoerr.Rule(MsgEven)
	}
	return true, nil
}

// Propagated is what the propagation section learns before checking the rule.
type Propagated struct {
	Number       int
	SourceLength int
}

// Progress is told about each step of Propagate as soon as it succeeds.
// Nil fields are skipped.
type Progress struct {
	Parsed func(n int)
	Read   func(p Propagated)
}

// Propagate parses input, reads sourcePath and then enforces the odd-number
// rule. The first failing step ends the pipeline.
func Propagate(fsys billy.Basic, input, sourcePath string, progress Progress) rop.Result[Propagated, *demoerr.Error] {
	parsed := solo.Tee(ParseInt(input), func(n int) {
		if progress.Parsed != nil {
			progress.Parsed(n)
		}
	})

	withSource := solo.AndThen(parsed, func(n int) rop.Result[Propagated, *demoerr.Error] {
		return solo.Map(numfile.ReadText(fsys, sourcePath), func(text string) Propagated {
			return Propagated{Number: n, SourceLength: len(text)}
		})
	})
	withSource = solo.Tee(withSource, func(p Propagated) {
		if progress.Read != nil {
			progress.Read(p)
		}
	})

	return solo.AndValidate(withSource, func(p Propagated) (bool, *demoerr.Error) {
		return requireOdd(p.Number)
	})
}

// Doubled parses s and doubles the value.
func Doubled(s string) rop.Result[int, error] {
	return solo.Map(rop.FromTuple(strconv.Atoi(s)), func(v int) int { return v * 2 })
}

// ParseDescribed parses s, turning the failure into a readable message.
func ParseDescribed(s string) rop.Result[int, string] {
	return solo.MapErr(rop.FromTuple(strconv.Atoi(s)), func(err error) string {
		return MsgParseFailed + err.Error()
	})
}

func Reciprocal(x float64) rop.Result[float64, string] {
	if x == 0 {
		return rop.Fail[float64](MsgDivByZero)
	}
	return rop.Success[float64, string](1 / x)
}

// ReciprocalOf parses s as a float and returns its reciprocal.
func ReciprocalOf(s string) rop.Result[float64, string] {
	parsed := chain.MapErr(chain.Start(rop.FromTuple(strconv.ParseFloat(s, 64))), func(error) string {
		return MsgNotANumber
	})
	return chain.Then(parsed, Reciprocal).Result()
}
