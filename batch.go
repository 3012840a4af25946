package rpn

import (
	"context"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of evaluating one expression of a batch.
type Result struct {
	// Src is the infix expression.
	Src string
	// Expr is the compiled expression, or nil if Src failed to parse.
	Expr *Expr
	// Value is the result of evaluation. It is meaningful only if Err is nil.
	Value float64
	// Big is the arbitrary-precision result when the batch was evaluated
	// with a nonzero precision.
	Big *big.Float
	// Err is the error from parsing or evaluating Src.
	Err error
}

// BatchOption configures EvalAll.
type BatchOption interface {
	batchOption(*batch)
}

type (
	workersopt int
	precopt    uint
)

func (o workersopt) batchOption(b *batch) { b.workers = int(o) }
func (o precopt) batchOption(b *batch)    { b.prec = uint(o) }

// Workers sets the maximum number of expressions evaluated at once. Values
// less than 1 select runtime.GOMAXPROCS(0).
func Workers(n int) BatchOption {
	return workersopt(n)
}

// Prec makes EvalAll evaluate with big.Float values of the given precision in
// bits, setting Result.Big in addition to Result.Value.
func Prec(prec uint) BatchOption {
	return precopt(prec)
}

type batch struct {
	workers int
	prec    uint
}

// EvalAll parses and evaluates independent expressions concurrently. Each
// result is at the same index as its source. Errors in individual expressions
// are reported in their results and do not stop the batch; the returned error
// is non-nil only if ctx ends before every expression is evaluated, in which
// case unevaluated results carry ctx's error.
func EvalAll(ctx context.Context, srcs []string, opts ...BatchOption) ([]Result, error) {
	var b batch
	for _, opt := range opts {
		if opt != nil {
			opt.batchOption(&b)
		}
	}
	if b.workers < 1 {
		b.workers = runtime.GOMAXPROCS(0)
	}
	res := make([]Result, len(srcs))
	for i, src := range srcs {
		res[i].Src = src
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	var skipped error
	for i := range res {
		r := &res[i]
		if err := gctx.Err(); err != nil {
			r.Err = err
			skipped = err
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				r.Err = err
				return err
			}
			b.eval(r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	return res, skipped
}

// eval fills in a result from its source.
func (b *batch) eval(r *Result) {
	r.Expr, r.Err = Parse(r.Src)
	if r.Err != nil {
		return
	}
	r.Value, r.Err = r.Expr.Eval()
	if r.Err != nil || b.prec == 0 {
		return
	}
	r.Big, r.Err = r.Expr.EvalBig(b.prec)
}
