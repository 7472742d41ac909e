package frame

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/riginding/dora/internal/abi"
	"github.com/riginding/dora/internal/ir"
	"github.com/riginding/dora/internal/types"
	"github.com/riginding/dora/internal/vmiface"
)

// Request bundles the arguments one Plan call needs. PlanAll fans a
// batch of these out across goroutines (spec.md §5: the planner "holds
// no mutable state of its own" and every input is either read-only or a
// VM-synchronized table, so planning distinct functions concurrently is
// always safe).
type Request struct {
	Fct          *vmiface.FctDesc
	Src          *ir.FunctionSource
	ClsTypeArgs  []types.Type
	FctTypeArgs  []types.Type
}

// PlanAll plans every request concurrently against the same tables and
// ABI config, returning results in the same order as reqs. The first
// panic raised by any Plan call (an invariant violation, per spec.md §7)
// is recovered, wrapped into an error carrying which request failed, and
// returned; every other request still runs to completion so a caller
// doing best-effort batch diagnostics doesn't lose completed work.
func PlanAll(tables *vmiface.Tables, cfg *abi.Config, reqs []Request) ([]*JitInfo, error) {
	results := make([]*JitInfo, len(reqs))

	var g errgroup.Group
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &PlanError{Index: i, Fct: req.Fct, Cause: r}
				}
			}()
			results[i] = Plan(tables, cfg, req.Fct, req.Src, req.ClsTypeArgs, req.FctTypeArgs)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// PlanError reports which batch entry's Plan call panicked, and with
// what, so a caller can log it without losing the rest of the batch's
// results.
type PlanError struct {
	Index int
	Fct   *vmiface.FctDesc
	Cause interface{}
}

func (e *PlanError) Error() string {
	var fctID vmiface.FctID
	if e.Fct != nil {
		fctID = e.Fct.ID
	}
	return fmt.Sprintf("frame: planning request %d (fct %d) panicked: %v", e.Index, fctID, e.Cause)
}
