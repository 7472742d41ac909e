package frame_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riginding/dora/internal/abi"
	"github.com/riginding/dora/internal/frame"
	"github.com/riginding/dora/internal/ir"
	"github.com/riginding/dora/internal/types"
	"github.com/riginding/dora/internal/vmiface"
)

func TestPlanAllMatchesSequentialPlan(t *testing.T) {
	tables := &vmiface.Tables{Fcts: noFct}
	cfg := abi.SysVAMD64()

	var reqs []frame.Request
	var want []*frame.JitInfo
	for i := 0; i < 20; i++ {
		fct, src, _ := newParamFct(types.Bool, types.Int)
		reqs = append(reqs, frame.Request{Fct: fct, Src: src})
		want = append(want, frame.Plan(tables, cfg, fct, src, nil, nil))
	}

	got, err := frame.PlanAll(tables, cfg, reqs)
	require.NoError(t, err)
	require.Len(t, got, len(want))

	opt := cmp.AllowUnexported(types.Primitive{})
	for i := range want {
		assert.True(t, cmp.Equal(want[i], got[i], opt), "request %d differs: %s", i, cmp.Diff(want[i], got[i], opt))
	}
}

func TestPlanAllCollectsPanicWithoutLosingOtherResults(t *testing.T) {
	tables := &vmiface.Tables{Fcts: noFct}
	cfg := abi.SysVAMD64()

	goodFct, goodSrc, _ := newParamFct(types.Int)

	badFct := freeFct()
	badBody := ir.NewBlock(ir.NewID(0), ir.NewLocalDecl(ir.NewID(1), ir.VarID(99), nil))
	badSrc := ir.NewFunctionSource(badBody)

	reqs := []frame.Request{
		{Fct: goodFct, Src: goodSrc},
		{Fct: badFct, Src: badSrc},
	}

	got, err := frame.PlanAll(tables, cfg, reqs)
	require.Error(t, err)
	require.Len(t, got, 2)
	assert.NotNil(t, got[0])
}
