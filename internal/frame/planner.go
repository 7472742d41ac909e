package frame

import (
	"fmt"

	"github.com/riginding/dora/internal/abi"
	"github.com/riginding/dora/internal/ir"
	"github.com/riginding/dora/internal/types"
	"github.com/riginding/dora/internal/vmiface"
)

// Plan runs the frame layout planner over one type-checked function and
// returns its JitInfo. clsTypeArgs/fctTypeArgs are the concrete generic
// arguments this particular specialization of fct was instantiated with
// (spec.md §4.1's "generic specialization is applied twice" — once here,
// at the call site that picked these arguments, and once more inside
// this function whenever it specializes a callee's own parameter types).
//
// Grounded on info.rs's top-level `generate` function.
func Plan(tables *vmiface.Tables, cfg *abi.Config, fct *vmiface.FctDesc, src *ir.FunctionSource, clsTypeArgs, fctTypeArgs []types.Type) *JitInfo {
	for _, t := range clsTypeArgs {
		if !t.IsConcrete() {
			panic("frame: class type argument is not concrete")
		}
	}
	for _, t := range fctTypeArgs {
		if !t.IsConcrete() {
			panic("frame: function type argument is not concrete")
		}
	}

	p := &planner{
		tables:      tables,
		cfg:         cfg,
		fct:         fct,
		src:         src,
		info:        newJitInfo(),
		leaf:        true,
		paramOffset: cfg.ParamOffset,
		clsTypeArgs: clsTypeArgs,
		fctTypeArgs: fctTypeArgs,
	}
	if fct.HasSelf() {
		p.paramRegIdx = 1
	}
	p.generate()
	return p.info
}

// planner is the frame layout planner's working state for one function,
// grounded on info.rs's InfoGenerator.
type planner struct {
	tables *vmiface.Tables
	cfg    *abi.Config
	fct    *vmiface.FctDesc
	src    *ir.FunctionSource
	info   *JitInfo

	stackSize     int64
	ehReturnValue *int64
	paramOffset   int64
	leaf          bool

	paramRegIdx  int
	paramFRegIdx int

	clsTypeArgs []types.Type
	fctTypeArgs []types.Type
}

func (p *planner) generate() {
	if p.fct.HasSelf() {
		p.reserveStackForSelf()
	}

	for _, id := range p.src.Params {
		p.visitParam(id)
	}
	p.visitStmt(p.src.Body)

	p.info.StackSize = abi.AlignUp(p.stackSize, abi.StackAlignment)
	p.info.Leaf = p.leaf
	p.info.EHReturnValue = p.ehReturnValue
}

func (p *planner) reserveStackForSelf() {
	offset := p.reserveStackSlot(p.fct.Receiver)
	p.info.VarOffsets[p.src.Self] = offset
	p.info.VarTypes[p.src.Self] = p.fct.Receiver
}

func (p *planner) visitParam(id ir.VarID) {
	v := p.src.Var(id)
	ty := p.specializeType(v.DeclaredType)
	p.info.VarTypes[id] = ty

	switch {
	case ty.IsFloat() && p.paramFRegIdx < len(p.cfg.FRegParams):
		p.reserveStackForVar(id)
		p.paramFRegIdx++
	case !ty.IsFloat() && p.paramRegIdx < len(p.cfg.RegParams):
		p.reserveStackForVar(id)
		p.paramRegIdx++
	default:
		p.info.VarOffsets[id] = p.paramOffset
		p.paramOffset = p.cfg.NextParamOffset(p.paramOffset, ty.Size())
	}
}

func (p *planner) reserveStackForVar(id ir.VarID) int64 {
	v := p.src.Var(id)
	ty := p.specializeType(v.DeclaredType)
	offset := p.reserveStackSlot(ty)
	p.info.VarOffsets[id] = offset
	p.info.VarTypes[id] = ty
	return offset
}

func (p *planner) reserveStackSlot(ty types.Type) int64 {
	var size, align int64
	if ty.IsNil() {
		size, align = p.cfg.PointerWidth, p.cfg.PointerWidth
	} else {
		size, align = ty.Size(), ty.Alignment()
	}
	p.stackSize = abi.AlignUp(p.stackSize, align) + size
	return -p.stackSize
}

func (p *planner) specializeType(ty types.Type) types.Type {
	result := types.Substitute(ty, p.clsTypeArgs, p.fctTypeArgs)
	if !result.IsConcrete() {
		panic(fmt.Sprintf("frame: type %v did not specialize to something concrete", ty))
	}
	return result
}

// ty returns a node's checked type, fully specialized for this planning
// pass.
func (p *planner) ty(n ir.Node) types.Type {
	return p.specializeType(p.src.TypeOf(n))
}

// --- statement traversal ---

func (p *planner) visitStmt(s ir.Stmt) {
	switch st := s.(type) {
	case *ir.LocalDecl:
		p.reserveStackForVar(st.Var)
	case *ir.DoCatchFinally:
		p.reserveStmtDo(st)
	case *ir.For:
		p.reserveStmtFor(st)
	}
	p.walkStmtChildren(s)
}

func (p *planner) walkStmtChildren(s ir.Stmt) {
	switch st := s.(type) {
	case *ir.Block:
		for _, c := range st.Stmts {
			p.visitStmt(c)
		}
	case *ir.ExprStmt:
		p.visitExpr(st.X)
	case *ir.LocalDecl:
		if st.Init != nil {
			p.visitExpr(st.Init)
		}
	case *ir.DoCatchFinally:
		p.visitStmt(st.Body)
		for _, c := range st.Catches {
			p.visitStmt(c.Body)
		}
		if st.Finally != nil {
			p.visitStmt(st.Finally.Body)
		}
	case *ir.For:
		p.visitExpr(st.Iter)
		p.visitStmt(st.Body)
	}
}

func (p *planner) reserveStmtDo(d *ir.DoCatchFinally) {
	ret := p.specializeType(p.fct.Return)
	if !ret.IsUnit() && p.ehReturnValue == nil {
		off := p.reserveStackSlot(ret)
		p.ehReturnValue = &off
	}

	for _, c := range d.Catches {
		p.reserveStackForVar(c.Var)
	}

	if d.Finally != nil {
		off := p.reserveStackSlot(types.Ptr)
		p.info.NodeOffsets[d.ID()] = off
	}
}

func (p *planner) reserveStmtFor(f *ir.For) {
	info := p.src.NodeFor[f.ID()]

	p.reserveStackForVar(f.Binder)
	offset := p.reserveStackSlot(info.IteratorType)
	p.info.NodeOffsets[f.ID()] = offset

	objectType := p.ty(f.Iter)
	mkSite := p.buildCallSite(
		ir.MethodKind{ReceiverType: objectType, Fct: info.MakeIterator},
		info.MakeIterator,
		[]Arg{ExprArg{Expr: f.Iter}},
	)
	hnSite := p.buildCallSite(
		ir.MethodKind{ReceiverType: info.IteratorType, Fct: info.HasNext},
		info.HasNext,
		[]Arg{StackArg{Source: offset}},
	)
	nextSite := p.buildCallSite(
		ir.MethodKind{ReceiverType: info.IteratorType, Fct: info.Next},
		info.Next,
		[]Arg{StackArg{Source: offset}},
	)

	p.info.Fors[f.ID()] = ForInfo{MakeIterator: mkSite, HasNext: hnSite, Next: nextSite}
}

// --- expression traversal ---

func (p *planner) visitExpr(e ir.Expr) {
	switch x := e.(type) {
	case *ir.Call:
		p.exprCall(x)
	case *ir.Delegation:
		p.exprDelegation(x)
	case *ir.Bin:
		p.exprBin(x)
	case *ir.Un:
		p.exprUn(x)
	case *ir.Cast:
		p.exprConv(x)
	case *ir.Template:
		p.exprTemplate(x)
	case *ir.FieldAccess:
		p.visitExpr(x.Object)
	}
	// Ident, Literal, Super are leaves: nothing further to plan.
}

func (p *planner) getIntrinsic(id ir.NodeID) (ir.IntrinsicOp, bool) {
	ck, ok := p.src.NodeCall[id]
	if !ok {
		return 0, false
	}
	ik, ok := ck.(ir.IntrinsicKind)
	return ik.Op, ok
}

func (p *planner) exprCall(call *ir.Call) {
	if op, ok := p.getIntrinsic(call.ID()); ok {
		p.planIntrinsicCall(call, op)
		return
	}

	ck, ok := p.src.NodeCall[call.ID()]
	if !ok {
		panic("frame: call node has no recorded call kind")
	}

	args := make([]Arg, 0, len(call.Args)+1)

	var fctID vmiface.FctID
	switch k := ck.(type) {
	case ir.CtorKind:
		args = append(args, SelfieArg{Type: p.ty(call)})
		fctID = k.Fct
	case ir.CtorNewKind:
		args = append(args, SelfieNewArg{Type: p.ty(call)})
		fctID = k.Fct
	case ir.MethodKind:
		args = append(args, ExprArg{Expr: call.Object})
		fctID = k.Fct
	case ir.FreeFctKind:
		fctID = k.Fct
	case ir.ExprKind:
		args = append(args, ExprArg{Expr: call.Object})
		fctID = k.Fct
	case ir.TraitStaticKind:
		var bound types.Type
		if k.Owner == types.OwnerFct {
			bound = p.fctTypeArgs[k.Index]
		} else {
			bound = p.clsTypeArgs[k.Index]
		}
		classID, ok := bound.ClassID()
		if !ok {
			panic("frame: trait-static call bound to a non-class type")
		}
		fctID = p.resolveImplMethod(classID, k.Trait, k.TraitFct)
	default:
		panic("frame: unsupported call kind (trait-object dispatch is out of scope)")
	}
	for _, a := range call.Args {
		args = append(args, ExprArg{Expr: a})
	}

	callee, ok := p.tables.Fcts.Fct(fctID)
	if !ok {
		panic("frame: unknown callee function")
	}

	calleeID := fctID
	if callee.IsDefinitionOnly() {
		mk, ok := ck.(ir.MethodKind)
		if !ok {
			panic("frame: definition-only call without a method receiver")
		}
		objectType := p.specializeType(mk.ReceiverType)
		classID, ok := objectType.ClassID()
		if !ok {
			panic("frame: trait method receiver is not a class type")
		}
		calleeID = p.resolveImplMethod(classID, callee.DefinitionTrait, fctID)

		// The impl resolved above may itself be a builtin intrinsic: the
		// type checker only pre-marks calls whose callee is known to be an
		// intrinsic syntactically, not ones that become one only after
		// resolving a definition-only trait method to its impl.
		resolved, ok := p.tables.Fcts.Fct(calleeID)
		if !ok {
			panic("frame: unknown resolved callee function")
		}
		if resolved.IsBuiltinIntrinsic() {
			p.planIntrinsicCall(call, resolved.Intrinsic)
			return
		}
	}

	p.universalCallWithCallee(call.ID(), args, calleeID)
}

// planIntrinsicCall records call as lowered inline rather than as a
// regular CallSite, reserving stack/register slots for whichever
// arguments survive lowering (spec.md §4.1). It is reached both when the
// type checker marks a call as an intrinsic up front and when a
// definition-only trait method resolves to one (see exprCall above).
func (p *planner) planIntrinsicCall(call *ir.Call, op ir.IntrinsicOp) {
	p.reserveArgsCall(call)
	p.info.Intrinsics[call.ID()] = op

	if op == ir.IntrinsicAssert {
		offset := p.reserveStackSlot(types.Ptr)
		errClassID := p.tables.WellKnown.ErrorClass
		errClass, ok := p.tables.Classes.Class(errClassID)
		if !ok {
			panic("frame: error class not found")
		}
		selfieOffset := p.reserveStackSlot(errClass.Type)
		args := []Arg{
			SelfieNewArg{Type: errClass.Type, Offset: selfieOffset},
			StackArg{Source: offset, Type: types.Ptr},
		}
		p.universalCallWithCallee(call.ID(), args, errClass.ConstructorID)
	}
}

func (p *planner) resolveImplMethod(classID vmiface.ClassID, traitID vmiface.TraitID, wantDefFct vmiface.FctID) vmiface.FctID {
	info, ok := p.tables.Classes.Class(classID)
	if !ok {
		panic("frame: unknown class in trait impl resolution")
	}
	for _, implID := range info.Impls {
		impl, ok := p.tables.Impls.Impl(implID)
		if !ok || impl.Trait != traitID {
			continue
		}
		for _, fctID := range impl.Methods {
			fd, ok := p.tables.Fcts.Fct(fctID)
			if ok && fd.HasImplFor && fd.ImplFor == wantDefFct {
				return fctID
			}
		}
	}
	panic("frame: no impl found for generic trait call")
}

func (p *planner) reserveArgsCall(call *ir.Call) {
	for _, a := range call.Args {
		p.visitExpr(a)
		p.reserveTempForExpr(a)
	}

	switch p.src.NodeCall[call.ID()].(type) {
	case ir.MethodKind, ir.ExprKind:
		p.visitExpr(call.Object)
		p.reserveTempForExpr(call.Object)
	}
}

func (p *planner) exprDelegation(del *ir.Delegation) {
	args := make([]Arg, 0, len(del.Args)+1)
	ty := p.ty(del)
	args = append(args, SelfieArg{Type: ty})
	for _, a := range del.Args {
		args = append(args, ExprArg{Expr: a})
	}
	p.universalCall(del.ID(), args)
}

func (p *planner) universalCall(id ir.NodeID, args []Arg) {
	ck, ok := p.src.NodeCall[id]
	if !ok {
		panic("frame: call node has no recorded call kind")
	}
	p.universalCallWithCallee(id, args, callKindFctID(ck))
}

func (p *planner) universalCallWithCallee(id ir.NodeID, args []Arg, calleeID vmiface.FctID) {
	ck, ok := p.src.NodeCall[id]
	if !ok {
		panic("frame: call node has no recorded call kind")
	}
	p.info.CallSites[id] = p.buildCallSite(ck, calleeID, args)
}

func callKindFctID(ck ir.CallKind) vmiface.FctID {
	switch k := ck.(type) {
	case ir.CtorKind:
		return k.Fct
	case ir.CtorNewKind:
		return k.Fct
	case ir.MethodKind:
		return k.Fct
	case ir.FreeFctKind:
		return k.Fct
	case ir.ExprKind:
		return k.Fct
	case ir.TraitStaticKind:
		return k.TraitFct
	default:
		panic("frame: call kind has no direct callee id")
	}
}

func (p *planner) buildCallSite(ck ir.CallKind, calleeID vmiface.FctID, args []Arg) CallSite {
	p.leaf = false

	callee, ok := p.tables.Fcts.Fct(calleeID)
	if !ok {
		panic("frame: unknown callee function")
	}

	outArgs, returnType, superCall := p.determineCallArgsAndTypes(ck, callee, args)
	classArgs, fctArgs := p.determineCallTypeParams(ck)
	argSize := p.determineCallStack(outArgs)

	return CallSite{
		Callee:        calleeID,
		Args:          outArgs,
		ArgSize:       argSize,
		ClassTypeArgs: classArgs,
		FctTypeArgs:   fctArgs,
		SuperCall:     superCall,
		ReturnType:    returnType,
	}
}

// callTypeArgs extracts the raw (not yet planner-specialized) class/fct
// type argument lists carried by a call kind, the substitution source
// "call-type specialization" (types.Substitute's first pass) consumes.
func callTypeArgs(ck ir.CallKind) (classArgs, fctArgs []types.Type) {
	switch k := ck.(type) {
	case ir.CtorKind:
		return k.ClassArgs, nil
	case ir.CtorNewKind:
		return k.ClassArgs, nil
	case ir.MethodKind:
		return k.ReceiverType.TypeParams(), k.FctArgs
	case ir.FreeFctKind:
		return k.ClassArgs, k.FctArgs
	case ir.ExprKind:
		return k.CalleeType.TypeParams(), nil
	default:
		return nil, nil
	}
}

func (p *planner) specializeForCallType(ck ir.CallKind, ty types.Type) types.Type {
	classArgs, fctArgs := callTypeArgs(ck)
	return types.Substitute(ty, classArgs, fctArgs)
}

func (p *planner) determineCallArgsAndTypes(ck ir.CallKind, callee vmiface.FctDesc, args []Arg) ([]Arg, types.Type, bool) {
	params := callee.ParamsWithSelf()
	if len(params) != len(args) {
		panic(fmt.Sprintf("frame: call supplies %d args, callee wants %d", len(args), len(params)))
	}

	superCall := false
	out := make([]Arg, len(args))
	for i, a := range args {
		ty := p.specializeType(p.specializeForCallType(ck, params[i]))
		offset := p.reserveStackSlot(ty)

		switch av := a.(type) {
		case ExprArg:
			if i == 0 {
				if _, ok := av.Expr.(*ir.Super); ok {
					superCall = true
				}
			}
			out[i] = ExprArg{Expr: av.Expr, Type: ty, Offset: offset}
		case StackArg:
			out[i] = StackArg{Source: av.Source, Type: ty, Offset: offset}
		case SelfieArg:
			out[i] = SelfieArg{Type: ty, Offset: offset}
		case SelfieNewArg:
			out[i] = SelfieNewArg{Type: ty, Offset: offset}
		}
	}

	returnType := p.specializeType(p.specializeForCallType(ck, callee.Return))
	return out, returnType, superCall
}

func (p *planner) determineCallTypeParams(ck ir.CallKind) (classArgs, fctArgs []types.Type) {
	switch k := ck.(type) {
	case ir.CtorKind:
		return k.ClassArgs, nil
	case ir.CtorNewKind:
		return k.ClassArgs, nil
	case ir.MethodKind:
		ty := p.specializeType(k.ReceiverType)
		return ty.TypeParams(), k.FctArgs
	case ir.FreeFctKind:
		return k.ClassArgs, k.FctArgs
	case ir.ExprKind:
		ty := p.specializeType(k.CalleeType)
		return ty.TypeParams(), nil
	default:
		return nil, nil
	}
}

func (p *planner) determineCallStack(args []Arg) int64 {
	var regArgs, fregArgs int64

	for _, a := range args {
		if ea, ok := a.(ExprArg); ok {
			p.visitExpr(ea.Expr)
		}
		if a.ArgType().IsFloat() {
			fregArgs++
		} else {
			regArgs++
		}
	}

	onStack := max0(regArgs-int64(len(p.cfg.RegParams))) + max0(fregArgs-int64(len(p.cfg.FRegParams)))
	return abi.AlignUp(p.cfg.PointerWidth*onStack, abi.StackAlignment)
}

func max0(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func (p *planner) exprAssign(bin *ir.Bin) {
	if bin.Op == ir.BinIndexAssign {
		object := bin.IndexCall.Object
		index := bin.IndexCall.Args[0]
		value := bin.RHS

		if op, ok := p.getIntrinsic(bin.ID()); ok {
			p.visitExpr(object)
			p.visitExpr(index)
			p.visitExpr(value)
			p.reserveTempForExpr(object)
			p.reserveTempForExpr(index)

			elemType := p.ty(object).TypeParams()[0]
			p.reserveTempForNodeWithType(value.ID(), elemType)
			p.info.Intrinsics[bin.ID()] = op
			return
		}

		args := []Arg{ExprArg{Expr: object}, ExprArg{Expr: index}, ExprArg{Expr: value}}
		p.universalCall(bin.ID(), args)
		return
	}

	if ident, ok := bin.LHS.(*ir.Ident); ok {
		p.visitExpr(bin.RHS)

		if res, ok := p.src.NodeIdent[ident.ID()]; ok {
			if _, isField := res.(ir.FieldIdent); isField {
				p.reserveTempForNodeWithType(ident.ID(), types.Ptr)
			}
		}
		return
	}

	fa, ok := bin.LHS.(*ir.FieldAccess)
	if !ok {
		panic("frame: assignment target is neither an index, identifier, nor field")
	}
	p.visitExpr(fa.Object)
	p.visitExpr(bin.RHS)
	p.reserveTempForExpr(fa.Object)
	p.reserveTempForExpr(bin.RHS)
}

func (p *planner) exprBin(bin *ir.Bin) {
	if bin.Op.IsAnyAssign() {
		p.exprAssign(bin)
		return
	}

	switch bin.Op {
	case ir.BinIs, ir.BinIsNot:
		p.visitExpr(bin.LHS)
		p.visitExpr(bin.RHS)
		p.reserveTempForNodeWithType(bin.LHS.ID(), types.Ptr)
		return
	case ir.BinOr, ir.BinAnd:
		p.visitExpr(bin.LHS)
		p.visitExpr(bin.RHS)
		return
	}

	if op, ok := p.getIntrinsic(bin.ID()); ok {
		p.visitExpr(bin.LHS)
		p.visitExpr(bin.RHS)
		p.reserveTempForExpr(bin.LHS)
		p.info.Intrinsics[bin.ID()] = op
		return
	}

	lhsTy := p.ty(bin.LHS)
	rhsTy := p.ty(bin.RHS)
	ck, ok := p.src.NodeCall[bin.ID()]
	if !ok {
		panic("frame: operator call node has no recorded call kind")
	}
	args := []Arg{ExprArg{Expr: bin.LHS, Type: lhsTy}, ExprArg{Expr: bin.RHS, Type: rhsTy}}
	p.universalCallWithCallee(bin.ID(), args, callKindFctID(ck))
}

func (p *planner) exprUn(un *ir.Un) {
	if op, ok := p.getIntrinsic(un.ID()); ok {
		p.visitExpr(un.Expr)
		p.info.Intrinsics[un.ID()] = op
		return
	}
	args := []Arg{ExprArg{Expr: un.Expr}}
	p.universalCall(un.ID(), args)
}

func (p *planner) exprConv(cast *ir.Cast) {
	p.visitExpr(cast.Object)
	conv := p.src.NodeConvert[cast.ID()]
	if !cast.IsIs && !conv.Valid {
		p.reserveTempForExpr(cast.Object)
	}
}

func (p *planner) exprTemplate(t *ir.Template) {
	stringBufferOffset := p.reserveStackSlot(types.Ptr)
	stringPartOffset := p.reserveStackSlot(types.Ptr)

	emptyFctID := p.tables.WellKnown.StringBufferEmpty
	newSite := p.buildCallSite(ir.FreeFctKind{Fct: emptyFctID}, emptyFctID, nil)

	bufClass, ok := p.tables.Classes.Class(p.tables.WellKnown.StringBufferClass)
	if !ok {
		panic("frame: string buffer class not found")
	}

	parts := make([]TemplatePartInfo, 0, len(t.Parts))
	for _, part := range t.Parts {
		var objOffset *int64
		var toStringSite *CallSite

		if !part.LitStr {
			p.visitExpr(part.X)
			ty := p.ty(part.X)

			classID, isClass := ty.ClassID()
			stringClassID := p.tables.WellKnown.StringClass
			if !isClass || classID != stringClassID {
				offset := p.reserveStackSlot(ty)
				objOffset = &offset

				if !isClass {
					panic("frame: string-template conversion of a non-class type is unsupported")
				}
				name := p.tables.WellKnown.StringableToStringName
				toStringID, ok := p.tables.Classes.FindTraitMethod(classID, p.tables.WellKnown.StringableTrait, name)
				if !ok {
					panic("frame: toString() method not found")
				}
				site := p.buildCallSite(
					ir.MethodKind{ReceiverType: ty, Fct: toStringID},
					toStringID,
					[]Arg{StackArg{Source: offset, Type: ty}},
				)
				toStringSite = &site
			}
		}

		appendFctID := p.tables.WellKnown.StringBufferAppend
		appendSite := p.buildCallSite(
			ir.MethodKind{ReceiverType: bufClass.Type, Fct: appendFctID},
			appendFctID,
			[]Arg{
				StackArg{Source: stringBufferOffset, Type: types.Ptr},
				StackArg{Source: stringPartOffset, Type: types.Ptr},
			},
		)

		parts = append(parts, TemplatePartInfo{ObjectOffset: objOffset, ToString: toStringSite, Append: appendSite})
	}

	toStrFctID := p.tables.WellKnown.StringBufferToString
	toStrSite := p.buildCallSite(
		ir.MethodKind{ReceiverType: bufClass.Type, Fct: toStrFctID},
		toStrFctID,
		[]Arg{StackArg{Source: stringBufferOffset, Type: types.Ptr}},
	)

	p.info.Templates[t.ID()] = TemplateInfo{
		StringBufferOffset: stringBufferOffset,
		StringPartOffset:   stringPartOffset,
		StringBufferNew:    newSite,
		Parts:              parts,
		StringBufferToStr:  toStrSite,
	}
}

func (p *planner) reserveTempForExpr(e ir.Expr) int64 {
	return p.reserveTempForNodeWithType(e.ID(), p.ty(e))
}

func (p *planner) reserveTempForNodeWithType(id ir.NodeID, ty types.Type) int64 {
	offset := p.reserveStackSlot(ty)
	p.info.Stores[id] = TempStore{Offset: offset, Type: ty}
	return offset
}
