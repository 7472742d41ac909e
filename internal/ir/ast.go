// Package ir defines the minimal typed-AST surface the frame layout
// planner walks: statements, expressions, and the five node-id-keyed
// lookup maps the type checker is documented (spec.md §3, §6) to have
// already populated by the time planning starts. Parsing and semantic
// checking that produce this tree are out of scope (spec.md §1) — this
// package only names the shape the planner consumes.
package ir

// NodeID identifies one AST node, stable for the lifetime of a single
// compilation of one function.
type NodeID int64

// VarID identifies one local variable, parameter, or receiver slot in a
// function's variable table.
type VarID int32

// Node is any AST node.
type Node interface {
	ID() NodeID
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmt()
}

// Expr is an expression node.
type Expr interface {
	Node
	expr()
}

type base struct{ id NodeID }

func (b base) ID() NodeID { return b.id }

// NewID is a convenience constructor for tests that build ASTs by hand.
func NewID(n int64) NodeID { return NodeID(n) }

// --- Statements ---

// LocalDecl declares one local variable (`let x = ...`). Init is the
// optional initializer expression.
type LocalDecl struct {
	base
	Var  VarID
	Init Expr
}

func NewLocalDecl(id NodeID, v VarID, init Expr) *LocalDecl { return &LocalDecl{base{id}, v, init} }
func (*LocalDecl) stmt()                                    {}

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	base
	X Expr
}

func NewExprStmt(id NodeID, x Expr) *ExprStmt { return &ExprStmt{base{id}, x} }
func (*ExprStmt) stmt()                       {}

// Block is a sequence of statements; function bodies and nested blocks
// are both represented this way.
type Block struct {
	base
	Stmts []Stmt
}

func NewBlock(id NodeID, stmts ...Stmt) *Block { return &Block{base{id}, stmts} }
func (*Block) stmt()                           {}

// CatchClause binds a caught exception to a variable and runs a body.
type CatchClause struct {
	Var  VarID
	Body Stmt
}

// FinallyClause is the optional cleanup block of a do/catch/finally.
type FinallyClause struct {
	Body Stmt
}

// DoCatchFinally is `do { ... } catch C(v) { ... } finally { ... }`.
type DoCatchFinally struct {
	base
	Body    Stmt
	Catches []CatchClause
	Finally *FinallyClause
}

func NewDoCatchFinally(id NodeID, body Stmt, catches []CatchClause, finally *FinallyClause) *DoCatchFinally {
	return &DoCatchFinally{base{id}, body, catches, finally}
}
func (*DoCatchFinally) stmt() {}

// For is `for binder in expr { body }`.
type For struct {
	base
	Binder VarID
	Iter   Expr
	Body   Stmt
}

func NewFor(id NodeID, binder VarID, iter Expr, body Stmt) *For {
	return &For{base{id}, binder, iter, body}
}
func (*For) stmt() {}

// --- Expressions ---

// Ident is an identifier reference, resolved elsewhere via NodeIdent.
type Ident struct{ base }

func NewIdent(id NodeID) *Ident { return &Ident{base{id}} }
func (*Ident) expr()            {}

// Literal is any literal constant; its exact value never matters to the
// planner, only its static type (via FunctionSource.NodeType).
type Literal struct{ base }

func NewLiteral(id NodeID) *Literal { return &Literal{base{id}} }
func (*Literal) expr()              {}

// Super is the lexical `super` receiver expression, used only to detect
// super-constructor calls (spec.md §4.1 "super_call").
type Super struct{ base }

func NewSuper(id NodeID) *Super { return &Super{base{id}} }
func (*Super) expr()            {}

// FieldAccess is `expr.field`. Whether a bare identifier binds a field
// or a local is not recorded here but in FunctionSource.NodeIdent, the
// type checker's per-node identifier-resolution output.
type FieldAccess struct {
	base
	Object Expr
}

func NewFieldAccess(id NodeID, object Expr) *FieldAccess { return &FieldAccess{base{id}, object} }
func (*FieldAccess) expr()                               {}

// Call is any call expression; the concrete call kind is resolved
// separately via FunctionSource.NodeCall. Object is the method
// receiver / callable value when the call kind needs one; it is nil for
// free-function and trait-static calls.
type Call struct {
	base
	Object Expr
	Args   []Expr
}

func NewCall(id NodeID, object Expr, args ...Expr) *Call { return &Call{base{id}, object, args} }
func (*Call) expr()                                      {}

// Delegation is a super-constructor delegation call (`super(...)`).
type Delegation struct {
	base
	Args []Expr
}

func NewDelegation(id NodeID, args ...Expr) *Delegation { return &Delegation{base{id}, args} }
func (*Delegation) expr()                               {}

// BinOp is a binary operator.
type BinOp uint8

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinCmp
	BinIs
	BinIsNot
	BinOr
	BinAnd
	BinAssign
	BinAddAssign
	BinIndexAssign // `recv[idx] = value`, lowered from a Call LHS
)

func (op BinOp) IsAnyAssign() bool {
	return op == BinAssign || op == BinAddAssign || op == BinIndexAssign
}

// Bin is a binary expression, including any-assignment forms.
type Bin struct {
	base
	Op  BinOp
	LHS Expr
	RHS Expr
	// IndexCall is set instead of LHS when Op == BinIndexAssign: the
	// compiler-of-record's lowering of `a[i] = v` into a three-argument
	// call on the indexing Call's object and first argument.
	IndexCall *Call
}

func NewBin(id NodeID, op BinOp, lhs, rhs Expr) *Bin { return &Bin{base: base{id}, Op: op, LHS: lhs, RHS: rhs} }
func NewIndexAssign(id NodeID, call *Call, rhs Expr) *Bin {
	return &Bin{base: base{id}, Op: BinIndexAssign, IndexCall: call, RHS: rhs}
}
func (*Bin) expr() {}

// UnOp is a unary operator.
type UnOp uint8

const (
	UnNeg UnOp = iota
	UnNot
)

// Un is a unary expression.
type Un struct {
	base
	Op   UnOp
	Expr Expr
}

func NewUn(id NodeID, op UnOp, x Expr) *Un { return &Un{base{id}, op, x} }
func (*Un) expr()                          {}

// Cast is `expr as T` or `expr is T`.
type Cast struct {
	base
	Object Expr
	IsIs   bool
}

func NewCast(id NodeID, object Expr, isIs bool) *Cast { return &Cast{base{id}, object, isIs} }
func (*Cast) expr()                                   {}

// TemplatePart is one piece of a string template literal.
type TemplatePart struct {
	// LitStr is true for a literal string segment (appended verbatim).
	LitStr bool
	// X is the embedded expression for a non-literal part.
	X Expr
}

// Template is a string template (`"a${b}c"`).
type Template struct {
	base
	Parts []TemplatePart
}

func NewTemplate(id NodeID, parts ...TemplatePart) *Template { return &Template{base{id}, parts} }
func (*Template) expr()                                      {}
