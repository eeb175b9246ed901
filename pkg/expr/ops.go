package expr

import "math"

// BigValue is the finite sentinel returned by protected operators in
// place of overflow or division by zero.
const BigValue = 1e10

// tiny is the magnitude below which a divisor or log argument is
// treated as zero.
const tiny = 1e-12

// Clamp contains a raw arithmetic result: NaN becomes 0 and the
// magnitude is capped at BigValue.
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v > BigValue {
		return BigValue
	}
	if v < -BigValue {
		return -BigValue
	}
	return v
}

// UnaryOp identifies a unary operator kind.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpSqrt
	OpExp
	OpLog
	OpSin
	OpCos
	OpErf
	OpAbs
)

// BinaryOp identifies a binary operator kind.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// Rendering priorities. Leaves and function-call forms use leafPriority
// so they are never parenthesized as children.
const leafPriority = 100

type unaryInfo struct {
	symbol string
	latex  string
	fn     func(float64) float64
}

type binaryInfo struct {
	symbol   string
	priority int
	fn       func(a, b float64) float64
}

// The operator tables are the single source of truth for symbols,
// functions and priorities; nodes carry only the op kind, which keeps
// them cheaply comparable and hashable.
var unaryTable = [...]unaryInfo{
	OpNeg:  {"-", "-", func(x float64) float64 { return -x }},
	OpSqrt: {"sqrt", `\sqrt`, func(x float64) float64 { return math.Sqrt(math.Abs(x)) }},
	OpExp:  {"exp", `\exp`, protectedExp},
	OpLog:  {"log", `\ln`, protectedLog},
	OpSin:  {"sin", `\sin`, math.Sin},
	OpCos:  {"cos", `\cos`, math.Cos},
	OpErf:  {"erf", `\operatorname{erf}`, math.Erf},
	OpAbs:  {"abs", `\left|`, math.Abs},
}

var binaryTable = [...]binaryInfo{
	OpAdd: {"+", 1, func(a, b float64) float64 { return Clamp(a + b) }},
	OpSub: {"-", 1, func(a, b float64) float64 { return Clamp(a - b) }},
	OpMul: {"*", 2, func(a, b float64) float64 { return Clamp(a * b) }},
	OpDiv: {"/", 2, protectedDiv},
	OpPow: {"^", 3, func(a, b float64) float64 { return Clamp(math.Pow(a, b)) }},
}

// protectedExp applies the exponential with a ceiling so large
// arguments yield the sentinel instead of +Inf.
func protectedExp(x float64) float64 {
	v := math.Exp(x)
	if v > BigValue {
		return BigValue
	}
	return v
}

// protectedLog takes the log of the magnitude, with a floor to keep
// the argument away from zero.
func protectedLog(x float64) float64 {
	return Clamp(math.Log(math.Max(math.Abs(x), tiny)))
}

// protectedDiv returns a signed sentinel for a near-zero divisor.
func protectedDiv(a, b float64) float64 {
	if math.Abs(b) < tiny {
		if a < 0 {
			return -BigValue
		}
		return BigValue
	}
	return Clamp(a / b)
}

// ApplyUnary evaluates op on x through the protected operator table.
func ApplyUnary(op UnaryOp, x float64) float64 {
	return Clamp(unaryTable[op].fn(x))
}

// ApplyBinary evaluates op on (a, b) through the protected table.
func ApplyBinary(op BinaryOp, a, b float64) float64 {
	return Clamp(binaryTable[op].fn(a, b))
}

// UnarySymbol returns the display symbol for op.
func UnarySymbol(op UnaryOp) string { return unaryTable[op].symbol }

// BinarySymbol returns the display symbol for op.
func BinarySymbol(op BinaryOp) string { return binaryTable[op].symbol }

// BinaryPriority returns the rendering priority for op.
func BinaryPriority(op BinaryOp) int { return binaryTable[op].priority }

// AllUnaryOps and AllBinaryOps enumerate the closed operator sets, for
// operator-set construction in the genetics package.
func AllUnaryOps() []UnaryOp {
	return []UnaryOp{OpNeg, OpSqrt, OpExp, OpLog, OpSin, OpCos, OpErf, OpAbs}
}

func AllBinaryOps() []BinaryOp {
	return []BinaryOp{OpAdd, OpSub, OpMul, OpDiv, OpPow}
}

func (v *Var) Priority() int        { return leafPriority }
func (c *Const) Priority() int      { return leafPriority }
func (n *NamedConst) Priority() int { return leafPriority }
func (t *Table) Priority() int      { return leafPriority }
func (u *Unary) Priority() int      { return leafPriority }
func (b *Bound) Priority() int      { return leafPriority }
func (b *Binary) Priority() int     { return binaryTable[b.Op].priority }
