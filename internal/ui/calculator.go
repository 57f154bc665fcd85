package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CalcOp is a pending arithmetic operator.
type CalcOp int

const (
	OpNone CalcOp = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

const calcDisplayMax = 9

// Calculator is a four-function desk calculator with eager
// left-to-right evaluation and a fixed-width display.
type Calculator struct {
	display string
	acc     float64
	pending CalcOp
	fresh   bool
}

func NewCalculator() Calculator {
	return Calculator{display: "0", fresh: true}
}

func (c *Calculator) Display() string { return c.display }

// InputDigit appends a digit to the display. A fresh display is
// replaced, a lone zero is replaced, and input past the display
// width is dropped.
func (c *Calculator) InputDigit(d rune) {
	if d < '0' || d > '9' {
		return
	}
	if c.fresh {
		c.display = string(d)
		c.fresh = false
		return
	}
	if len(c.display) >= calcDisplayMax {
		return
	}
	if c.display == "0" {
		c.display = string(d)
		return
	}
	c.display += string(d)
}

// InputDot starts a fractional part. At most one decimal point per
// operand.
func (c *Calculator) InputDot() {
	if c.fresh {
		c.display = "0."
		c.fresh = false
		return
	}
	if len(c.display) >= calcDisplayMax || strings.Contains(c.display, ".") {
		return
	}
	c.display += "."
}

// Operator folds the current operand into the accumulator with the
// previously pending operator, then arms op for the next operand.
func (c *Calculator) Operator(op CalcOp) {
	cur := c.operand()
	if c.pending != OpNone {
		result, ok := apply(c.pending, c.acc, cur)
		if !ok {
			c.display = "Error"
			c.pending = OpNone
			c.fresh = true
			return
		}
		c.display = formatResult(result)
		c.acc = result
	} else {
		c.acc = cur
	}
	c.pending = op
	c.fresh = true
}

// Equals applies the pending operator, if any, and clears it.
func (c *Calculator) Equals() {
	if c.pending == OpNone {
		return
	}
	cur := c.operand()
	result, ok := apply(c.pending, c.acc, cur)
	c.pending = OpNone
	c.fresh = true
	if !ok {
		c.display = "Error"
		return
	}
	c.display = formatResult(result)
	c.acc = result
}

// Clear resets the calculator to its initial state.
func (c *Calculator) Clear() {
	*c = NewCalculator()
}

func (c *Calculator) operand() float64 {
	v, err := strconv.ParseFloat(c.display, 64)
	if err != nil {
		return 0
	}
	return v
}

func apply(op CalcOp, a, b float64) (float64, bool) {
	switch op {
	case OpAdd:
		return a + b, true
	case OpSub:
		return a - b, true
	case OpMul:
		return a * b, true
	case OpDiv:
		if b == 0 {
			return 0, false
		}
		return a / b, true
	}
	return b, true
}

// formatResult renders a value for the display: integral results as
// plain integers, everything else with nine decimals and trailing
// zeros trimmed.
func formatResult(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "Error"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	s := fmt.Sprintf("%.9f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
