// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"strings"
)

// Operation selects one of the three arithmetic operations.
type Operation int

const (
	// Addition computes a + b element-wise.
	Addition Operation = iota + 1
	// Subtraction computes a - b element-wise.
	Subtraction
	// Multiplication computes the matrix product a · b.
	Multiplication
)

// Operations lists the selectors in menu order.
var Operations = []Operation{Addition, Subtraction, Multiplication}

// operationAliases maps accepted spellings (lower-case) to selectors.
// Digits follow the interactive menu numbering.
var operationAliases = map[string]Operation{
	"1": Addition, "add": Addition, "addition": Addition,
	"2": Subtraction, "sub": Subtraction, "subtract": Subtraction, "subtraction": Subtraction,
	"3": Multiplication, "mul": Multiplication, "multiply": Multiplication, "multiplication": Multiplication,
}

// String returns the operation name used in result file names.
func (op Operation) String() string {
	switch op {
	case Addition:
		return "Addition"
	case Subtraction:
		return "Subtraction"
	case Multiplication:
		return "Multiplication"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// Valid reports whether op is one of the known selectors.
func (op Operation) Valid() bool {
	return op >= Addition && op <= Multiplication
}

// ParseOperation resolves a menu digit or an operation name.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseOperation(s string) (Operation, error) {
	if op, ok := operationAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}

	return 0, fmt.Errorf("ParseOperation(%q): %w", s, ErrUnknownOperation)
}

// Apply runs op with a as the left operand and b as the right one.
// For Subtraction the result is a - b.
func Apply(op Operation, a, b *Matrix) (*Matrix, error) {
	if err := validatePair("Apply", a, b); err != nil {
		return nil, err
	}
	switch op {
	case Addition:
		return a.Add(b)
	case Subtraction:
		return a.Subtract(b)
	case Multiplication:
		return a.Multiply(b)
	default:
		return nil, sparseErrorf("Apply", fmt.Errorf("%w: %s", ErrUnknownOperation, op))
	}
}
