package main

import "fmt"

//// Integer Operations

// Every operator pops two operands: t1 from the top of the stack, then t2
// beneath it, and pushes one Number. Since t2 was pushed first, it is the
// left hand side, so that "a b -" reads as "a - b".

// Symbol   Name       Function
//    +     add        push v2 + v1
//    -     subtract   push v2 - v1
//    /     divide     push v2 / v1, truncated toward zero
//    *     multiply   push v2 * v1
//
// Results wrap on overflow, as Go int arithmetic does.
var opTable = [...]func(v1, v2 int) (int, error){
	Add:      func(v1, v2 int) (int, error) { return v2 + v1, nil },
	Subtract: func(v1, v2 int) (int, error) { return v2 - v1, nil },
	Divide:   div,
	Multiply: func(v1, v2 int) (int, error) { return v2 * v1, nil },
}

// Division by zero is an error rather than a runtime panic.
func div(v1, v2 int) (int, error) {
	if v1 == 0 {
		return 0, ErrDivisionByZero
	}
	return v2 / v1, nil
}

func (ev *Evaluator) binaryOp(op OperatorKind) error {
	if op == 0 || int(op) >= len(opTable) {
		return fmt.Errorf("%w: %v", ErrInvalidToken, op)
	}

	t1, err := ev.pop()
	if err != nil {
		return err
	}
	t2, err := ev.pop()
	if err != nil {
		return err
	}

	if t1.Kind != KindNumber || t2.Kind != KindNumber {
		return fmt.Errorf("%w: %#v %#v %v", ErrInvalidOperand, t2, t1, op)
	}

	val, err := opTable[op](t1.Num, t2.Num)
	if err != nil {
		return fmt.Errorf("%v %v %v: %w", t2, t1, op, err)
	}
	ev.push(Number(val))
	return nil
}
