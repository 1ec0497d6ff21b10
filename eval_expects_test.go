package main

// @generated from eval_test.go

//go:generate go run scripts/gen_eval_expects.go -- eval_test.go eval_expects_test.go

func withEvalOptions(opts ...EvalOption) func(evalTestCase) evalTestCase {
	return func(evt evalTestCase) evalTestCase {
		return evt.withOptions(opts...)
	}
}

func withEvalStack(values ...int) func(evalTestCase) evalTestCase {
	return func(evt evalTestCase) evalTestCase {
		return evt.withStack(values...)
	}
}

func withEvalStackTokens(toks ...Token) func(evalTestCase) evalTestCase {
	return func(evt evalTestCase) evalTestCase {
		return evt.withStackTokens(toks...)
	}
}

func withEvalWord(name string, body ...Token) func(evalTestCase) evalTestCase {
	return func(evt evalTestCase) evalTestCase {
		return evt.withWord(name, body...)
	}
}

func withEvalDefinition(toks ...Token) func(evalTestCase) evalTestCase {
	return func(evt evalTestCase) evalTestCase {
		return evt.withDefinition(toks...)
	}
}

func expectEvalError(err error) func(evalTestCase) evalTestCase {
	return func(evt evalTestCase) evalTestCase {
		return evt.expectError(err)
	}
}

func expectEvalResult(tok Token) func(evalTestCase) evalTestCase {
	return func(evt evalTestCase) evalTestCase {
		return evt.expectResult(tok)
	}
}

func expectEvalStack(values ...int) func(evalTestCase) evalTestCase {
	return func(evt evalTestCase) evalTestCase {
		return evt.expectStack(values...)
	}
}

func expectEvalStackTokens(toks ...Token) func(evalTestCase) evalTestCase {
	return func(evt evalTestCase) evalTestCase {
		return evt.expectStackTokens(toks...)
	}
}

func expectEvalMode(mode Mode) func(evalTestCase) evalTestCase {
	return func(evt evalTestCase) evalTestCase {
		return evt.expectMode(mode)
	}
}

func expectEvalDepth(depth int) func(evalTestCase) evalTestCase {
	return func(evt evalTestCase) evalTestCase {
		return evt.expectDepth(depth)
	}
}

func expectEvalDefinition(toks ...Token) func(evalTestCase) evalTestCase {
	return func(evt evalTestCase) evalTestCase {
		return evt.expectDefinition(toks...)
	}
}

func expectEvalWord(name string, body ...Token) func(evalTestCase) evalTestCase {
	return func(evt evalTestCase) evalTestCase {
		return evt.expectWord(name, body...)
	}
}

func expectEvalNoWord(name string) func(evalTestCase) evalTestCase {
	return func(evt evalTestCase) evalTestCase {
		return evt.expectNoWord(name)
	}
}
