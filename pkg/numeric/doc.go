// Package numeric provides the pure integer utilities behind the bfhl
// operations: a bounded Fibonacci generator, a primality test, and
// GCD/LCM with a left fold for reducing sequences.
//
// Inputs that arrive as JSON numbers are float64 values. Functions that accept
// float64 treat anything that is not a finite integer in range as a silent
// failure (empty sequence, false) instead of returning an error; callers rely
// on that and should not pre-validate.
//
// Results that can grow without bound (Fibonacci terms, LCM) use math/big so
// they stay exact.
package numeric
