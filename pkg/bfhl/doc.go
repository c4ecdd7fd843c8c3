// Package bfhl implements the /bfhl request dispatcher and its HTTP handlers.
//
// A request body is a JSON object with exactly one key naming the
// operation:
//
//	{"fibonacci": 10}        first 10 Fibonacci numbers
//	{"prime": [2, 3, 4, 5]}  the prime elements, in order
//	{"lcm": [4, 6, 8]}       least common multiple
//	{"hcf": [12, 18]}        highest common factor
//	{"AI": "Capital of France?"}  one-word answer from the AI completer
//
// Values are coerced loosely: "7", [7] and 7 are all the number 7, and
// non-integral elements are dropped rather than rejected. A fibonacci count
// that is not a non-negative integer yields an empty sequence.
//
// Every response is an envelope:
//
//	{"is_success": true,  "official_email": "...", "data": ...}
//	{"is_success": false, "official_email": "...", "message": "..."}
//
// Failures and their statuses:
//
//	400  Exactly one key is allowed
//	400  Invalid input format
//	405  Method not allowed
//	413  Request body too large
//	429  AI quota exceeded
//	500  Gemini API key not configured
//	500  AI service error
//	500  Internal Server Error
//
// Integer results are exact: Fibonacci terms and lcm/hcf results are
// *big.Int and encode as plain JSON numbers. The reduction of an empty
// list is 0 for both lcm and hcf.
package bfhl
