/*
Package text reads and writes the line-oriented automaton description format.

	a b &        <- alphabet, must contain the epsilon marker &
	q0 q1 q2     <- states
	q0           <- initial state (exactly one token)
	q2           <- final states (may be empty)
	q0 a q1      <- one transition per line: origin label destination
	q1 b q2
	q0 & q1

Tokens are separated by any whitespace. A transition line with a token count
other than three is a format error. Blank lines are only tolerated at the end of
the input.
*/
package text
