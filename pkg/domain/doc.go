/*
Package domain contains the core vocabulary of the automata engine.

It defines the raw, unvalidated automaton description (Definition), the
evaluation outcomes (Verdict, Result, Report) and the fixed error taxonomy shared
by loaders, the core and the adapters. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Definition: The automaton as read from a source (alphabet, states, initial, finals, transitions).
  - Transition: A single (origin, label, destination) triple.
  - Verdict: ACCEPTED, REJECTED or INVALID.
  - Report: The verdicts of a batch of words against one automaton.
  - Error: A taxonomy-tagged construction or evaluation error.
*/
package domain
