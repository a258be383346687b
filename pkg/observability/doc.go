/*
Package observability exports evaluation and determinization activity as Prometheus metrics.

Metrics are fed through domain.EvaluationHooks, so any evaluator or engine that accepts
hooks can be instrumented without further changes.
*/
package observability
