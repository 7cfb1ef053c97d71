// Package collector gathers the parameters of a pipeline run from an operator.
//
// A Collector walks a fixed flow of prompts (input directory, output directory,
// normalisation flag and execution profile), substitutes defaults for blank
// answers and re-prompts until every answer can be coerced to its type. The
// flow is a directed acyclic graph of steps executed in topological order.
//
// Once collected, the values are summarised and, when the operator confirms,
// written as two JSON documents: the pipeline parameters and the execution
// options consumed by the pipeline runner.
//
// Collection can be observed through model.CollectorOption hooks, which is how
// the measure and drawer packages time each step and draw the flow.
package collector
