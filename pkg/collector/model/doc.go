// Package model provides the data structures shared by the collector package.
// It defines the two documents written for the pipeline runner, the steps of
// the collection flow and the hooks that can observe them.
package model
