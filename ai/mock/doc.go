// Package mock provides test doubles for the ai service interfaces.
//
// Each mock exposes function fields for behavior injection and tracks call
// counts for assertions. Defaults are deterministic: the embedder hashes
// text into a stable vector, the classifier answers general, the rewriter
// and decomposer pass queries through, and the generator returns canned
// answers.
package mock
