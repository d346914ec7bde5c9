// Package openai implements the ai service interfaces against any
// OpenAI-compatible API (DeepSeek, Ollama, vLLM, ...) through langchaingo.
//
// The chat-backed services (classifier, rewriter, decomposer, generator)
// share a single chat client; the embedder has its own client so embedding
// can run against a different host and model.
package openai
