// Package app provides the use cases that orchestrate the conference
// aggregate through the repository and identity ports. Each use case exposes
// a single Execute operation and carries no transport or storage concerns.
package app
