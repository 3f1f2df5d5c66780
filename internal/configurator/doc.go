// Package configurator implements the interactive flow that creates or edits
// the marketplace .env file.
//
// The flow is described as data: a [Stage] is an ordered list of [Question]
// descriptors and [Ask] runs one stage against a [prompt.Driver]. A
// [Configurator] strings the stages together, merges every stage's answers
// into the file with one atomic write and prints the surrounding guidance.
//
// Saved values are passed explicitly as [models.Settings]; nothing is kept in
// package state.
package configurator
