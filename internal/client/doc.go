// Package client assembles the environment configurator command: it picks
// the prompt driver named in the configuration and dispatches to the check
// or the interactive flow.
package client
