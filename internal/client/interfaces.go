// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable command line
// applications.
type Client interface {
	// Run executes the application and returns when it is done.
	Run(ctx context.Context) error
}
