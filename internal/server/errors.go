// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNilHandler    = errors.New("server: nil http handler")
	errNoHTTPAddress = errors.New("server: http address is empty")
)
