//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the navstore project using Mage.
//
// Usage:
//
//	mage build        Compile navstore binary to bin/
//	mage test:all     Run all tests
//	mage test:race    Run all tests with the race detector
//	mage test:cover   Run all tests and write coverage.out
//	mage test:golden  Regenerate bridge codec golden files
//	mage lint         Run go vet and golangci-lint
//	mage clean        Remove build artifacts
//	mage install      Install navstore to GOPATH/bin
package main

// Default target when mage runs with no arguments.
var Default = Build
