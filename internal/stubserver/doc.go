// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

// Package stubserver implements an in-memory stand-in for the directory
// server's bookmark API.
//
// It is meant for local development and adapter integration tests: accounts
// and bookmark sets live in process memory, tokens are real signed JWTs, and
// the routes mirror the production API exactly (register/login under
// /api/auth, bookmark CRUD under /api/bookmarks). Nothing here is suitable
// for production use.
package stubserver
