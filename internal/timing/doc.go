// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package timing provides named, hierarchical instrumentation scopes for
// measuring command execution cost. Scopes aggregate invocation count,
// total and maximum duration, and create child scopes on demand.
package timing
