// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing errors with actionable
// context: the operation that failed, the resource involved, and concrete
// suggestions for fixing the problem.
package issue
