// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types for the gearbox CLI:
// ActionableError carries operation/resource context plus fix suggestions,
// and a small catalog of rendered markdown issues covers the recurring
// failure modes (missing plugins, manifest parse errors, config problems).
package issue
