// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the terminal client runtime. It signs the user in,
// runs the notes and todos screens, and returns to the sign-in flow when
// the user signs out.
package client
