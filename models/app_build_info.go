// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is injected at link time with -ldflags and reported by the
// version endpoint and the client's about line.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// Defaulted returns a copy where empty fields read "N/A".
func (b AppBuildInfo) Defaulted() AppBuildInfo {
	if b.Version == "" {
		b.Version = "N/A"
	}
	if b.Date == "" {
		b.Date = "N/A"
	}
	if b.Commit == "" {
		b.Commit = "N/A"
	}
	return b
}
