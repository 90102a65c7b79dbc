// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import "strings"

// AcceptedStatuses are the taxonomic statuses of a currently accepted name
var AcceptedStatuses = []string{"accepted"}

// SynonymStatuses are the statuses of names that point at another taxon
var SynonymStatuses = []string{"synonym", "misapplied", "heterotypic synonym", "homotypic synonym"}

// IsAcceptedStatus checks if a status string marks an accepted name
func IsAcceptedStatus(status string) bool {
	return containsFold(AcceptedStatuses, status)
}

// IsSynonymStatus checks if a status string marks a synonym or misapplied name
func IsSynonymStatus(status string) bool {
	return containsFold(SynonymStatuses, status)
}

func containsFold(values []string, s string) bool {
	s = strings.TrimSpace(s)
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
