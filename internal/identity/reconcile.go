// Package identity merges user records that likely belong to the same person
// based on shared contact attributes.
package identity

import (
	"sort"

	"github.com/vanshika/salesboard/internal/domain"
)

// Groups is the outcome of one reconciliation pass. IDs that were never seen
// resolve to themselves and form implicit singleton groups.
type Groups struct {
	count     int
	canonical map[string]string
	aliases   map[string][]string
}

// Count returns the number of reconciled identity groups.
func (g Groups) Count() int {
	return g.count
}

// Canonical resolves a raw user ID to its group representative. Unknown IDs
// resolve to themselves, so the mapping is total and idempotent.
func (g Groups) Canonical(id string) string {
	if c, ok := g.canonical[id]; ok {
		return c
	}
	return id
}

// Aliases lists every raw ID collapsed into the group of the provided ID,
// sorted ascending. Unknown IDs yield a singleton list.
func (g Groups) Aliases(id string) []string {
	if members, ok := g.aliases[g.Canonical(id)]; ok {
		return members
	}
	return []string{id}
}

// Reconcile groups user records sharing a normalized email, a digits-only
// phone, or the leading address fragment. Fragments of 4 characters or fewer
// are never matching evidence. The group representative is the
// lexicographically smallest member, so results are stable across runs.
func Reconcile(users []domain.UserRecord) Groups {
	ids := make([]string, 0, len(users))
	index := make(map[string]int, len(users))
	for _, u := range users {
		if u.ID == "" {
			continue
		}
		if _, seen := index[u.ID]; seen {
			continue
		}
		index[u.ID] = len(ids)
		ids = append(ids, u.ID)
	}

	buckets := map[string]map[string][]int{
		attributeEmail:   {},
		attributePhone:   {},
		attributeAddress: {},
	}
	for _, u := range users {
		if u.ID == "" {
			continue
		}
		idx := index[u.ID]
		fragments := []struct {
			category string
			value    string
		}{
			{attributeEmail, normalizeEmail(u.Email)},
			{attributePhone, normalizePhone(u.Phone)},
			{attributeAddress, normalizeAddress(u.Address)},
		}
		for _, f := range fragments {
			if !matchable(f.value) {
				continue
			}
			buckets[f.category][f.value] = append(buckets[f.category][f.value], idx)
		}
	}

	dsu := newDisjointSet(len(ids))
	for _, category := range buckets {
		for _, members := range category {
			// Consecutive unions are enough: component membership is
			// transitive, the edge topology is irrelevant.
			for i := 1; i < len(members); i++ {
				dsu.union(members[i-1], members[i])
			}
		}
	}

	components := make(map[int][]string, len(ids))
	for idx, id := range ids {
		root := dsu.find(idx)
		components[root] = append(components[root], id)
	}

	canonical := make(map[string]string, len(ids))
	aliases := make(map[string][]string, len(components))
	for _, members := range components {
		sort.Strings(members)
		rep := members[0]
		for _, id := range members {
			canonical[id] = rep
		}
		aliases[rep] = members
	}

	return Groups{
		count:     len(components),
		canonical: canonical,
		aliases:   aliases,
	}
}
