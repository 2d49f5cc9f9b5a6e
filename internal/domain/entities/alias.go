package entities

// AliasRow is a single row of the alias table: a canonical ID followed by
// zero or more alternative IDs that all resolve to it.
type AliasRow struct {
	Canonical ProductID
	Aliases   []ProductID
}

// AliasTable resolves any known alias (SKU code, legacy ID, free-text name)
// to its canonical product ID. Resolution is idempotent: resolving a
// canonical ID returns itself unchanged.
type AliasTable struct {
	canonicalByAlias map[ProductID]ProductID
}

// NewAliasTable builds a lookup table from alias rows; each row's canonical
// ID resolves to itself. Tier 1 (exact ID) entries for the product master
// are added with KnownCanonical; an ID present in neither does not resolve.
func NewAliasTable(rows []AliasRow) *AliasTable {
	t := &AliasTable{canonicalByAlias: make(map[ProductID]ProductID)}
	for _, row := range rows {
		t.canonicalByAlias[row.Canonical] = row.Canonical
		for _, alias := range row.Aliases {
			t.canonicalByAlias[alias] = row.Canonical
		}
	}
	return t
}

// Resolve returns the canonical ID for the given ID. If the ID is not known
// to the alias table at all (tier 1/2/3 all miss), ok is false and the
// caller must treat the reference as unresolved (a hard error, per
// spec.md §4.1 step 3 — never silently pass the raw ID through).
func (t *AliasTable) Resolve(id ProductID) (ProductID, bool) {
	if canonical, ok := t.canonicalByAlias[id]; ok {
		return canonical, true
	}
	return "", false
}

// KnownCanonical registers an ID as resolving to itself, used to seed the
// table with every ID from the product master (tier 1 exact-match) before
// alias-table rows (tier 3) are layered on top.
func (t *AliasTable) KnownCanonical(id ProductID) {
	if _, exists := t.canonicalByAlias[id]; !exists {
		t.canonicalByAlias[id] = id
	}
}
