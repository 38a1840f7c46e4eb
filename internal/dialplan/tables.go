package dialplan

import "sort"

// Extension identifies an internal station. Extensions are never synthesized;
// they only come out of table lookups or the caller-identifier boundary parse.
type Extension uint16

// Tables holds the two read-only routing maps: canonical number (DID or
// short code) to extension, and extension to its outbound trunk number.
// Built once at process start and never mutated afterwards, so lookups are
// safe without locking.
type Tables struct {
	numberToExt map[NationalNumber]Extension
	extToTrunk  map[Extension]NationalNumber
}

// NewTables copies both maps so later mutation of the inputs cannot leak into
// the engine.
func NewTables(numberToExt map[NationalNumber]Extension, extToTrunk map[Extension]NationalNumber) *Tables {
	t := &Tables{
		numberToExt: make(map[NationalNumber]Extension, len(numberToExt)),
		extToTrunk:  make(map[Extension]NationalNumber, len(extToTrunk)),
	}
	for n, e := range numberToExt {
		t.numberToExt[n] = e
	}
	for e, n := range extToTrunk {
		t.extToTrunk[e] = n
	}
	return t
}

// LookupExtension resolves a canonical number or short code to an extension.
// Exact match only.
func (t *Tables) LookupExtension(n NationalNumber) (Extension, bool) {
	ext, ok := t.numberToExt[n]
	return ext, ok
}

// LookupTrunk returns the outbound trunk/caller-ID number for an extension.
func (t *Tables) LookupTrunk(ext Extension) (NationalNumber, bool) {
	trunk, ok := t.extToTrunk[ext]
	return trunk, ok
}

// ExtensionEntry is a read-only view of one extension's routing data, used by
// the diagnostic API.
type ExtensionEntry struct {
	Ext     Extension        `json:"ext"`
	Trunk   NationalNumber   `json:"trunk,omitempty"`
	Numbers []NationalNumber `json:"numbers"`
}

// Entries returns every extension reachable through the tables, sorted by
// extension, each with its trunk and the canonical numbers that map to it.
func (t *Tables) Entries() []ExtensionEntry {
	byExt := make(map[Extension][]NationalNumber)
	for n, e := range t.numberToExt {
		byExt[e] = append(byExt[e], n)
	}
	for e := range t.extToTrunk {
		if _, ok := byExt[e]; !ok {
			byExt[e] = nil
		}
	}

	entries := make([]ExtensionEntry, 0, len(byExt))
	for e, nums := range byExt {
		sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
		trunk, _ := t.LookupTrunk(e)
		entries = append(entries, ExtensionEntry{Ext: e, Trunk: trunk, Numbers: nums})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Ext < entries[j].Ext })
	return entries
}

// Default returns the compiled-in plant tables. DIDs and short codes are
// many-to-one onto extensions; trunks are one-to-one.
func Default() *Tables {
	return NewTables(
		map[NationalNumber]Extension{
			"79235253998": 501, "73843602313": 501,
			"79235254061": 502, "73843601773": 502, "73843731773": 502,
			"79235254150": 503,
			"79235254132": 504, "73843602414": 504,
			"79235254389": 505,
			"79235254439": 506, "73843601771": 506,
			"79235254667": 507, "73843600912": 507,
			"79235254706": 508, "73843600911": 508, "73843731458": 508,
			"79235255049": 509, "73843601331": 509, "73843731313": 509,
			"79235255136": 510, "73843601221": 510, "73843731500": 510,

			// Short dialing codes kept from the legacy plan.
			"104": 501,
			"135": 502,
			"119": 502,
			"111": 508,
			"106": 509,
		},
		map[Extension]NationalNumber{
			501: "79235253998",
			502: "79235254061",
			503: "79235254150",
			504: "79235254132",
			505: "79235254389",
			506: "79235254439",
			507: "79235254667",
			508: "79235254706",
			509: "79235255049",
			510: "79235255136",
		},
	)
}
