package compare

import (
	"slices"
	"sort"
	"strings"

	"quicdiff/internal/metrics"
)

// PairOptions controls how stems from two collections pair up.
type PairOptions struct {
	// BaselinePrefix and CandidatePrefix are stripped (with the joining
	// underscore) from the stems of their collection; the remainder is the
	// pair key. An empty prefix pairs identical stems.
	BaselinePrefix  string
	CandidatePrefix string

	// Profiles and Loads restrict pairing to an explicit grid. Empty
	// slices keep every discovered key.
	Profiles []string
	Loads    []string
}

// Pair is one baseline/candidate record pair under a shared key.
type Pair struct {
	Key       string         `json:"key"`
	Profile   string         `json:"profile,omitempty"`
	Load      string         `json:"load,omitempty"`
	Baseline  metrics.Record `json:"baseline"`
	Candidate metrics.Record `json:"candidate"`
}

// PairSet holds the pairable keys of two collections plus the one-sided
// keys that were skipped.
type PairSet struct {
	Pairs         []Pair
	BaselineOnly  []string
	CandidateOnly []string
}

// BuildPairs matches records across two collections by the
// {prefix}_{profile}_{load} stem convention. Keys present on both sides
// become Pairs in sorted key order; one-sided keys are recorded as skips,
// never an error. Stems that do not carry the prefix are ignored.
func BuildPairs(baseline, candidate map[string]metrics.Record, opts PairOptions) *PairSet {
	bkeys := keysByPrefix(baseline, opts.BaselinePrefix)
	ckeys := keysByPrefix(candidate, opts.CandidatePrefix)

	set := &PairSet{}
	for _, key := range sortedKeys(bkeys) {
		if !opts.wantKey(key) {
			continue
		}
		cstem, ok := ckeys[key]
		if !ok {
			set.BaselineOnly = append(set.BaselineOnly, key)
			continue
		}
		profile, load := SplitKey(key)
		set.Pairs = append(set.Pairs, Pair{
			Key:       key,
			Profile:   profile,
			Load:      load,
			Baseline:  baseline[bkeys[key]],
			Candidate: candidate[cstem],
		})
	}
	for _, key := range sortedKeys(ckeys) {
		if !opts.wantKey(key) {
			continue
		}
		if _, ok := bkeys[key]; !ok {
			set.CandidateOnly = append(set.CandidateOnly, key)
		}
	}
	return set
}

// SplitKey splits a pair key into profile and load at the last underscore.
// Keys without an underscore are all profile.
func SplitKey(key string) (profile, load string) {
	i := strings.LastIndex(key, "_")
	if i < 0 {
		return key, ""
	}
	return key[:i], key[i+1:]
}

func (o PairOptions) wantKey(key string) bool {
	profile, load := SplitKey(key)
	if len(o.Profiles) > 0 && !slices.Contains(o.Profiles, profile) {
		return false
	}
	if len(o.Loads) > 0 && !slices.Contains(o.Loads, load) {
		return false
	}
	return true
}

// keysByPrefix maps pair key to source stem for every stem carrying the
// prefix.
func keysByPrefix(records map[string]metrics.Record, prefix string) map[string]string {
	keys := make(map[string]string, len(records))
	for stem := range records {
		key, ok := stemKey(stem, prefix)
		if !ok {
			continue
		}
		keys[key] = stem
	}
	return keys
}

func stemKey(stem, prefix string) (string, bool) {
	if prefix == "" {
		return stem, true
	}
	rest, ok := strings.CutPrefix(stem, prefix+"_")
	if !ok || rest == "" {
		return "", false
	}
	return rest, true
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
