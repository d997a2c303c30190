// Package vendordir resolves free-text vendor names from source documents
// to canonical vendor names and remote vendor IDs. The alias table is
// static configuration; the canonical-name-to-ID mapping is persisted in a
// small local store.
package vendordir

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Resolution failures. The two kinds need different remediation: an
// unmapped vendor needs an alias table entry, an uncreated vendor needs
// import-vendors (or create-vendor) to be run first.
var (
	ErrVendorNotMapped  = errors.New("no alias mapping for vendor")
	ErrVendorNotCreated = errors.New("vendor not yet created remotely")
)

// RemoteVendor is the minimal view of a vendor on the server that the
// directory needs for reconciliation.
type RemoteVendor struct {
	ID   int64
	Name string
}

// Directory owns the raw-name → canonical-name → remote-ID resolution.
type Directory struct {
	aliases    map[string][]string
	aliasIndex map[string]string // lowercase alias → canonical name
	vendors    map[string]Record // canonical name → record
	store      *Store
}

// New builds a Directory from the static alias table and the local store.
// It fails fast if two canonical entries declare the same alias, rather
// than letting whichever entry loads last win silently.
func New(aliases map[string][]string, store *Store) (*Directory, error) {
	index, err := buildAliasIndex(aliases)
	if err != nil {
		return nil, err
	}

	vendors, err := store.Load()
	if err != nil {
		return nil, err
	}

	return &Directory{
		aliases:    aliases,
		aliasIndex: index,
		vendors:    vendors,
		store:      store,
	}, nil
}

// buildAliasIndex derives the lowercase alias index from the alias table.
// Canonical names are walked in lexicographic order so a duplicate-alias
// error is stable across runs.
func buildAliasIndex(aliases map[string][]string) (map[string]string, error) {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	index := make(map[string]string)
	for _, canonical := range names {
		for _, alias := range aliases[canonical] {
			key := strings.ToLower(alias)
			if existing, ok := index[key]; ok && existing != canonical {
				return nil, fmt.Errorf("alias %q claimed by both %q and %q", alias, existing, canonical)
			}
			index[key] = canonical
		}
	}
	return index, nil
}

// Canonical returns the canonical vendor name for a raw source-document
// name, if the alias table knows it.
func (d *Directory) Canonical(rawName string) (string, bool) {
	canonical, ok := d.aliasIndex[strings.ToLower(strings.TrimSpace(rawName))]
	return canonical, ok
}

// DisplayName returns the canonical display name for a raw name, falling
// back to the raw name itself when no alias entry exists.
func (d *Directory) DisplayName(rawName string) string {
	if canonical, ok := d.Canonical(rawName); ok {
		return canonical
	}
	return rawName
}

// Record returns the stored record for a canonical name.
func (d *Directory) Record(canonical string) (Record, bool) {
	rec, ok := d.vendors[canonical]
	return rec, ok
}

// Resolve maps a raw vendor name to its remote vendor ID. It fails with
// ErrVendorNotMapped when no alias entry exists, and with
// ErrVendorNotCreated when the alias resolves to a canonical name that has
// no remote ID yet.
func (d *Directory) Resolve(rawName string) (int64, error) {
	canonical, ok := d.Canonical(rawName)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVendorNotMapped, rawName)
	}
	rec, ok := d.vendors[canonical]
	if !ok || rec.ID == 0 {
		return 0, fmt.Errorf("%w: %q (canonical %q)", ErrVendorNotCreated, rawName, canonical)
	}
	return rec.ID, nil
}

// RegisterCreated upserts a vendor record after a successful remote create
// (or discovery) and persists the store.
func (d *Directory) RegisterCreated(canonical string, remoteID int64, displayName string) error {
	if displayName == "" {
		displayName = canonical
	}
	d.vendors[canonical] = Record{ID: remoteID, Name: displayName}
	return d.store.Save(d.vendors)
}

// ReconcileWithRemote adopts the IDs of remote vendors whose names match
// known canonical names case-insensitively, instead of creating
// duplicates later. Running it twice produces no change on the second run.
// Returns the number of records adopted or corrected.
func (d *Directory) ReconcileWithRemote(remote []RemoteVendor) (int, error) {
	adopted := d.adopt(remoteIndex(remote))
	if adopted == 0 {
		return 0, nil
	}
	return adopted, d.store.Save(d.vendors)
}

// remoteIndex keys remote vendors by lowercased name.
func remoteIndex(remote []RemoteVendor) map[string]RemoteVendor {
	byName := make(map[string]RemoteVendor, len(remote))
	for _, v := range remote {
		byName[strings.ToLower(v.Name)] = v
	}
	return byName
}

// adopt copies remote IDs into the local records for every canonical name
// found in byName. Records that already carry the remote ID are left
// alone. The store is not saved; callers decide when to persist.
func (d *Directory) adopt(byName map[string]RemoteVendor) int {
	adopted := 0
	for _, canonical := range sortedKeys(d.aliases) {
		rv, ok := byName[strings.ToLower(canonical)]
		if !ok {
			continue
		}
		if rec, ok := d.vendors[canonical]; ok && rec.ID == rv.ID {
			continue
		}
		log.WithFields(logrus.Fields{"vendor": canonical, "id": rv.ID}).Debug("Adopting remote vendor ID")
		d.vendors[canonical] = Record{ID: rv.ID, Name: rv.Name}
		adopted++
	}
	return adopted
}

// Ensure actions reported by BulkEnsureAllCanonical.
const (
	EnsureCreated      = "created"
	EnsureExistsLocal  = "exists-local"
	EnsureExistsRemote = "exists-remote"
	EnsureWouldCreate  = "would-create"
)

// EnsureAction records what happened (or would happen) to one canonical
// vendor during a bulk ensure.
type EnsureAction struct {
	Name   string
	Action string
	ID     int64
}

// EnsureSummary is the outcome of BulkEnsureAllCanonical.
type EnsureSummary struct {
	Actions []EnsureAction
	Created int
	Skipped int
}

// BulkEnsureAllCanonical ensures every canonical name in the alias table
// exists remotely. Names already on the server are adopted; names already
// in the local store are skipped; the rest are created via the create
// callback (or merely reported in dry-run mode). Names are processed in
// lexicographic order so repeated dry-runs produce stable, diffable
// output. Running it twice against the same remote list creates nothing
// on the second run.
func (d *Directory) BulkEnsureAllCanonical(remote []RemoteVendor, create func(name string) (RemoteVendor, error), dryRun bool) (EnsureSummary, error) {
	byName := remoteIndex(remote)

	var summary EnsureSummary
	dirty := d.adopt(byName) > 0

	for _, name := range sortedKeys(d.aliases) {
		if rv, ok := byName[strings.ToLower(name)]; ok {
			summary.Skipped++
			summary.Actions = append(summary.Actions, EnsureAction{Name: name, Action: EnsureExistsRemote, ID: rv.ID})
			continue
		}

		if rec, ok := d.vendors[name]; ok && rec.ID != 0 {
			summary.Skipped++
			summary.Actions = append(summary.Actions, EnsureAction{Name: name, Action: EnsureExistsLocal, ID: rec.ID})
			continue
		}

		if dryRun {
			summary.Actions = append(summary.Actions, EnsureAction{Name: name, Action: EnsureWouldCreate})
			continue
		}

		created, err := create(name)
		if err != nil {
			// Keep what we learned so far before surfacing the failure.
			if dirty {
				if saveErr := d.store.Save(d.vendors); saveErr != nil {
					log.WithError(saveErr).Warn("Failed to save vendor store after create failure")
				}
			}
			return summary, fmt.Errorf("creating vendor %q: %w", name, err)
		}
		d.vendors[name] = Record{ID: created.ID, Name: created.Name}
		dirty = true
		summary.Created++
		summary.Actions = append(summary.Actions, EnsureAction{Name: name, Action: EnsureCreated, ID: created.ID})
	}

	if dirty && !dryRun {
		if err := d.store.Save(d.vendors); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
