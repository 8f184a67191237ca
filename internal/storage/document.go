package storage

import (
	"sort"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// documentVersion is the current on-disk schema version.
const documentVersion = 1

// AccountData is everything the document holds for one account: its
// reporting settings and its append-only session history.
type AccountData struct {
	Config   *domain.AccountConfig `json:"config,omitempty"`
	Sessions []*domain.Session     `json:"sessions"`
}

// Document is the single shared document. Account ids are object keys and
// therefore always strings on the wire.
type Document struct {
	Version  int                               `json:"version"`
	Accounts map[domain.AccountID]*AccountData `json:"accounts"`
}

// NewDocument returns an empty document at the current schema version.
func NewDocument() *Document {
	return &Document{Version: documentVersion, Accounts: map[domain.AccountID]*AccountData{}}
}

// Account returns the data for the given account, creating an empty entry
// if the account is new.
func (d *Document) Account(id domain.AccountID) *AccountData {
	ad, ok := d.Accounts[id]
	if !ok {
		ad = &AccountData{}
		d.Accounts[id] = ad
	}
	return ad
}

// Sessions returns the account's session history without creating an entry
// for unknown accounts.
func (d *Document) Sessions(id domain.AccountID) []*domain.Session {
	if ad, ok := d.Accounts[id]; ok {
		return ad.Sessions
	}
	return nil
}

// Config returns the account's settings, falling back to the defaults for
// accounts that were never configured.
func (d *Document) Config(id domain.AccountID) domain.AccountConfig {
	if ad, ok := d.Accounts[id]; ok && ad.Config != nil {
		return *ad.Config
	}
	return domain.DefaultAccountConfig()
}

// OpenSession returns the latest non-completed session for the account, or
// nil when the account is idle. The punch state is always derived from
// this, never cached.
func (d *Document) OpenSession(id domain.AccountID) *domain.Session {
	ad, ok := d.Accounts[id]
	if !ok {
		return nil
	}
	for i := len(ad.Sessions) - 1; i >= 0; i-- {
		if !ad.Sessions[i].Completed() {
			return ad.Sessions[i]
		}
	}
	return nil
}

// AccountIDs returns all known account ids, sorted.
func (d *Document) AccountIDs() []domain.AccountID {
	ids := make([]domain.AccountID, 0, len(d.Accounts))
	for id := range d.Accounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Projects returns the distinct project names recorded for the account,
// sorted.
func (d *Document) Projects(id domain.AccountID) []string {
	ad, ok := d.Accounts[id]
	if !ok {
		return nil
	}
	seen := map[string]bool{}
	for _, s := range ad.Sessions {
		seen[s.Project] = true
	}
	projects := make([]string, 0, len(seen))
	for p := range seen {
		projects = append(projects, p)
	}
	sort.Strings(projects)
	return projects
}
