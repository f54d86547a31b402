// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Andreicr1/hedge-control/restdata"
	"github.com/benbjohnson/clock"
	uuid "github.com/satori/go.uuid"
)

// Document kinds.  Each is also the entity type of its audit events.
const (
	KindOrder            = "order"
	KindRFQ              = "rfq"
	KindQuote            = "quote"
	KindHedgeContract    = "hedge_contract"
	KindLinkage          = "linkage"
	KindCashflow         = "cashflow"
	KindBaselineSnapshot = "baseline_snapshot"
	KindLedgerEntry      = "ledger_entry"
	KindPLSnapshot       = "pl_snapshot"
	KindMarketData       = "market_data"
)

// Document is one stored JSON object.
type Document map[string]interface{}

// copy returns a shallow copy of d.
func (d Document) copy() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// String returns the string value of a field, or "" if it is missing
// or not a string.
func (d Document) String(field string) string {
	s, _ := d[field].(string)
	return s
}

// State is the in-memory content of the stub back office.  It is safe
// for concurrent use.
type State struct {
	// Clock provides creation and audit timestamps.
	Clock clock.Clock

	lock  sync.Mutex
	docs  map[string]map[string]Document
	order map[string][]string
	audit []restdata.AuditEvent
}

// NewState creates an empty state using the wall clock.
func NewState() *State {
	return NewStateWithClock(clock.New())
}

// NewStateWithClock creates an empty state with an alternate clock,
// generally a mock clock for testing.
func NewStateWithClock(clk clock.Clock) *State {
	return &State{
		Clock: clk,
		docs:  make(map[string]map[string]Document),
		order: make(map[string][]string),
	}
}

func (s *State) now() string {
	return s.Clock.Now().UTC().Format(time.RFC3339)
}

// Create stores a new document of some kind.  It gets a fresh "id"
// and "created_at", overriding anything in payload, and a "created"
// audit event is recorded.
func (s *State) Create(kind string, payload Document) Document {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.create(kind, payload)
}

func (s *State) create(kind string, payload Document) Document {
	doc := payload.copy()
	id := uuid.NewV4().String()
	doc["id"] = id
	doc["created_at"] = s.now()

	if s.docs[kind] == nil {
		s.docs[kind] = make(map[string]Document)
	}
	s.docs[kind][id] = doc
	s.order[kind] = append(s.order[kind], id)
	s.record(kind, id, "created", payload)
	return doc.copy()
}

// Get retrieves a document, or returns errNotFound.
func (s *State) Get(kind, id string) (Document, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	doc, err := s.get(kind, id)
	if err != nil {
		return nil, err
	}
	return doc.copy(), nil
}

func (s *State) get(kind, id string) (Document, error) {
	doc, present := s.docs[kind][id]
	if !present {
		return nil, errNotFound{Kind: kind, ID: id}
	}
	return doc, nil
}

// List returns every document of some kind for which match returns
// true, in creation order.  A nil match selects everything.
func (s *State) List(kind string, match func(Document) bool) []Document {
	s.lock.Lock()
	defer s.lock.Unlock()
	result := []Document{}
	for _, id := range s.order[kind] {
		doc := s.docs[kind][id]
		if match == nil || match(doc) {
			result = append(result, doc.copy())
		}
	}
	return result
}

// Update changes a document in place.  fn receives a copy of the
// document; if it returns nil, the copy replaces the stored document
// and an audit event named eventType is recorded with payload.
func (s *State) Update(kind, id, eventType string, payload Document, fn func(Document) error) (Document, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	doc, err := s.get(kind, id)
	if err != nil {
		return nil, err
	}
	doc = doc.copy()
	if err = fn(doc); err != nil {
		return nil, err
	}
	doc["updated_at"] = s.now()
	s.docs[kind][id] = doc
	s.record(kind, id, eventType, payload)
	return doc.copy(), nil
}

// Counts returns the number of documents of each kind.
func (s *State) Counts() map[string]int {
	s.lock.Lock()
	defer s.lock.Unlock()
	counts := make(map[string]int, len(s.docs))
	for kind, docs := range s.docs {
		counts[kind] = len(docs)
	}
	return counts
}

// AuditLength returns the number of audit events recorded.
func (s *State) AuditLength() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.audit)
}

func (s *State) record(entityType, entityID, eventType string, payload Document) {
	if payload == nil {
		payload = Document{}
	}
	encoded, _ := restdata.Marshal(map[string]interface{}(payload))
	sum := sha256.Sum256(encoded)
	s.audit = append(s.audit, restdata.AuditEvent{
		ID:           uuid.NewV4().String(),
		TimestampUTC: s.now(),
		EntityType:   entityType,
		EntityID:     entityID,
		EventType:    eventType,
		Payload:      map[string]interface{}(payload.copy()),
		Checksum:     hex.EncodeToString(sum[:]),
	})
}

// AuditEvents returns one page of audit events matching filter.  The
// cursor is the decimal offset of the first matching event to return.
func (s *State) AuditEvents(filter restdata.AuditFilter, offset int) restdata.AuditEventList {
	s.lock.Lock()
	defer s.lock.Unlock()

	var matched []restdata.AuditEvent
	for _, ev := range s.audit {
		if filter.EntityType != "" && ev.EntityType != filter.EntityType {
			continue
		}
		if filter.EntityID != "" && ev.EntityID != filter.EntityID {
			continue
		}
		if filter.Start != "" && ev.TimestampUTC < filter.Start {
			continue
		}
		if filter.End != "" && ev.TimestampUTC > filter.End {
			continue
		}
		matched = append(matched, ev)
	}

	result := restdata.AuditEventList{Events: []restdata.AuditEvent{}}
	if offset >= len(matched) {
		return result
	}
	end := offset + filter.Limit
	if end >= len(matched) {
		end = len(matched)
	} else {
		result.NextCursor = strconv.Itoa(end)
	}
	result.Events = append(result.Events, matched[offset:end]...)
	return result
}

// sortedKeys returns the keys of m in order.
func sortedKeys(m map[string][]Document) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// kindName renders a document kind for messages, such as "hedge
// contract".
func kindName(kind string) string {
	name := strings.Replace(kind, "_", " ", -1)
	switch kind {
	case KindRFQ:
		name = "RFQ"
	case KindPLSnapshot:
		name = "P&L snapshot"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
