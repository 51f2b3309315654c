package store

import "github.com/amishk599/skillscan/internal/model"

// NopStore is a no-op store used when recording is disabled or in dry-run
// mode. Record echoes the record back; List is always empty.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) Record(rec model.DecisionRecord) (model.DecisionRecord, error) { return rec, nil }
func (s *NopStore) List(limit int) ([]model.DecisionRecord, error)                { return nil, nil }
