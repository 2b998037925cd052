package sequence

import (
	"context"
	"sync"

	"go-hrms/internal/common/apperrors"
)

type memoryRepo struct {
	mu   sync.Mutex
	seqs map[string]*Sequence
}

func newMemoryRepo(seqs ...Sequence) *memoryRepo {
	r := &memoryRepo{seqs: map[string]*Sequence{}}
	for i := range seqs {
		s := seqs[i]
		r.seqs[s.Type] = &s
	}
	return r
}

func (r *memoryRepo) Create(_ context.Context, seq *Sequence) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seqs[seq.Type]; ok {
		return apperrors.Validation("sequence for type '%s' already exists", seq.Type)
	}
	cp := *seq
	r.seqs[seq.Type] = &cp
	return nil
}

func (r *memoryRepo) List(context.Context) ([]Sequence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []Sequence{}
	for _, s := range r.seqs {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memoryRepo) Increase(_ context.Context, seqType string) (*Sequence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.seqs[seqType]
	if !ok {
		return nil, apperrors.NotFound("sequence with type '%s' not found", seqType)
	}
	s.NextAvailableNumber++
	cp := *s
	return &cp, nil
}
