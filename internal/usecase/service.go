package usecase

import (
	"context"
	"errors"

	"svw.info/sumplete/internal/domain"
	"svw.info/sumplete/internal/ports"
)

// Service aggregates the ports the adapters need: puzzle generation,
// persistence, and hinting. Solving goes through Session.
type Service struct {
	Generator ports.Generator
	Storage   ports.Storage
	Hinter    ports.Hinter
}

func NewService(g ports.Generator, st ports.Storage, h ports.Hinter) *Service {
	return &Service{Generator: g, Storage: st, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Generate(ctx context.Context, spec domain.GenerateSpec) (*domain.Puzzle, error) {
	if u.Generator == nil {
		return nil, errNotConfigured
	}
	return u.Generator.Generate(ctx, spec)
}

func (u *Service) Hint(g *domain.Grid) (domain.Hint, bool) {
	if u.Hinter == nil {
		return domain.Hint{}, false
	}
	return u.Hinter.Hint(g)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
