package service

import (
	"context"
	"time"

	"campmed/internal/cache"
	"campmed/internal/model"
	"campmed/internal/repository"
)

// campCacheGenerationKey holds a counter that every camp write bumps. Cache
// keys embed it, so a read that raced a write stores its snapshot under a
// generation nobody reads again.
const campCacheGenerationKey = "camps:generation"

// CampService exposes camp operations.
type CampService interface {
	ListCamps(ctx context.Context) ([]model.Camp, error)
	GetCamp(ctx context.Context, id string) (*model.Camp, error)
	ListByOrganizer(ctx context.Context, email string) ([]model.Camp, error)
	CreateCamp(ctx context.Context, camp *model.Camp) (*repository.InsertResult, error)
	UpdateCamp(ctx context.Context, id string, update model.CampUpdate) (*repository.UpdateResult, error)
	IncrementParticipants(ctx context.Context, id string) (*repository.UpdateResult, error)
	DeleteCamp(ctx context.Context, id string) (*repository.DeleteResult, error)
}

type campService struct {
	repo  repository.CampRepository
	cache *cache.Client
	ttl   time.Duration
}

// NewCampService builds a CampService that caches reads for ttl.
func NewCampService(repo repository.CampRepository, cache *cache.Client, ttl time.Duration) CampService {
	return &campService{repo: repo, cache: cache, ttl: ttl}
}

func (s *campService) generation(ctx context.Context) string {
	gen, _ := s.cache.Get(ctx, campCacheGenerationKey)
	if gen == nil {
		return "0"
	}
	return string(gen)
}

func listCacheKey(gen string) string {
	return "camps:" + gen + ":all"
}

func campCacheKey(gen, id string) string {
	return "camp:" + gen + ":" + id
}

func (s *campService) ListCamps(ctx context.Context) ([]model.Camp, error) {
	key := listCacheKey(s.generation(ctx))

	var cached []model.Camp
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	camps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, key, camps, s.ttl)
	return camps, nil
}

// GetCamp returns nil without error when the camp does not exist. Misses are not cached.
func (s *campService) GetCamp(ctx context.Context, id string) (*model.Camp, error) {
	key := campCacheKey(s.generation(ctx), id)

	var cached model.Camp
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	camp, err := s.repo.FindByID(ctx, id)
	if err != nil || camp == nil {
		return camp, err
	}
	_ = s.cache.SetJSON(ctx, key, camp, s.ttl)
	return camp, nil
}

func (s *campService) ListByOrganizer(ctx context.Context, email string) ([]model.Camp, error) {
	return s.repo.FindByOrganizer(ctx, email)
}

func (s *campService) CreateCamp(ctx context.Context, camp *model.Camp) (*repository.InsertResult, error) {
	res, err := s.repo.Create(ctx, camp)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return res, nil
}

func (s *campService) UpdateCamp(ctx context.Context, id string, update model.CampUpdate) (*repository.UpdateResult, error) {
	res, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return res, nil
}

// IncrementParticipants bumps the counter independently of participant
// records, so the two can drift.
func (s *campService) IncrementParticipants(ctx context.Context, id string) (*repository.UpdateResult, error) {
	res, err := s.repo.IncrementParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return res, nil
}

func (s *campService) DeleteCamp(ctx context.Context, id string) (*repository.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return res, nil
}

// invalidate retires every cached camp entry. Old entries expire with their TTL.
func (s *campService) invalidate(ctx context.Context) {
	_ = s.cache.Incr(ctx, campCacheGenerationKey)
}
