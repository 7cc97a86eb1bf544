package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"code_mentor/internal/domain/model"
	"code_mentor/internal/platform/leetcode"

	"github.com/redis/go-redis/v9"
)

const problemCacheKeyPrefix = "problem:"

// ProblemFetcher is the outbound problem-statement source.
type ProblemFetcher interface {
	FetchBySlug(ctx context.Context, titleSlug string) (*model.FetchedProblem, error)
}

type ProblemService struct {
	fetcher  ProblemFetcher
	rdb      *redis.Client // nil disables caching
	cacheTTL time.Duration
}

func NewProblemService(fetcher ProblemFetcher, rdb *redis.Client, cacheTTL time.Duration) *ProblemService {
	return &ProblemService{fetcher: fetcher, rdb: rdb, cacheTTL: cacheTTL}
}

// Fetch resolves the input to a slug and returns the problem, consulting
// the Redis cache first. Cache failures are logged and ignored; the
// upstream fetch result always wins.
func (s *ProblemService) Fetch(ctx context.Context, input string) (*model.FetchedProblem, error) {
	titleSlug, err := leetcode.ExtractSlug(input)
	if err != nil {
		return nil, err
	}

	if cached := s.cacheGet(ctx, titleSlug); cached != nil {
		return cached, nil
	}

	problem, err := s.fetcher.FetchBySlug(ctx, titleSlug)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, titleSlug, problem)
	return problem, nil
}

func (s *ProblemService) cacheGet(ctx context.Context, titleSlug string) *model.FetchedProblem {
	if s.rdb == nil {
		return nil
	}
	data, err := s.rdb.Get(ctx, problemCacheKeyPrefix+titleSlug).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("WARN: problem cache read failed for %s: %v", titleSlug, err)
		}
		return nil
	}
	var problem model.FetchedProblem
	if err := json.Unmarshal(data, &problem); err != nil {
		log.Printf("WARN: problem cache entry for %s is corrupt: %v", titleSlug, err)
		return nil
	}
	return &problem
}

func (s *ProblemService) cacheSet(ctx context.Context, titleSlug string, problem *model.FetchedProblem) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(problem)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, problemCacheKeyPrefix+titleSlug, data, s.cacheTTL).Err(); err != nil {
		log.Printf("WARN: problem cache write failed for %s: %v", titleSlug, err)
	}
}
