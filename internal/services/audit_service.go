package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/isdelr/phishstats/internal/hashing"
	"github.com/isdelr/phishstats/internal/models"
	"github.com/isdelr/phishstats/internal/wordlist"
	"github.com/rs/zerolog/log"
)

// AuditServiceProvider defines the interface for the dictionary password audit.
type AuditServiceProvider interface {
	WeakHashes(ctx context.Context) ([]string, error)
	Partition(ctx context.Context) (weak, strong []models.User, err error)
	Report(ctx context.Context) (models.WeakPasswordReport, error)
}

// errAllMatched stops the wordlist scan once every stored hash is known weak.
var errAllMatched = errors.New("all stored hashes matched")

// AuditService flags users whose stored password hash matches a hashed
// wordlist entry.
type AuditService struct {
	users    UserServiceProvider
	hasher   hashing.Hasher
	wordlist string
	encoding string
}

// NewAuditService creates a new AuditService reading the wordlist at path.
func NewAuditService(users UserServiceProvider, hasher hashing.Hasher, path, encoding string) *AuditService {
	return &AuditService{
		users:    users,
		hasher:   hasher,
		wordlist: path,
		encoding: encoding,
	}
}

// WeakHashes returns the stored hashes that appear in the hashed wordlist,
// each once, in wordlist order. Matching is exact and case-sensitive.
func (s *AuditService) WeakHashes(ctx context.Context) ([]string, error) {
	stored, err := s.users.GetDistinctPasswordHashes(ctx)
	if err != nil {
		return nil, err
	}
	pending := make(map[string]struct{}, len(stored))
	for _, h := range stored {
		pending[h] = struct{}{}
	}

	weak := []string{}
	scanned := 0
	err = wordlist.ScanFile(s.wordlist, s.encoding, func(word string) error {
		scanned++
		if scanned%100000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		sum := s.hasher.Sum([]byte(word))
		if _, ok := pending[sum]; ok {
			weak = append(weak, sum)
			delete(pending, sum)
			if len(pending) == 0 {
				return errAllMatched
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, errAllMatched) {
		return nil, err
	}

	log.Info().
		Str("algorithm", s.hasher.Name()).
		Int("candidates", scanned).
		Int("stored", len(stored)).
		Int("weak", len(weak)).
		Msg("Password audit finished")
	return weak, nil
}

// Partition splits the users into weak- and strong-password cohorts.
func (s *AuditService) Partition(ctx context.Context) (weak, strong []models.User, err error) {
	hashes, err := s.WeakHashes(ctx)
	if err != nil {
		return nil, nil, err
	}
	weak, err = s.users.GetUsersByPasswordHashes(ctx, hashes, true)
	if err != nil {
		return nil, nil, err
	}
	strong, err = s.users.GetUsersByPasswordHashes(ctx, hashes, false)
	if err != nil {
		return nil, nil, err
	}
	return weak, strong, nil
}

// Report returns the weak hashes together with the users that own them.
func (s *AuditService) Report(ctx context.Context) (models.WeakPasswordReport, error) {
	hashes, err := s.WeakHashes(ctx)
	if err != nil {
		return models.WeakPasswordReport{}, err
	}
	users, err := s.users.GetUsersByPasswordHashes(ctx, hashes, true)
	if err != nil {
		return models.WeakPasswordReport{}, fmt.Errorf("weak users: %w", err)
	}
	return models.WeakPasswordReport{
		Algorithm: s.hasher.Name(),
		Hashes:    hashes,
		Users:     users,
	}, nil
}
