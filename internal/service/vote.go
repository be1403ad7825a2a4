package service

import (
	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/model"
	"github.com/openpolls/backend/internal/repository"
)

// VoteService exposes a user's own vote records only. Lookups are scoped
// to the requesting user, so another user's vote IDs resolve to not-found.
type VoteService interface {
	ListForUser(user model.User) ([]dto.VotePayload, error)
	GetForUser(user model.User, id string) (dto.VotePayload, error)
}

type voteService struct {
	voteRepository repository.VoteRepository
}

func newVoteService(voteRepository repository.VoteRepository) VoteService {
	return &voteService{
		voteRepository: voteRepository,
	}
}

func (s *voteService) ListForUser(user model.User) ([]dto.VotePayload, error) {
	votes, err := s.voteRepository.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}

	payloads := make([]dto.VotePayload, 0, len(votes))
	for _, vote := range votes {
		payloads = append(payloads, toVotePayload(vote))
	}
	return payloads, nil
}

func (s *voteService) GetForUser(user model.User, id string) (dto.VotePayload, error) {
	vote, err := s.voteRepository.GetByIDForUser(id, user.ID)
	if err != nil {
		return dto.VotePayload{}, err
	}
	return toVotePayload(vote), nil
}
