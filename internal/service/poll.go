package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/openpolls/backend/internal/client"
	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/model"
	"github.com/openpolls/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

type PollService interface {
	Create(creator model.User, req dto.CreatePollRequest) (dto.PollPayload, error)
	List() ([]dto.PollPayload, error)
	ListByCreator(creator model.User) ([]dto.PollPayload, error)
	ListActive() ([]dto.PollPayload, error)
	Get(id string) (dto.PollPayload, error)
	Update(actor model.User, id string, req dto.UpdatePollRequest) (dto.PollPayload, error)
	Delete(actor model.User, id string) error
	Results(id string) (dto.PollResults, error)
	CastVote(actor model.User, pollID string, req dto.CastVoteRequest) error
	Options(pollID string) ([]dto.OptionPayload, error)
	AddOption(actor model.User, pollID string, req dto.AddOptionRequest) (dto.OptionPayload, error)
	GetOption(id string) (dto.OptionPayload, error)
	UpdateOption(actor model.User, id string, req dto.AddOptionRequest) (dto.OptionPayload, error)
	DeleteOption(actor model.User, id string) error
}

type pollService struct {
	pollRepository   repository.PollRepository
	optionRepository repository.OptionRepository
	voteRepository   repository.VoteRepository
	notifier         client.Notifier
}

func newPollService(
	pollRepository repository.PollRepository,
	optionRepository repository.OptionRepository,
	voteRepository repository.VoteRepository,
	notifier client.Notifier,
) PollService {
	return &pollService{
		pollRepository:   pollRepository,
		optionRepository: optionRepository,
		voteRepository:   voteRepository,
		notifier:         notifier,
	}
}

func (s *pollService) Create(creator model.User, req dto.CreatePollRequest) (dto.PollPayload, error) {
	seen := make(map[string]bool, len(req.Options))
	for _, entry := range req.Options {
		if seen[entry.OptionText] {
			return dto.PollPayload{}, dto.NewValidationError("options", "Option texts must be unique within a poll.")
		}
		seen[entry.OptionText] = true
	}

	poll := model.Poll{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Question:    req.Question,
		Description: req.Description,
		ExpiresAt:   req.ExpiresAt,
		CreatedByID: creator.ID,
	}
	options := make([]model.Option, 0, len(req.Options))
	for _, entry := range req.Options {
		options = append(options, model.Option{
			ID:         uuid.NewString(),
			OptionText: entry.OptionText,
		})
	}

	created, err := s.pollRepository.CreateWithOptions(poll, options)
	if err != nil {
		return dto.PollPayload{}, err
	}
	created.CreatedBy = creator

	logrus.Infof("User %s created poll %s", creator.Username, created.ID)
	s.notifier.PublishActivity(dto.Activity{
		Kind:    dto.ActivityPollCreated,
		PollID:  created.ID,
		ActorID: creator.ID,
		At:      time.Now().UTC(),
	})

	return toPollPayload(created, s.voteRepository)
}

func (s *pollService) List() ([]dto.PollPayload, error) {
	polls, err := s.pollRepository.List()
	if err != nil {
		return nil, err
	}
	return s.toPayloads(polls)
}

func (s *pollService) ListByCreator(creator model.User) ([]dto.PollPayload, error) {
	polls, err := s.pollRepository.ListByCreator(creator.ID)
	if err != nil {
		return nil, err
	}
	return s.toPayloads(polls)
}

func (s *pollService) ListActive() ([]dto.PollPayload, error) {
	polls, err := s.pollRepository.ListActive(time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return s.toPayloads(polls)
}

func (s *pollService) Get(id string) (dto.PollPayload, error) {
	poll, err := s.pollRepository.GetByID(id)
	if err != nil {
		return dto.PollPayload{}, err
	}
	return toPollPayload(poll, s.voteRepository)
}

func (s *pollService) Update(actor model.User, id string, req dto.UpdatePollRequest) (dto.PollPayload, error) {
	poll, err := s.ownedPoll(actor, id)
	if err != nil {
		return dto.PollPayload{}, err
	}

	if req.Title != nil {
		poll.Title = *req.Title
	}
	if req.Question != nil {
		poll.Question = *req.Question
	}
	if req.Description != nil {
		poll.Description = *req.Description
	}
	if req.ExpiresAt != nil {
		poll.ExpiresAt = req.ExpiresAt
	}

	updated, err := s.pollRepository.Save(poll)
	if err != nil {
		return dto.PollPayload{}, err
	}
	updated.Options = poll.Options
	updated.CreatedBy = poll.CreatedBy

	return toPollPayload(updated, s.voteRepository)
}

func (s *pollService) Delete(actor model.User, id string) error {
	if _, err := s.ownedPoll(actor, id); err != nil {
		return err
	}

	if err := s.pollRepository.Delete(id); err != nil {
		return err
	}

	logrus.Infof("User %s deleted poll %s", actor.Username, id)
	return nil
}

func (s *pollService) Results(id string) (dto.PollResults, error) {
	poll, err := s.pollRepository.GetByID(id)
	if err != nil {
		return dto.PollResults{}, err
	}

	counts := make([]int64, len(poll.Options))
	var totalVotes int64
	for i, option := range poll.Options {
		count, err := s.voteRepository.CountByOption(option.ID)
		if err != nil {
			return dto.PollResults{}, err
		}
		counts[i] = count
		totalVotes += count
	}

	results := make([]dto.OptionResult, 0, len(poll.Options))
	for i, option := range poll.Options {
		results = append(results, dto.OptionResult{
			OptionID:   option.ID,
			OptionText: option.OptionText,
			Votes:      counts[i],
			Percentage: percentage(counts[i], totalVotes),
		})
	}

	return dto.PollResults{
		PollID:     poll.ID,
		Title:      poll.Title,
		TotalVotes: totalVotes,
		Results:    results,
	}, nil
}

func (s *pollService) CastVote(actor model.User, pollID string, req dto.CastVoteRequest) error {
	poll, err := s.pollRepository.GetByID(pollID)
	if err != nil {
		return err
	}

	if !poll.IsActive(time.Now().UTC()) {
		return dto.ErrPollExpired
	}

	voted, err := s.voteRepository.ExistsForPollUser(poll.ID, actor.ID)
	if err != nil {
		return err
	}
	if voted {
		return dto.ErrAlreadyVoted
	}

	option, err := s.optionRepository.GetByID(req.OptionID)
	if err != nil || option.PollID != poll.ID {
		return dto.NewValidationError("option_id", "Invalid option for this poll.")
	}

	_, err = s.voteRepository.Create(model.Vote{
		ID:       uuid.NewString(),
		PollID:   poll.ID,
		OptionID: option.ID,
		UserID:   actor.ID,
	})
	if err != nil {
		// The unique index caught a concurrent duplicate; report it the
		// same way as the pre-check.
		if errors.Is(err, dto.ErrConflict) {
			return dto.ErrAlreadyVoted
		}
		return err
	}

	logrus.Infof("User %s voted on poll %s", actor.Username, poll.ID)
	s.notifier.PublishActivity(dto.Activity{
		Kind:    dto.ActivityVoteCast,
		PollID:  poll.ID,
		ActorID: actor.ID,
		At:      time.Now().UTC(),
	})

	return nil
}

func (s *pollService) Options(pollID string) ([]dto.OptionPayload, error) {
	if _, err := s.pollRepository.GetByID(pollID); err != nil {
		return nil, err
	}

	options, err := s.optionRepository.ListByPoll(pollID)
	if err != nil {
		return nil, err
	}

	payloads := make([]dto.OptionPayload, 0, len(options))
	for _, option := range options {
		count, err := s.voteRepository.CountByOption(option.ID)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, toOptionPayload(option, count))
	}
	return payloads, nil
}

func (s *pollService) AddOption(actor model.User, pollID string, req dto.AddOptionRequest) (dto.OptionPayload, error) {
	if _, err := s.ownedPoll(actor, pollID); err != nil {
		return dto.OptionPayload{}, err
	}

	taken, err := s.optionRepository.TextTaken(pollID, req.OptionText, "")
	if err != nil {
		return dto.OptionPayload{}, err
	}
	if taken {
		return dto.OptionPayload{}, dto.NewValidationError("option_text", "This option already exists for this poll.")
	}

	option, err := s.optionRepository.Create(model.Option{
		ID:         uuid.NewString(),
		PollID:     pollID,
		OptionText: req.OptionText,
	})
	if err != nil {
		return dto.OptionPayload{}, err
	}

	logrus.Infof("User %s added option to poll %s", actor.Username, pollID)
	return toOptionPayload(option, 0), nil
}

func (s *pollService) GetOption(id string) (dto.OptionPayload, error) {
	option, err := s.optionRepository.GetByID(id)
	if err != nil {
		return dto.OptionPayload{}, err
	}

	count, err := s.voteRepository.CountByOption(option.ID)
	if err != nil {
		return dto.OptionPayload{}, err
	}
	return toOptionPayload(option, count), nil
}

func (s *pollService) UpdateOption(actor model.User, id string, req dto.AddOptionRequest) (dto.OptionPayload, error) {
	option, err := s.ownedOption(actor, id)
	if err != nil {
		return dto.OptionPayload{}, err
	}

	taken, err := s.optionRepository.TextTaken(option.PollID, req.OptionText, option.ID)
	if err != nil {
		return dto.OptionPayload{}, err
	}
	if taken {
		return dto.OptionPayload{}, dto.NewValidationError("option_text", "This option already exists for this poll.")
	}

	option.OptionText = req.OptionText
	updated, err := s.optionRepository.Save(option)
	if err != nil {
		return dto.OptionPayload{}, err
	}

	count, err := s.voteRepository.CountByOption(updated.ID)
	if err != nil {
		return dto.OptionPayload{}, err
	}
	return toOptionPayload(updated, count), nil
}

func (s *pollService) DeleteOption(actor model.User, id string) error {
	if _, err := s.ownedOption(actor, id); err != nil {
		return err
	}

	return s.optionRepository.Delete(id)
}

func (s *pollService) ownedPoll(actor model.User, id string) (model.Poll, error) {
	poll, err := s.pollRepository.GetByID(id)
	if err != nil {
		return model.Poll{}, err
	}
	if poll.CreatedByID != actor.ID {
		return model.Poll{}, dto.ErrForbidden
	}
	return poll, nil
}

func (s *pollService) ownedOption(actor model.User, id string) (model.Option, error) {
	option, err := s.optionRepository.GetByID(id)
	if err != nil {
		return model.Option{}, err
	}
	if option.Poll.CreatedByID != actor.ID {
		return model.Option{}, dto.ErrForbidden
	}
	return option, nil
}

func (s *pollService) toPayloads(polls []model.Poll) ([]dto.PollPayload, error) {
	payloads := make([]dto.PollPayload, 0, len(polls))
	for _, poll := range polls {
		payload, err := toPollPayload(poll, s.voteRepository)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, payload)
	}
	return payloads, nil
}
