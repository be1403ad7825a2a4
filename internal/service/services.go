package service

import (
	"github.com/openpolls/backend/internal/client"
	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/repository"
)

type Services interface {
	Auth() AuthService
	User() UserService
	Poll() PollService
	Vote() VoteService
}

type services struct {
	authService AuthService
	userService UserService
	pollService PollService
	voteService VoteService
}

func NewServices(repositories repository.Repositories, config dto.Config, clients client.Clients) Services {
	return &services{
		authService: newAuthService(repositories.User(), repositories.Token()),
		userService: newUserService(repositories.User(), repositories.Vote(), config),
		pollService: newPollService(repositories.Poll(), repositories.Option(), repositories.Vote(), clients.Notifier()),
		voteService: newVoteService(repositories.Vote()),
	}
}

func (s services) Auth() AuthService {
	return s.authService
}

func (s services) User() UserService {
	return s.userService
}

func (s services) Poll() PollService {
	return s.pollService
}

func (s services) Vote() VoteService {
	return s.voteService
}
