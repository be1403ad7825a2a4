package repository

import (
	"github.com/openpolls/backend/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Repositories interface {
	User() UserRepository
	Token() TokenRepository
	Poll() PollRepository
	Option() OptionRepository
	Vote() VoteRepository
}

type repositories struct {
	userRepository   UserRepository
	tokenRepository  TokenRepository
	pollRepository   PollRepository
	optionRepository OptionRepository
	voteRepository   VoteRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	err := db.AutoMigrate(&model.User{}, &model.Token{}, &model.Poll{}, &model.Option{}, &model.Vote{})
	if err != nil {
		logrus.Panic(err)
	}
	return &repositories{
		userRepository:   newUserRepository(db),
		tokenRepository:  newTokenRepository(db),
		pollRepository:   newPollRepository(db),
		optionRepository: newOptionRepository(db),
		voteRepository:   newVoteRepository(db),
	}
}

func (r repositories) User() UserRepository {
	return r.userRepository
}

func (r repositories) Token() TokenRepository {
	return r.tokenRepository
}

func (r repositories) Poll() PollRepository {
	return r.pollRepository
}

func (r repositories) Option() OptionRepository {
	return r.optionRepository
}

func (r repositories) Vote() VoteRepository {
	return r.voteRepository
}
