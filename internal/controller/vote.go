package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/service"
)

type VoteController interface {
	List(ec echo.Context) error
	Get(ec echo.Context) error
}

type voteController struct {
	voteService service.VoteService
}

func newVoteController(voteService service.VoteService) VoteController {
	return &voteController{
		voteService: voteService,
	}
}

func (c *voteController) List(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	votes, err := c.voteService.ListForUser(user)
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, votes)
}

func (c *voteController) Get(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	vote, err := c.voteService.GetForUser(user, ec.Param("id"))
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, vote)
}
