package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/service"
)

type PollController interface {
	List(ec echo.Context) error
	Create(ec echo.Context) error
	Get(ec echo.Context) error
	Update(ec echo.Context) error
	Delete(ec echo.Context) error
	Results(ec echo.Context) error
	Vote(ec echo.Context) error
	Options(ec echo.Context) error
	AddOption(ec echo.Context) error
	MyPolls(ec echo.Context) error
	ActivePolls(ec echo.Context) error
	GetOption(ec echo.Context) error
	UpdateOption(ec echo.Context) error
	DeleteOption(ec echo.Context) error
}

type pollController struct {
	pollService service.PollService
}

func newPollController(pollService service.PollService) PollController {
	return &pollController{
		pollService: pollService,
	}
}

func (c *pollController) List(ec echo.Context) error {
	polls, err := c.pollService.List()
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, polls)
}

func (c *pollController) Create(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	var req dto.CreatePollRequest
	if err := ec.Bind(&req); err != nil {
		return ec.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON."})
	}
	if err := ec.Validate(&req); err != nil {
		return respondError(ec, err)
	}

	poll, err := c.pollService.Create(user, req)
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusCreated, poll)
}

func (c *pollController) Get(ec echo.Context) error {
	poll, err := c.pollService.Get(ec.Param("id"))
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, poll)
}

func (c *pollController) Update(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	var req dto.UpdatePollRequest
	if err := ec.Bind(&req); err != nil {
		return ec.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON."})
	}
	if err := ec.Validate(&req); err != nil {
		return respondError(ec, err)
	}

	poll, err := c.pollService.Update(user, ec.Param("id"), req)
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, poll)
}

func (c *pollController) Delete(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	if err := c.pollService.Delete(user, ec.Param("id")); err != nil {
		return respondError(ec, err)
	}

	return ec.NoContent(http.StatusNoContent)
}

func (c *pollController) Results(ec echo.Context) error {
	results, err := c.pollService.Results(ec.Param("id"))
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, results)
}

func (c *pollController) Vote(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	var req dto.CastVoteRequest
	if err := ec.Bind(&req); err != nil {
		return ec.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON."})
	}
	if err := ec.Validate(&req); err != nil {
		return respondError(ec, err)
	}

	if err := c.pollService.CastVote(user, ec.Param("id"), req); err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusCreated, echo.Map{"message": "Vote cast successfully"})
}

func (c *pollController) Options(ec echo.Context) error {
	options, err := c.pollService.Options(ec.Param("id"))
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, options)
}

func (c *pollController) AddOption(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	var req dto.AddOptionRequest
	if err := ec.Bind(&req); err != nil {
		return ec.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON."})
	}
	if err := ec.Validate(&req); err != nil {
		return respondError(ec, err)
	}

	option, err := c.pollService.AddOption(user, ec.Param("id"), req)
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusCreated, echo.Map{
		"message": "Option added successfully",
		"option":  option,
	})
}

func (c *pollController) MyPolls(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	polls, err := c.pollService.ListByCreator(user)
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, polls)
}

func (c *pollController) ActivePolls(ec echo.Context) error {
	polls, err := c.pollService.ListActive()
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, polls)
}

func (c *pollController) GetOption(ec echo.Context) error {
	option, err := c.pollService.GetOption(ec.Param("id"))
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, option)
}

func (c *pollController) UpdateOption(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	var req dto.AddOptionRequest
	if err := ec.Bind(&req); err != nil {
		return ec.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON."})
	}
	if err := ec.Validate(&req); err != nil {
		return respondError(ec, err)
	}

	option, err := c.pollService.UpdateOption(user, ec.Param("id"), req)
	if err != nil {
		return respondError(ec, err)
	}

	return ec.JSON(http.StatusOK, option)
}

func (c *pollController) DeleteOption(ec echo.Context) error {
	user, ok := userFromContext(ec)
	if !ok {
		return respondError(ec, dto.ErrNotAuthorized)
	}

	if err := c.pollService.DeleteOption(user, ec.Param("id")); err != nil {
		return respondError(ec, err)
	}

	return ec.NoContent(http.StatusNoContent)
}
