package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type InfoController interface {
	Info(ec echo.Context) error
}

type infoController struct {
}

func newInfoController() InfoController {
	return &infoController{}
}

func (c *infoController) Info(ec echo.Context) error {
	return ec.JSON(http.StatusOK, echo.Map{
		"name":    "openpolls",
		"version": "v1",
	})
}
