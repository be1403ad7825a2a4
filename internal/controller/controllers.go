package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/openpolls/backend/internal/service"
)

type Controllers interface {
	Auth() AuthController
	User() UserController
	Poll() PollController
	Vote() VoteController
	Info() InfoController

	Route(e *echo.Echo)
}

type controllers struct {
	authController AuthController
	userController UserController
	pollController PollController
	voteController VoteController
	infoController InfoController

	authMiddleware  echo.MiddlewareFunc
	adminMiddleware echo.MiddlewareFunc
}

func NewControllers(services service.Services) Controllers {
	return &controllers{
		authController:  newAuthController(services.Auth()),
		userController:  newUserController(services.User()),
		pollController:  newPollController(services.Poll()),
		voteController:  newVoteController(services.Vote()),
		infoController:  newInfoController(),
		authMiddleware:  requireAuth(services.Auth()),
		adminMiddleware: requireAdmin(),
	}
}

func (c controllers) Auth() AuthController {
	return c.authController
}

func (c controllers) User() UserController {
	return c.userController
}

func (c controllers) Poll() PollController {
	return c.pollController
}

func (c controllers) Vote() VoteController {
	return c.voteController
}

func (c controllers) Info() InfoController {
	return c.infoController
}

func (c controllers) Route(e *echo.Echo) {
	e.Validator = newRequestValidator()

	e.GET("/", c.infoController.Info)

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", c.authController.Register)
	auth.POST("/login", c.authController.Login)
	auth.POST("/logout", c.authController.Logout, c.authMiddleware)

	users := api.Group("/users", c.authMiddleware)
	users.GET("/profile", c.userController.Profile)
	users.PUT("/profile", c.userController.UpdateProfile)
	users.PATCH("/profile", c.userController.UpdateProfile)
	users.POST("/change_password", c.userController.ChangePassword)
	users.DELETE("/deactivate_account", c.userController.DeactivateAccount)
	users.GET("/voting_history", c.userController.VotingHistory)
	users.GET("/all_users", c.userController.AllUsers, c.adminMiddleware)
	users.DELETE("/:id/delete_user", c.userController.DeleteUser, c.adminMiddleware)

	polls := api.Group("/polls")
	polls.GET("", c.pollController.List)
	polls.POST("", c.pollController.Create, c.authMiddleware)
	polls.GET("/my_polls", c.pollController.MyPolls, c.authMiddleware)
	polls.GET("/active_polls", c.pollController.ActivePolls)
	polls.GET("/:id", c.pollController.Get)
	polls.PUT("/:id", c.pollController.Update, c.authMiddleware)
	polls.PATCH("/:id", c.pollController.Update, c.authMiddleware)
	polls.DELETE("/:id", c.pollController.Delete, c.authMiddleware)
	polls.GET("/:id/results", c.pollController.Results)
	polls.POST("/:id/vote", c.pollController.Vote, c.authMiddleware)
	polls.GET("/:id/options", c.pollController.Options, c.authMiddleware)
	polls.POST("/:id/options", c.pollController.AddOption, c.authMiddleware)

	options := api.Group("/options", c.authMiddleware)
	options.GET("/:id", c.pollController.GetOption)
	options.PUT("/:id", c.pollController.UpdateOption)
	options.PATCH("/:id", c.pollController.UpdateOption)
	options.DELETE("/:id", c.pollController.DeleteOption)

	votes := api.Group("/votes", c.authMiddleware)
	votes.GET("", c.voteController.List)
	votes.GET("/:id", c.voteController.Get)
}
