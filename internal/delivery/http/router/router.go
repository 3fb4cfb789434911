// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mylot/internal/delivery/http/middleware"
	"mylot/internal/delivery/http/router/handler"
	"mylot/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PageHandler           *handler.PageHandler
	AccountHandler        *handler.AccountHandler
	SocialHandler         *handler.SocialHandler
	ResultHandler         *handler.ResultHandler
	LotteryHandler        *handler.LotteryHandler
	RecommendationHandler *handler.RecommendationHandler
	RateHandler           *handler.RateHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	page           *handler.PageHandler
	account        *handler.AccountHandler
	social         *handler.SocialHandler
	result         *handler.ResultHandler
	lottery        *handler.LotteryHandler
	recommendation *handler.RecommendationHandler
	rate           *handler.RateHandler
	auth           *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		page:           params.PageHandler,
		account:        params.AccountHandler,
		social:         params.SocialHandler,
		result:         params.ResultHandler,
		lottery:        params.LotteryHandler,
		recommendation: params.RecommendationHandler,
		rate:           params.RateHandler,
		auth:           params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	r.registerWebRoutes(e)
	r.registerAPIRoutes(e)
}

// registerWebRoutes wires the server-rendered browser pages. The session
// cookie resolves the identity where one exists; only /account requires it.
func (r *router) registerWebRoutes(e *echo.Echo) {
	web := e.Group("", r.auth.OptionalAuthenticate)
	{
		web.GET("/", r.page.Index)
		web.GET("/login", r.page.LoginPage)
		web.POST("/login", r.page.Login)
		web.GET("/logout", r.page.Logout)
		web.GET("/signup", r.page.SignupPage)
		web.POST("/signup", r.page.Signup)
		web.GET("/forgot", r.page.ForgotPage)
		web.POST("/forgot", r.page.Forgot)
		web.GET("/reset/:token", r.page.ResetPage)
		web.POST("/reset/:token", r.page.Reset)

		web.GET("/result", r.page.ResultListPage)
		web.GET("/lottery", r.page.LotteryListPage)
		web.GET("/recommendation", r.page.RecommendationListPage)

		// Browser OAuth flow.
		web.GET("/auth/:provider", r.social.Authorize)
		web.GET("/auth/:provider/callback", r.social.Callback)
	}

	account := e.Group("/account", r.auth.AuthenticateWeb)
	{
		account.GET("", r.page.AccountPage)
		account.POST("/profile", r.page.UpdateProfile)
		account.POST("/password", r.page.UpdatePassword)
		account.POST("/delete", r.page.DeleteAccount)
		account.GET("/unlink/:provider", r.page.UnlinkProvider)
	}

	addPages := e.Group("", r.auth.AuthenticateWeb)
	{
		addPages.GET("/result/add", r.page.ResultAddPage)
		addPages.GET("/lottery/add", r.page.LotteryAddPage)
		addPages.GET("/recommendation/add", r.page.RecommendationAddPage)
	}
}

// registerAPIRoutes wires the stateless JSON surface.
func (r *router) registerAPIRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Credential endpoints.
	api.POST("/signup", r.account.Signup)
	api.POST("/login", r.account.Login)
	api.GET("/logout", r.account.Logout, r.auth.OptionalAuthenticate)
	api.POST("/forgot", r.account.Forgot)
	api.GET("/reset/init", r.account.ResetInit)
	api.POST("/reset/finish", r.account.ResetFinish)
	api.GET("/account/activate", r.account.Activate)

	// Social sign-in.
	api.POST("/auth/facebook", r.social.FacebookLogin)
	api.POST("/auth/provider", r.social.ProviderLogin)

	// Account routes require a valid session.
	accountGroup := api.Group("/account", r.auth.Authenticate)
	{
		accountGroup.GET("/profile", r.account.GetProfile)
		accountGroup.POST("/profile", r.account.UpdateProfile)
		accountGroup.POST("/password", r.account.UpdatePassword)
		accountGroup.GET("/unlink/:provider", r.account.Unlink)
	}

	// Linked-provider echo, gated on a stored access token.
	api.GET("/facebook", r.social.FacebookProfile,
		r.auth.Authenticate, r.auth.RequireLinkedProvider(entity.ProviderTypeFacebook))

	// Content routes resolve the identity when present; the handlers enforce
	// their own login-required semantics on mutations.
	content := api.Group("", r.auth.OptionalAuthenticate)
	{
		content.GET("/result", r.result.List)
		content.POST("/result", r.result.Create)
		content.PUT("/result", r.result.Update)
		content.DELETE("/result/:id", r.result.Delete, r.auth.RequireRole(entity.RoleAdmin))

		content.GET("/lottery", r.lottery.List)
		content.POST("/lottery", r.lottery.Create)
		content.PUT("/lottery", r.lottery.Update)
		content.DELETE("/lottery/:id", r.lottery.Delete)

		content.GET("/recommendation", r.recommendation.List)
		content.POST("/recommendation", r.recommendation.Create)
		content.PUT("/recommendation", r.recommendation.Update)
		content.DELETE("/recommendation/:id", r.recommendation.Delete)

		content.GET("/rate", r.rate.List)
		content.POST("/rate", r.rate.Create)
		content.PUT("/rate", r.rate.Update)
		content.DELETE("/rate/:id", r.rate.Delete, r.auth.RequireRole(entity.RoleAdmin))
	}
}
