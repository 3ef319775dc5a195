package apiv1

import (
	"worktrack-backend/controllers"
	authhandler "worktrack-backend/lib/auth"
	"worktrack-backend/middleware"
	"worktrack-backend/models"
	apimodels "worktrack-backend/models/api"
	authapimodels "worktrack-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type authApiController struct {
	controllers.BaseAPIController
}

// InitAuthApiRouters - маршруты без авторизации
func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
	})
}

// InitProfileApiRouters - маршруты с авторизацией
func InitProfileApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Get("me", controller.me)
		router.Put("profile", controller.updateProfile)
		router.Get("login_history",
			middleware.RoleRequired(models.RoleSystemAdmin, models.RoleHrAdmin),
			controller.loginHistory)
	})
}

// @Summary Вход
// @Tags Авторизация
// @Description Вход по почте и паролю
// @Param	body body	 authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.LoginResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := authhandler.Instance.Login(payload, ctx.IP(), string(ctx.Request().Header.UserAgent()))
	if err != nil {
		return c.SendError(ctx, log.WithField("email", payload.Email), err, "Ошибка входа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Профиль
// @Tags Авторизация
// @Description Профиль текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	actor := middleware.GetActor(ctx)
	result, err := authhandler.Instance.Me(actor)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения профиля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Обновление профиля
// @Tags Авторизация
// @Description Обновление имени и пароля текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 authapimodels.ProfileUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/profile [put]
func (c *authApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload authapimodels.ProfileUpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	err := authhandler.Instance.UpdateProfile(actor, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления профиля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Журнал входов
// @Tags Авторизация
// @Description Журнал входов, включая неудачные попытки
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]authapimodels.LoginHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login_history [get]
func (c *authApiController) loginHistory(ctx *fiber.Ctx) error {
	var pg apimodels.Pagination
	if err := ctx.QueryParser(&pg); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить данные из запроса"))
	}
	result, rowCount, err := authhandler.Instance.LoginHistory(pg)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала входов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(result, rowCount))
}
