package apiv1

import (
	"worktrack-backend/controllers"
	notificationhandler "worktrack-backend/lib/notification"
	"worktrack-backend/middleware"
	apimodels "worktrack-backend/models/api"
	notificationapimodels "worktrack-backend/models/api/notification"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notification", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Put("read_all", controller.markAllRead)
		router.Get("settings", controller.getSettings)
		router.Put("settings", controller.updateSettings)
		router.Put(":id/read", controller.markRead)
	})
}

// @Summary Список уведомлений
// @Tags Уведомления
// @Description Уведомления текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]notificationapimodels.NotificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	var pg apimodels.Pagination
	if err := ctx.QueryParser(&pg); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить данные из запроса"))
	}
	actor := middleware.GetActor(ctx)
	result, rowCount, err := notificationhandler.Instance.List(actor, pg)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(result, rowCount))
}

// @Summary Отметить прочитанным
// @Tags Уведомления
// @Description Отметить уведомление прочитанным
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id}/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	err = notificationhandler.Instance.MarkRead(actor, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления уведомления")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отметить все прочитанными
// @Tags Уведомления
// @Description Отметить все уведомления пользователя прочитанными
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/read_all [put]
func (c *notificationApiController) markAllRead(ctx *fiber.Ctx) error {
	actor := middleware.GetActor(ctx)
	err := notificationhandler.Instance.MarkAllRead(actor)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Настройки уведомлений
// @Tags Уведомления
// @Description Настройки уведомлений текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=notificationapimodels.SettingsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/settings [get]
func (c *notificationApiController) getSettings(ctx *fiber.Ctx) error {
	actor := middleware.GetActor(ctx)
	result, err := notificationhandler.Instance.GetSettings(actor)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения настроек уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Обновление настроек уведомлений
// @Tags Уведомления
// @Description Частичное обновление настроек уведомлений
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notificationapimodels.SettingsData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/settings [put]
func (c *notificationApiController) updateSettings(ctx *fiber.Ctx) error {
	var payload notificationapimodels.SettingsData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	err := notificationhandler.Instance.UpdateSettings(actor, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления настроек уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
