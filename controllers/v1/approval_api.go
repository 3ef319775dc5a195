package apiv1

import (
	"worktrack-backend/controllers"
	approvalhandler "worktrack-backend/lib/approval"
	"worktrack-backend/middleware"
	apimodels "worktrack-backend/models/api"
	approvalapimodels "worktrack-backend/models/api/approval"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type approvalApiController struct {
	controllers.BaseAPIController
}

func InitApprovalApiRouters(app *fiber.App) {
	controller := approvalApiController{}
	app.Route("approval", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("approve", controller.approve)
			idRoute.Post("reject", controller.reject)
		})
	})
}

// @Summary Список согласований
// @Tags Согласования
// @Description Список согласований
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"статус"
// @Param   type				query		string	false	"тип согласования"
// @Param   search				query		string	false	"поиск по заявителю/описанию"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]approvalapimodels.ApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval [get]
func (c *approvalApiController) list(ctx *fiber.Ctx) error {
	var filter approvalapimodels.ApprovalFilter
	if err := ctx.QueryParser(&filter); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить данные из запроса"))
	}
	actor := middleware.GetActor(ctx)
	result, rowCount, err := approvalhandler.Instance.List(actor, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка согласований")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(result, rowCount))
}

// @Summary Согласование
// @Tags Согласования
// @Description Карточка согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.ApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/{id} [get]
func (c *approvalApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	result, err := approvalhandler.Instance.GetByID(actor, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Согласовать
// @Tags Согласования
// @Description Одобрение заявки, связанная задача переходит в статус "К выполнению"
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"rec ID"
// @Param	body body	 approvalapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.DecisionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/{id}/approve [post]
func (c *approvalApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload approvalapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	result, err := approvalhandler.Instance.Approve(actor, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка согласования заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Отклонить
// @Tags Согласования
// @Description Отклонение заявки, связанная задача переходит в статус "Отменена"
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"rec ID"
// @Param	body body	 approvalapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.DecisionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/{id}/reject [post]
func (c *approvalApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload approvalapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actor := middleware.GetActor(ctx)
	result, err := approvalhandler.Instance.Reject(actor, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
