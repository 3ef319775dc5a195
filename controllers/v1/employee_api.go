package apiv1

import (
	"worktrack-backend/controllers"
	employeehandler "worktrack-backend/lib/employee"
	"worktrack-backend/middleware"
	"worktrack-backend/models"
	apimodels "worktrack-backend/models/api"
	employeeapimodels "worktrack-backend/models/api/employee"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employee", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", middleware.RoleRequired(models.RoleSystemAdmin, models.RoleHrAdmin), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", middleware.RoleRequired(models.RoleSystemAdmin, models.RoleHrAdmin), controller.update)
			idRoute.Delete("", middleware.RoleRequired(models.RoleSystemAdmin, models.RoleHrAdmin), controller.delete)
		})
	})
}

// @Summary Список сотрудников
// @Tags Сотрудники
// @Description Список сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   department			query		string	false	"отдел"
// @Param   role				query		string	false	"роль"
// @Param   status				query		string	false	"статус"
// @Param   search				query		string	false	"поиск по имени/почте/номеру"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee [get]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	var filter employeeapimodels.EmployeeFilter
	if err := ctx.QueryParser(&filter); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить данные из запроса"))
	}
	result, rowCount, err := employeehandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка сотрудников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(result, rowCount))
}

// @Summary Создание сотрудника
// @Tags Сотрудники
// @Description Создание сотрудника, табельный номер выдаётся автоматически
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.EmployeeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := employeehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Сотрудник
// @Tags Сотрудники
// @Description Карточка сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := employeehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Обновление сотрудника
// @Tags Сотрудники
// @Description Обновление данных сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"rec ID"
// @Param	body body	 employeeapimodels.EmployeeData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.EmployeeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = employeehandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление сотрудника
// @Tags Сотрудники
// @Description Удаление сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/{id} [delete]
func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = employeehandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
