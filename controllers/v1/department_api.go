package apiv1

import (
	"worktrack-backend/controllers"
	departmenthandler "worktrack-backend/lib/department"
	"worktrack-backend/middleware"
	"worktrack-backend/models"
	apimodels "worktrack-backend/models/api"
	departmentapimodels "worktrack-backend/models/api/department"

	"github.com/gofiber/fiber/v2"
)

type departmentApiController struct {
	controllers.BaseAPIController
}

func InitDepartmentApiRouters(app *fiber.App) {
	controller := departmentApiController{}
	app.Route("department", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", middleware.RoleRequired(models.RoleSystemAdmin, models.RoleHrAdmin), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", middleware.RoleRequired(models.RoleSystemAdmin, models.RoleHrAdmin), controller.update)
			idRoute.Delete("", middleware.RoleRequired(models.RoleSystemAdmin, models.RoleHrAdmin), controller.delete)
		})
	})
}

// @Summary Список отделов
// @Tags Отделы
// @Description Список отделов с числом сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]departmentapimodels.DepartmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/department [get]
func (c *departmentApiController) list(ctx *fiber.Ctx) error {
	result, err := departmenthandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка отделов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Отдел
// @Tags Отделы
// @Description Карточка отдела
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=departmentapimodels.DepartmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/department/{id} [get]
func (c *departmentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := departmenthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения отдела")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Создание отдела
// @Tags Отделы
// @Description Создание отдела, название уникально
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 departmentapimodels.DepartmentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=departmentapimodels.DepartmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/department [post]
func (c *departmentApiController) create(ctx *fiber.Ctx) error {
	var payload departmentapimodels.DepartmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := departmenthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания отдела")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Обновление отдела
// @Tags Отделы
// @Description Обновление отдела, отдел "All" не переименовывается
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"rec ID"
// @Param	body body	 departmentapimodels.DepartmentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/department/{id} [put]
func (c *departmentApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload departmentapimodels.DepartmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = departmenthandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения отдела")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление отдела
// @Tags Отделы
// @Description Удаление отдела, отдел "All" не удаляется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/department/{id} [delete]
func (c *departmentApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = departmenthandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления отдела")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
