package apiv1

import (
	"worktrack-backend/controllers"
	roleshandler "worktrack-backend/lib/roles"
	"worktrack-backend/models"
	apimodels "worktrack-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type roleApiController struct {
	controllers.BaseAPIController
}

func InitRoleApiRouters(app *fiber.App) {
	controller := roleApiController{}
	app.Route("role", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":code", controller.get)
	})
}

// @Summary Список ролей
// @Tags Роли
// @Description Роли системы с числом пользователей
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]roleapimodels.RoleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/role [get]
func (c *roleApiController) list(ctx *fiber.Ctx) error {
	result, err := roleshandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка ролей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Роль
// @Tags Роли
// @Description Роль по коду с числом пользователей
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   code        		path    	string	true	"код роли"
// @Success 200 {object} apimodels.Response{data=roleapimodels.RoleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/role/{code} [get]
func (c *roleApiController) get(ctx *fiber.Ctx) error {
	code, err := c.GetIDByKey(ctx, "code")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := roleshandler.Instance.GetByCode(models.UserRole(code))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения роли")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
