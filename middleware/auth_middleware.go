package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "worktrack-backend/lib/utils/auth-utils"
	"worktrack-backend/models"
	apimodels "worktrack-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	return getStringClaim(ctx, "sub")
}

func GetUserName(ctx *fiber.Ctx) string {
	return getStringClaim(ctx, "name")
}

// GetUserRole - роль актора, по умолчанию employee
func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	role := getStringClaim(ctx, "role")
	if role == "" {
		return models.RoleEmployee
	}
	return models.UserRole(role)
}

func GetUserDepartment(ctx *fiber.Ctx) string {
	return getStringClaim(ctx, "department")
}

// GetUserEmployeeID - собственная запись сотрудника актора, может отсутствовать
func GetUserEmployeeID(ctx *fiber.Ctx) string {
	return getStringClaim(ctx, "employee_id")
}

// GetActor собирает контекст пользователя из клейм токена
func GetActor(ctx *fiber.Ctx) models.Actor {
	return models.Actor{
		UserID:     GetUserID(ctx),
		Name:       GetUserName(ctx),
		Role:       GetUserRole(ctx),
		Department: GetUserDepartment(ctx),
		EmployeeID: GetUserEmployeeID(ctx),
	}
}

func getStringClaim(ctx *fiber.Ctx, key string) string {
	claims := authutils.GetClaims(ctx)
	if value, exist := claims[key]; exist {
		if stringValue, ok := value.(string); ok {
			return stringValue
		}
	}
	return ""
}

// RoleRequired пропускает только перечисленные роли
func RoleRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		userRole := GetUserRole(ctx)
		for _, role := range roles {
			if userRole == role {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
	}
}
