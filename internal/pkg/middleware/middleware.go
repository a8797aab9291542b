package middleware

import (
	"fmt"
	"strings"

	"umrah-service/internal/pkg/errors"
	"umrah-service/internal/pkg/helpers"
	"umrah-service/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	RoleCustomer = "customer"
	RoleCompany  = "company"
	RoleAdmin    = "admin"
)

type Middleware struct {
	Log      *otelzap.Logger
	JwtMaker jwt.Maker
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	// get token from header
	auth := ctx.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	token := strings.TrimPrefix(auth, "Bearer ")

	claims, err := m.JwtMaker.ParseToken(token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("user_id", claims.UserID)
	ctx.Locals("email_user", claims.Email)
	ctx.Locals("role", claims.Role)

	return ctx.Next()
}

// RequireRoles checks the role claim against the route allow-list.
func (m *Middleware) RequireRoles(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals("role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}

		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate role: %s not allowed", role))
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("access denied for this role"))
	}
}
