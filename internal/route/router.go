package router

import (
	adminhandler "umrah-service/internal/module/admin/handler"
	orderhandler "umrah-service/internal/module/order/handler"
	packagehandler "umrah-service/internal/module/package/handler"
	reviewhandler "umrah-service/internal/module/review/handler"
	userhandler "umrah-service/internal/module/user/handler"
	"umrah-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(
	app *fiber.App,
	handlerUser *userhandler.UserHandler,
	handlerPackage *packagehandler.PackageHandler,
	handlerOrder *orderhandler.OrderHandler,
	handlerAdmin *adminhandler.AdminHandler,
	handlerReview *reviewhandler.ReviewHandler,
	m *middleware.Middleware,
) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// public routes
	v1 := Api.Group("/v1")
	v1.Post("/register", handlerUser.Register)
	v1.Post("/login", handlerUser.Login)
	v1.Get("/packages", handlerPackage.ListPublicPackages)
	v1.Get("/packages/:id", handlerPackage.GetPackage)
	v1.Get("/packages/:package_id/reviews", handlerReview.ListReviewsByPackage)

	// authenticated routes
	v1.Get("/profile", m.ValidateToken, handlerUser.GetProfile)
	v1.Put("/profile", m.ValidateToken, handlerUser.UpdateProfile)
	v1.Post("/profile/picture", m.ValidateToken, handlerUser.UploadProfilePicture)

	// customer routes
	customer := v1.Group("", m.ValidateToken, m.RequireRoles(middleware.RoleCustomer))
	customer.Post("/orders", handlerOrder.CreateOrder)
	customer.Get("/orders", handlerOrder.ShowMyOrders)
	customer.Post("/orders/payment", handlerOrder.Payment)
	customer.Post("/orders/receipt", handlerOrder.UploadReceipt)
	customer.Post("/orders/cancel", handlerOrder.CancelOrder)
	customer.Post("/orders/documents", handlerOrder.AttachDocument)
	customer.Post("/reviews", handlerReview.CreateReview)

	// order detail is readable by every role that owns a slice of it
	v1.Get("/orders/:id", m.ValidateToken, handlerOrder.GetOrder)

	// company routes
	company := v1.Group("/company", m.ValidateToken, m.RequireRoles(middleware.RoleCompany))
	company.Post("/packages", handlerPackage.CreatePackage)
	company.Put("/packages", handlerPackage.UpdatePackage)
	company.Get("/packages", handlerPackage.ListCompanyPackages)
	company.Post("/templates", handlerPackage.CreateTemplate)
	company.Get("/templates", handlerPackage.ListTemplates)
	company.Get("/orders", handlerOrder.ShowCompanyOrders)
	company.Post("/orders/confirm", handlerOrder.ConfirmOrder)
	company.Post("/orders/complete", handlerOrder.CompleteOrder)
	company.Post("/orders/receipt/verify", handlerOrder.VerifyReceipt)

	// admin routes
	admin := v1.Group("/admin", m.ValidateToken, m.RequireRoles(middleware.RoleAdmin))
	admin.Get("/companies", handlerAdmin.ListCompanies)
	admin.Post("/companies/verification", handlerAdmin.SetVerification)
	admin.Get("/companies/:id/subscriptions", handlerAdmin.ListSubscriptions)
	admin.Post("/subscriptions/activate", handlerAdmin.ActivateSubscription)
	admin.Post("/subscriptions/change-plan", handlerAdmin.ChangePlan)
	admin.Post("/subscriptions/cancel", handlerAdmin.CancelSubscription)
	admin.Post("/subscriptions/extend", handlerAdmin.ExtendSubscription)
	admin.Post("/packages/review", handlerPackage.ReviewPackage)
	admin.Post("/orders/receipt/verify", handlerOrder.VerifyReceipt)

	return app
}
