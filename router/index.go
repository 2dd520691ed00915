package router

import (
	"lunch_manager/handler"
	"lunch_manager/middleware"
	"lunch_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)
	account.Put("/:accountId", middleware.Protected(), validate.UpdateAccount("accountId"), handler.UpdateAccount)

	shop := v1.Group("/shop", logger.New())
	shop.Get("/", middleware.OptionalJWT(), handler.GetShops)
	shop.Get("/:slug", middleware.OptionalJWT(), handler.GetShopBySlug)
	shop.Post("/", middleware.Protected(), validate.CreateShop(), handler.CreateShop)
	shop.Put("/:shopId", middleware.Protected(), validate.EditShop("shopId"), handler.EditShop)
	shop.Post("/:shopId/logo", middleware.Protected(), validate.UploadShopLogo("shopId"), handler.UploadShopLogo)
	shop.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteShop)

	menu := v1.Group("/menu", logger.New())
	menu.Get("/:menuId", middleware.OptionalJWT(), validate.GetById("menuId"), handler.GetMenuById)
	menu.Post("/", middleware.Protected(), validate.CreateMenu(), handler.CreateMenu)
	menu.Post("/category", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	menu.Post("/item", middleware.Protected(), validate.CreateMenuItem(), handler.CreateMenuItem)
	menu.Put("/item/:itemId", middleware.Protected(), validate.EditMenuItem("itemId"), handler.EditMenuItem)
	menu.Post("/item/:itemId/image", middleware.Protected(), validate.UploadMenuItemImage("itemId"), handler.UploadMenuItemImage)
	menu.Delete("/item", middleware.Protected(), validate.Delete(), handler.DeleteMenuItem)

	event := v1.Group("/event", logger.New())
	event.Get("/", middleware.OptionalJWT(), handler.GetEvents)
	event.Post("/", middleware.Protected(), validate.CreateEvent(), handler.CreateEvent)
	event.Put("/:eventId", middleware.Protected(), validate.EditEvent("eventId"), handler.EditEvent)
	event.Patch("/:eventId/toggle-active", middleware.Protected(), validate.EventOrganizer("eventId"), handler.ToggleEventActive)
	event.Delete("/:eventId", middleware.Protected(), validate.EventOrganizer("eventId"), handler.DeleteEvent)
	event.Get("/:slug", middleware.OptionalJWT(), handler.GetEventBySlug)
	event.Get("/:slug/qr", middleware.OptionalJWT(), handler.GetEventQR)

	// Đơn hàng gắn theo slug sự kiện — mỗi người một đơn
	event.Get("/:slug/my-order", middleware.Protected(), handler.GetMyOrder)
	event.Post("/:slug/order", middleware.Protected(), validate.SubmitOrder("slug"), handler.SubmitOrder)
	event.Put("/:slug/order", middleware.Protected(), validate.SubmitOrder("slug"), handler.UpdateOrder)
	event.Delete("/:slug/order", middleware.Protected(), validate.OpenEvent("slug"), handler.DeleteOrder)

	order := v1.Group("/order", logger.New())
	order.Patch("/:orderId/paid", middleware.Protected(), validate.MarkPaid("orderId"), handler.MarkOrderPaid)

	// Thống kê + report
	event.Get("/:slug/statistics", middleware.Protected(), handler.GetEventStatistics)
	event.Get("/:slug/statistics/by-user", middleware.Protected(), handler.GetEventRowsByUser)
	event.Get("/:slug/statistics/by-item", middleware.Protected(), handler.GetEventRowsByItem)
	event.Get("/:slug/report", middleware.Protected(), handler.DownloadEventReport)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetAdminStats)

	// Feed đơn hàng realtime
	v1.Get("/event/:eventId/feed", middleware.OptionalJWT(), websocket.New(handler.OrderFeedWebsocket))
}
