package router

import (
	"net/http"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Refresh(c *ginext.Context)
	Logout(c *ginext.Context)
	Me(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListMyEvents(c *ginext.Context)
	ListPendingEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	SetFeatured(c *ginext.Context)
	UpdateEventStatus(c *ginext.Context)
	BulkApprove(c *ginext.Context)
	ToggleParticipation(c *ginext.Context)
	ToggleFavourite(c *ginext.Context)
	ListParticipants(c *ginext.Context)
	AddGalleryImage(c *ginext.Context)
	DeleteGalleryImage(c *ginext.Context)

	AddComment(c *ginext.Context)
	ListComments(c *ginext.Context)
	GetComment(c *ginext.Context)
	UpdateComment(c *ginext.Context)
	DeleteComment(c *ginext.Context)
	ToggleCommentLike(c *ginext.Context)

	ListNotifications(c *ginext.Context)
	UnreadCount(c *ginext.Context)
	MarkNotificationRead(c *ginext.Context)
	MarkAllNotificationsRead(c *ginext.Context)
	DeleteNotification(c *ginext.Context)
	Broadcast(c *ginext.Context)

	GetUser(c *ginext.Context)
	UpdateProfile(c *ginext.Context)
	ToggleFollow(c *ginext.Context)
	ListFollowers(c *ginext.Context)
	ListFollowing(c *ginext.Context)
	ListFavourites(c *ginext.Context)
	ListJoinedEvents(c *ginext.Context)
	ListUsers(c *ginext.Context)
	UpdateUserRole(c *ginext.Context)
	DeleteUser(c *ginext.Context)
}

// InitRouter wires the REST surface. metricsHandler may be nil.
func InitRouter(
	mode string,
	h Handler,
	authn middleware.Authenticator,
	metricsHandler http.Handler,
	mw ...ginext.HandlerFunc,
) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	authed := middleware.Auth(authn)
	optional := middleware.OptionalAuth(authn)
	admin := middleware.RequireRole(domain.RoleAdmin)
	organizer := middleware.RequireRole(domain.RoleOrganizer, domain.RoleAdmin)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/refresh", h.Refresh)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/me", authed, h.Me)

		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/mine", authed, organizer, h.ListMyEvents)
		api.POST("/events", authed, organizer, h.CreateEvent)
		api.POST("/events/bulk-approve", authed, admin, h.BulkApprove)
		api.GET("/events/:id", optional, h.GetEvent)
		api.PUT("/events/:id", authed, h.UpdateEvent)
		api.DELETE("/events/:id", authed, h.DeleteEvent)
		api.PUT("/events/:id/status", authed, admin, h.UpdateEventStatus)
		api.POST("/events/:id/participate", authed, h.ToggleParticipation)
		api.POST("/events/:id/favourite", authed, h.ToggleFavourite)
		api.GET("/events/:id/participants", optional, h.ListParticipants)
		api.POST("/events/:id/gallery", authed, h.AddGalleryImage)
		api.DELETE("/events/:id/gallery/:imageId", authed, h.DeleteGalleryImage)

		// Comments
		api.GET("/events/:id/comments", optional, h.ListComments)
		api.POST("/events/:id/comments", authed, h.AddComment)
		api.GET("/comments/:id", h.GetComment)
		api.PUT("/comments/:id", authed, h.UpdateComment)
		api.DELETE("/comments/:id", authed, h.DeleteComment)
		api.POST("/comments/:id/like", authed, h.ToggleCommentLike)

		// Notifications
		api.GET("/notifications", authed, h.ListNotifications)
		api.GET("/notifications/unread-count", authed, h.UnreadCount)
		api.PUT("/notifications/read-all", authed, h.MarkAllNotificationsRead)
		api.PUT("/notifications/:id/read", authed, h.MarkNotificationRead)
		api.DELETE("/notifications/:id", authed, h.DeleteNotification)
		api.POST("/notifications/broadcast", authed, admin, h.Broadcast)

		// Users
		api.PUT("/users/me", authed, h.UpdateProfile)
		api.GET("/users/me/favourites", authed, h.ListFavourites)
		api.GET("/users/me/events", authed, h.ListJoinedEvents)
		api.GET("/users/:id", h.GetUser)
		api.POST("/users/:id/follow", authed, h.ToggleFollow)
		api.GET("/users/:id/followers", h.ListFollowers)
		api.GET("/users/:id/following", h.ListFollowing)

		// Admin
		adm := api.Group("/admin", authed, admin)
		adm.GET("/users", h.ListUsers)
		adm.PUT("/users/:id/role", h.UpdateUserRole)
		adm.DELETE("/users/:id", h.DeleteUser)
		adm.GET("/events/pending", h.ListPendingEvents)
		adm.PUT("/events/:id/featured", h.SetFeatured)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if metricsHandler != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			metricsHandler.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
