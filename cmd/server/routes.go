package main

import (
	"github.com/gin-gonic/gin"
	"member-hub.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	memberHandler       *handlers.MemberHandler
	companyHandler      *handlers.CompanyHandler
	eventHandler        *handlers.EventHandler
	notificationHandler *handlers.NotificationHandler
	badgeHandler        *handlers.BadgeHandler
	authMiddleware      gin.HandlerFunc
	staffOnly           gin.HandlerFunc
	adminOnly           gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/2fa/verify", d.authHandler.VerifyTwoFactor)
			auth.POST("/verify-email", d.authHandler.VerifyEmail)
			auth.POST("/password/forgot", d.authHandler.RequestPasswordReset)
			auth.POST("/password/reset", d.authHandler.ResetPassword)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Member routes (public read, protected write)
		members := v1.Group("/members")
		{
			members.GET("", d.memberHandler.List)
			members.GET("/:id", d.memberHandler.GetByID)
			members.GET("/username/:userName", d.memberHandler.GetByUserName)
			members.GET("/slug/:slug", d.memberHandler.GetBySlug)
			members.GET("/:id/followers", d.memberHandler.ListFollowers)
			members.GET("/:id/following", d.memberHandler.ListFollowing)
			members.GET("/:id/badges", d.badgeHandler.ListMemberBadges)
		}
		membersAuthed := v1.Group("/members")
		membersAuthed.Use(d.authMiddleware)
		{
			membersAuthed.PUT("/:id", d.memberHandler.Update)
			membersAuthed.POST("/:id/follow", d.memberHandler.Follow)
			membersAuthed.DELETE("/:id/follow", d.memberHandler.Unfollow)
			membersAuthed.POST("/:id/socials", d.memberHandler.AddSocialLink)
			membersAuthed.DELETE("/:id/socials/:linkId", d.memberHandler.RemoveSocialLink)
			membersAuthed.POST("/:id/links", d.memberHandler.AddExternalLink)
			membersAuthed.DELETE("/:id/links/:linkId", d.memberHandler.RemoveExternalLink)
			membersAuthed.POST("/:id/avatar", d.memberHandler.SetAvatar)
			membersAuthed.POST("/:id/cover", d.memberHandler.SetCoverImage)
		}
		membersStaff := v1.Group("/members")
		membersStaff.Use(d.authMiddleware, d.staffOnly)
		{
			membersStaff.POST("", d.memberHandler.Create)
			membersStaff.DELETE("/:id", d.memberHandler.Delete)
		}

		// Account self-service routes (protected)
		me := v1.Group("/users/me")
		me.Use(d.authMiddleware)
		{
			me.PUT("", d.userHandler.UpdateProfile)
			me.POST("/2fa/enable", d.userHandler.EnableTwoFactor)
			me.POST("/2fa/disable", d.userHandler.DisableTwoFactor)
		}

		// Account administration routes (admin only)
		users := v1.Group("/users")
		users.Use(d.authMiddleware, d.adminOnly)
		{
			users.GET("", d.userHandler.List)
			users.GET("/:id", d.userHandler.GetByID)
			users.PUT("/:id", d.userHandler.Update)
			users.DELETE("/:id", d.userHandler.Delete)
		}

		// Company routes (public read, staff write)
		companies := v1.Group("/companies")
		{
			companies.GET("", d.companyHandler.List)
			companies.GET("/:id", d.companyHandler.GetByID)
			companies.GET("/:id/members", d.companyHandler.ListMembers)
			companies.GET("/:id/events", d.companyHandler.ListEvents)
		}
		companiesStaff := v1.Group("/companies")
		companiesStaff.Use(d.authMiddleware, d.staffOnly)
		{
			companiesStaff.POST("", d.companyHandler.Create)
			companiesStaff.PUT("/:id", d.companyHandler.Update)
			companiesStaff.DELETE("/:id", d.companyHandler.Delete)
		}

		// Event routes (public read, staff write)
		events := v1.Group("/events")
		{
			events.GET("", d.eventHandler.List)
			events.GET("/:id", d.eventHandler.GetByID)
		}
		eventsStaff := v1.Group("/events")
		eventsStaff.Use(d.authMiddleware, d.staffOnly)
		{
			eventsStaff.POST("", d.eventHandler.Create)
			eventsStaff.PUT("/:id", d.eventHandler.Update)
			eventsStaff.DELETE("/:id", d.eventHandler.Delete)
		}

		// Notification routes (public read, staff write)
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", d.notificationHandler.List)
			notifications.GET("/active", d.notificationHandler.ListActive)
			notifications.GET("/:id", d.notificationHandler.GetByID)
		}
		notificationsStaff := v1.Group("/notifications")
		notificationsStaff.Use(d.authMiddleware, d.staffOnly)
		{
			notificationsStaff.POST("", d.notificationHandler.Create)
			notificationsStaff.PUT("/:id", d.notificationHandler.Update)
			notificationsStaff.POST("/:id/deactivate", d.notificationHandler.Deactivate)
			notificationsStaff.DELETE("/:id", d.notificationHandler.Delete)
		}

		// Badge routes (public read, staff write and assignment)
		badges := v1.Group("/badges")
		{
			badges.GET("", d.badgeHandler.List)
			badges.GET("/:id", d.badgeHandler.GetByID)
			badges.GET("/:id/members", d.badgeHandler.ListHolders)
		}
		badgesStaff := v1.Group("/badges")
		badgesStaff.Use(d.authMiddleware, d.staffOnly)
		{
			badgesStaff.POST("", d.badgeHandler.Create)
			badgesStaff.PUT("/:id", d.badgeHandler.Update)
			badgesStaff.DELETE("/:id", d.badgeHandler.Delete)
			badgesStaff.POST("/assign", d.badgeHandler.Assign)
			badgesStaff.DELETE("/:id/members/:memberId", d.badgeHandler.Unassign)
			badgesStaff.PUT("/assignments/:assignmentId", d.badgeHandler.UpdateAssignment)
		}
	}
}
