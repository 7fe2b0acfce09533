package app

import (
	"pfe_service/docs"
	"pfe_service/internal/middleware"
	"pfe_service/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.Use(middleware.Identity())
	{
		api.GET("/health", c.health.HealthCheck)

		a.registerPfeRoutes(api, c)
		a.registerProposalRoutes(api, c)
		a.registerTechnicalTestRoutes(api, c)
		a.registerSavedPfeRoutes(api, c)
		a.registerOfferRoutes(api, c)
	}
}

func (a *App) registerPfeRoutes(rg *gin.RouterGroup, c *controllers) {
	pfe := rg.Group("/pfe")
	{
		pfe.POST("", c.pfe.CreatePfe)
		pfe.GET("", c.pfe.GetAllPfes)
		pfe.GET("/filter", c.pfe.FilterPfes)
		pfe.GET("/student/:studentId", c.pfe.GetPfesByStudentID)
		pfe.GET("/:id", c.pfe.GetPfeByID)
		pfe.PUT("/:id", c.pfe.UpdatePfe)
		pfe.DELETE("/:id", c.pfe.DeletePfe)
	}
}

func (a *App) registerProposalRoutes(rg *gin.RouterGroup, c *controllers) {
	proposals := rg.Group("/proposals")
	{
		proposals.POST("", c.proposal.CreateProposal)
		proposals.GET("", c.proposal.GetAllProposals)
		proposals.GET("/:id", c.proposal.GetProposalByID)
		proposals.DELETE("/:id", c.proposal.DeleteProposal)
		proposals.PATCH("/:id/status", c.proposal.UpdateProposalStatus)
		proposals.POST("/:id/accept-proposal", c.proposal.AcceptProposal)
		proposals.POST("/:id/send-interview-invitation", c.proposal.SendInterviewInvitation)
		proposals.GET("/student/:studentId", c.proposal.GetProposalsByStudentID)
		proposals.GET("/company/:companyId", c.proposal.GetProposalsByCompanyID)
		proposals.GET("/pfe/:pfeId", c.proposal.GetProposalsByPfeID)
	}
}

func (a *App) registerTechnicalTestRoutes(rg *gin.RouterGroup, c *controllers) {
	tests := rg.Group("/technical-tests")
	{
		tests.POST("/submit", c.technicalTest.SubmitTest)
		tests.GET("/student/:studentId", c.technicalTest.GetTestsByStudentID)
		tests.GET("/company/:companyId", c.technicalTest.GetTestsByCompanyID)
		tests.GET("/:id", c.technicalTest.GetTestByID)
		tests.DELETE("/:id", c.technicalTest.DeleteTest)
	}
}

func (a *App) registerSavedPfeRoutes(rg *gin.RouterGroup, c *controllers) {
	saved := rg.Group("/saved-pfes")
	{
		saved.POST("/:pfeId", c.savedPfe.SavePfe)
		saved.DELETE("/:pfeId", c.savedPfe.UnsavePfe)
		saved.GET("", c.savedPfe.GetSavedPfes)
		saved.GET("/:pfeId/is-saved", c.savedPfe.IsPfeSaved)
	}
}

func (a *App) registerOfferRoutes(rg *gin.RouterGroup, c *controllers) {
	offers := rg.Group("/internship-offers")
	{
		offers.POST("", c.internshipOffer.CreateOffer)
		offers.GET("", c.internshipOffer.GetAllOffers)
		offers.GET("/:id", c.internshipOffer.GetOfferByID)
		offers.PUT("/:id", c.internshipOffer.UpdateOffer)
		offers.DELETE("/:id", c.internshipOffer.DeleteOffer)
		offers.GET("/company/:companyId", c.internshipOffer.GetOffersByCompanyID)
	}

	interests := rg.Group("/student-interests")
	{
		interests.POST("", c.studentInterest.CreateInterest)
		interests.GET("/:id", c.studentInterest.GetInterestByID)
		interests.PUT("/:id", c.studentInterest.UpdateInterest)
		interests.DELETE("/:id", c.studentInterest.DeleteInterest)
		interests.GET("/student/:studentId", c.studentInterest.GetInterestsByStudentID)
		interests.GET("/internship-offer/:internshipOfferId", c.studentInterest.GetInterestsByOfferID)
	}
}
