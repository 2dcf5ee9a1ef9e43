package routes

import (
	"quotesmith/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes     = "/quotes"
	PathParameters = "/parameters"
	PathPayments   = "/payments"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, parameterHandler *handlers.ParameterHandler, paymentHandler *handlers.DepositPaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.GET("/:id/csv", quoteHandler.ExportQuoteCSV)
		quotes.PATCH("/:id/accept", quoteHandler.AcceptQuote)
		quotes.PATCH("/:id/decline", quoteHandler.DeclineQuote)
		quotes.POST("/:id/send", quoteHandler.SendQuote)
	}

	parameters := rg.Group(PathParameters)
	{
		parameters.GET("/:industry", parameterHandler.GetParameters)
		parameters.PUT("/:industry", parameterHandler.PutParameters)
		parameters.DELETE("/:industry", parameterHandler.DeleteParameters)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.CreatePaymentByQuoteID)
		payments.GET("/:quote_id", paymentHandler.GetPaymentByQuoteID)
	}
}
