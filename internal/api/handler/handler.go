// Package handler binds the HTTP surface to the services. Handlers
// validate input, resolve the acting user and translate service
// errors into status codes; business rules live in the services.
package handler

import (
	"vidtube/internal/pipeline"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseObjectIDParam reads a path parameter as an ObjectID.
func parseObjectIDParam(c *gin.Context, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Param(name))
}

// parsePagination normalizes the page/limit query parameters.
func parsePagination(c *gin.Context) pipeline.Page {
	return pipeline.NormalizePage(c.Query("page"), c.Query("limit"))
}
