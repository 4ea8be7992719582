package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/MohitAryal/Database-for-social-media/pkg/logging"
	"github.com/MohitAryal/Database-for-social-media/pkg/telemetry"
)

// HandlerFunc handles one route and returns the response body
type HandlerFunc func(c *gin.Context) (interface{}, error)

// message is the body of operations that return no entity
type message struct {
	Message string `json:"message"`
}

// handle wraps h with a span and maps returned errors to responses
func (r *Router) handle(name string, h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := telemetry.StartSpan(c.Request.Context(), "api."+name)
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		result, err := h(c)
		if err != nil {
			status, detail := statusOf(err)
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= http.StatusInternalServerError {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				logging.WithRequestID(c.GetString(requestIDKey)).Error("Request failed",
					zap.String("component", "api-router"),
					zap.String("handler", name),
					zap.Error(err))
			}
			c.JSON(status, gin.H{"detail": detail})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// pathID parses a positive integer path parameter
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, NewError(http.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

// bind decodes the request into obj. Requests without a body, such as
// DELETE calls from clients that cannot send one, are read from the query.
func bind(c *gin.Context, obj interface{}) error {
	var err error
	if c.Request.ContentLength == 0 {
		err = c.ShouldBindQuery(obj)
	} else {
		err = c.ShouldBindJSON(obj)
	}
	if err != nil {
		return badRequest(err)
	}
	return nil
}
