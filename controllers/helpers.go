package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Infinite-Leo/CollectiQ/middlewares"
)

// fail hands the error to the centralized handler middleware.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindJSON decodes the request body, tagging decode failures so the error
// handler answers 400 rather than 500. Returns false when binding failed and
// the request is already aborted.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		fail(c, middlewares.Binding(err))
		return false
	}
	return true
}

func getInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// uuidQuery parses an optional uuid query parameter; a malformed value is
// treated as absent rather than an error, matching the permissive filters of
// the list endpoints.
func uuidQuery(c *gin.Context, key string) *uuid.UUID {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func boolQuery(c *gin.Context, key string) *bool {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	b := v == "true"
	return &b
}
