// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser contains the serialization and deserialization
// helpers which are shared by the resource packages.
package serdser

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/momeni/ddlwork/pkg/core/cerr"
)

// Bind binds the request into req using the b binding and validates
// it. If it fails, the error response is written and false is returned.
func Bind(c *gin.Context, req any, b binding.Binding) bool {
	switch err := c.ShouldBindWith(req, b).(type) {
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		if err == nil {
			return true
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

// AddErr appends msgs to the name field errors, allocating errs if
// it was nil.
func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	(*errs)[name] = append((*errs)[name], msgs...)
}

// Assert adds msgs to the name field errors unless ok is true.
func Assert(errs *map[string][]string, ok bool, name string, msgs ...string) bool {
	if ok {
		return true
	}
	AddErr(errs, name, msgs...)
	return false
}

// SerErr writes err as the JSON response. The status code is taken
// from a wrapped *cerr.Error, or is deduced from the wrapped error
// kinds, falling back to 500.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		c.JSON(ce.HTTPStatusCode, gin.H{
			"detail": ce.Err.Error(),
		})
		return
	}
	c.JSON(StatusCode(err), gin.H{
		"detail": err.Error(),
	})
}

// StatusCode maps the core error kinds to HTTP status codes.
// The status code of a wrapped *cerr.Error takes precedence.
func StatusCode(err error) int {
	var ce *cerr.Error
	var msve *cerr.MismatchingSemVerError
	switch {
	case errors.As(err, &ce):
		return ce.HTTPStatusCode
	case errors.As(err, &msve):
		return http.StatusConflict
	case errors.Is(err, cerr.ErrUnsupported),
		errors.Is(err, cerr.ErrMigrationDefinition),
		errors.Is(err, cerr.ErrMalformedExpression):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
