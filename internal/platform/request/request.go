// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/toondex/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Unknown fields are rejected so a typo in an intent payload surfaces as a 400
instead of a silent no-op.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and parses it as an integer.

Returns:
  - int: The parsed value
  - error: A VALIDATION_ERROR naming the parameter if it is not an integer
*/
func IntParam(request *http.Request, name string) (int, error) {
	raw := Param(request, name)

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validate.RequiredError(name, "Must be an integer")
	}

	return value, nil
}
