// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

// Package validation provides struct validation using go-playground/validator v10.
//
// A singleton validator caches struct metadata and reports fields by their
// JSON names. Besides the built-in tags it registers:
//
//   - notblank: string is not empty after trimming whitespace
//   - roomid: usable as a URL path segment and CSV cell
//
// Failures convert to the API's VALIDATION_ERROR shape with ToAPIError:
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondErrorWithDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
//	    return
//	}
package validation
