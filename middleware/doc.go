// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request IDs

WithRequestID gives every request an ID (a new UUID unless the client sent
X-Request-ID), stores it in the context and echoes it in the response:

	handler := middleware.WithRequestID(mux)
	id := middleware.RequestID(r.Context())

# Logging

WithLogging wraps a handler with request logging:

	mux.HandleFunc("GET /", middleware.WithLogging(handler.Index))

Logs request start and completion with method, path, status, duration and
request ID using slog.

# JSON Responses

JSONResponse writes JSON with the given status code:

	middleware.JSONResponse(w, http.StatusOK, data)

ErrorResponse writes a standard error format:

	middleware.ErrorResponse(w, http.StatusNotFound, "question not found")
	// {"error": "Not Found", "message": "question not found"}

# CORS

CORS allows cross-origin reads of the JSON API:

	mux.Handle("GET /api/questions", middleware.CORS(apiHandler))

Reflects the request Origin (or "*") and answers preflight requests.

# Client IP

GetClientIP extracts the client IP, checking in order:

 1. X-Forwarded-For (first IP)
 2. X-Real-IP
 3. RemoteAddr (port stripped)
*/
package middleware
