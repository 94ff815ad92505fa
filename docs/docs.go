// Package docs is generated by swag from the annotations in cmd/api.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/assignments": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "Offer a quote to a cleaner",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/request.CreateAssignmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.AssignmentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/assignments/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "Get an assignment attempt",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.AssignmentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/assignments/{id}/accept": {
            "post": {
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "Cleaner accepts the offer",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.AssignmentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/assignments/{id}/decline": {
            "post": {
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "Cleaner declines the offer",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.AssignmentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/quotes/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Get a quote with its assignment state",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.QuoteResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/quotes/{id}/assignments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Assignment history of a quote",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.AssignmentResponse"}}}
                }
            }
        },
        "/quotes/{id}/auto-assign": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Pick the best available cleaner and offer the quote",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/request.AutoAssignRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.AssignmentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/quotes/{id}/lead-status": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Update the sales lead status",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/request.LeadStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.QuoteResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/quotes/{id}/unassign": {
            "post": {
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Clear the cleaner from a quote",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.QuoteResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/matches": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["matching"],
                "summary": "Rank the cleaners available for a window",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/request.MatchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MatchResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/notifications/unread": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Unread inbox notifications of a recipient",
                "parameters": [{"type": "string", "name": "recipient_id", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.NotificationResponse"}}}
                }
            }
        },
        "/notifications/{id}/read": {
            "post": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Mark an inbox notification as read",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.NotificationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "request.CreateAssignmentRequest": {
            "type": "object",
            "required": ["quote_id", "provider_id", "scheduled_date", "scheduled_time"],
            "properties": {
                "quote_id": {"type": "string"},
                "provider_id": {"type": "string"},
                "scheduled_date": {"type": "string", "example": "2026-10-20"},
                "scheduled_time": {"type": "string", "example": "09:30"}
            }
        },
        "request.AutoAssignRequest": {
            "type": "object",
            "required": ["scheduled_date", "start_time", "end_time"],
            "properties": {
                "scheduled_date": {"type": "string", "example": "2026-10-20"},
                "start_time": {"type": "string", "example": "09:00"},
                "end_time": {"type": "string", "example": "12:00"}
            }
        },
        "request.MatchRequest": {
            "type": "object",
            "required": ["service_date", "start_time", "end_time", "zip_code", "service_id"],
            "properties": {
                "service_date": {"type": "string", "example": "2026-10-20"},
                "start_time": {"type": "string", "example": "09:00"},
                "end_time": {"type": "string", "example": "12:00"},
                "zip_code": {"type": "string"},
                "service_id": {"type": "string"}
            }
        },
        "request.LeadStatusRequest": {
            "type": "object",
            "required": ["lead_status"],
            "properties": {
                "lead_status": {"type": "string", "enum": ["new", "contacted", "qualified", "booked", "lost"]}
            }
        },
        "response.AssignmentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "quote_id": {"type": "string"},
                "provider_id": {"type": "string"},
                "scheduled_date": {"type": "string"},
                "scheduled_time": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "accepted", "declined", "expired"]},
                "response_deadline": {"type": "string"},
                "responded_late": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "response.QuoteResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "status": {"type": "string"},
                "lead_status": {"type": "string"},
                "assigned_cleaner_id": {"type": "string"},
                "scheduled_date": {"type": "string"},
                "awaiting_response": {"type": "boolean"}
            }
        },
        "response.CandidateResponse": {
            "type": "object",
            "properties": {
                "provider_id": {"type": "string"},
                "name": {"type": "string"},
                "rating": {"type": "number"},
                "distance": {"type": "number"},
                "score": {"type": "number"}
            }
        },
        "response.MatchResponse": {
            "type": "object",
            "properties": {
                "matched": {"type": "boolean"},
                "provider": {"$ref": "#/definitions/response.CandidateResponse"},
                "candidates": {"type": "array", "items": {"$ref": "#/definitions/response.CandidateResponse"}}
            }
        },
        "response.NotificationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "recipient_id": {"type": "string"},
                "recipient_type": {"type": "string"},
                "event": {"type": "string"},
                "title": {"type": "string"},
                "message": {"type": "string"},
                "read": {"type": "boolean"},
                "sent_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Cleaning Assignments API",
	Description:      "Matches cleaners to quotes and tracks each offer until it is accepted, declined or expires.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
