// Package docs holds the generated swagger specification.
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
        "/exec": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Exec"],
                "summary": "Dispatch a read action",
                "description": "Runs one of the registered read actions (getTasks, getSubjects, getAnalytics, ...). Domain failures answer 200 with success=false.",
                "parameters": [
                    {
                        "type": "string",
                        "name": "action",
                        "in": "query",
                        "required": true,
                        "description": "Action name"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Exec"],
                "summary": "Dispatch a write action",
                "description": "Runs one of the registered write actions (addTask, saveCompleteStudySession, update, ...). Domain failures answer 200 with success=false.",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Action and payload",
                        "schema": {"$ref": "#/definitions/httpserver.execWriteReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Unreadable body", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/bootstrap": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Bootstrap"],
                "summary": "Run the bootstrap sequence",
                "description": "Loads settings, subjects, categories and user data in order and publishes the result. Re-entrant starts are rejected while a run is in flight.",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/bootstrap/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Bootstrap"],
                "summary": "Bootstrap state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy"}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready"}}
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive"}}
            }
        }
    },
    "definitions": {
        "httpserver.execWriteReq": {
            "type": "object",
            "properties": {
                "action": {"type": "string"},
                "payload": {"type": "object"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "message": {"type": "string"},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Study Tracker API",
	Description:      "Study tracking service backed by Google Sheets: tasks, sessions, subjects, achievements and on-demand analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
