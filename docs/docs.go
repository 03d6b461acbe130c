// Package docs registers the OpenAPI description served by gin-swagger.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        },
        "/augment": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Augment"],
                "summary": "Compute page shortcuts",
                "parameters": [
                    {"description": "Page URL", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AugmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AugmentResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/render": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/html"],
                "tags": ["Augment"],
                "summary": "Render page shortcuts",
                "parameters": [
                    {"description": "Page URL and document", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RenderRequest"}}
                ],
                "responses": {
                    "200": {"description": "Rendered document", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/settings/token": {
            "put": {
                "security": [{"SettingsAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Settings"],
                "summary": "Store the GitHub token",
                "parameters": [
                    {"description": "GitHub token", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "501": {"description": "Not Implemented", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"SettingsAuth": []}],
                "tags": ["Settings"],
                "summary": "Remove the GitHub token",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "501": {"description": "Not Implemented", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AugmentRequest": {
            "type": "object",
            "required": ["url"],
            "properties": {"url": {"type": "string"}}
        },
        "dto.RenderRequest": {
            "type": "object",
            "required": ["html", "url"],
            "properties": {"html": {"type": "string"}, "url": {"type": "string"}}
        },
        "dto.UpstreamResponse": {
            "type": "object",
            "properties": {"full_name": {"type": "string"}, "url": {"type": "string"}}
        },
        "dto.ForkResponse": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "name": {"type": "string"},
                "owner": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "dto.AugmentResult": {
            "type": "object",
            "properties": {
                "forks": {"type": "array", "items": {"$ref": "#/definitions/dto.ForkResponse"}},
                "own_repository": {"type": "boolean"},
                "repository": {"type": "string"},
                "run_id": {"type": "string"},
                "skipped": {"type": "string"},
                "upstream": {"$ref": "#/definitions/dto.UpstreamResponse"},
                "url": {"type": "string"}
            }
        },
        "dto.TokenRequest": {
            "type": "object",
            "required": ["token"],
            "properties": {"token": {"type": "string"}}
        },
        "dto.TokenResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "credential_source": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "SettingsAuth": {
            "description": "HS256 settings token",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Go to Fork API",
	Description:      "Upstream and fork shortcuts for GitHub repository pages",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
