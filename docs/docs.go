// Package docs exposes the OpenAPI definition served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new student",
                "responses": {
                    "201": {"description": "created"},
                    "400": {"description": "invalid request"},
                    "409": {"description": "email already registered"}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "responses": {
                    "200": {"description": "success"},
                    "401": {"description": "invalid credentials"}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "healthy"},
                    "503": {"description": "database unreachable"}
                }
            }
        },
        "/profile": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["auth"],
                "summary": "Current user profile",
                "responses": {
                    "200": {"description": "success"},
                    "401": {"description": "unauthorized"}
                }
            }
        },
        "/verify": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["auth"],
                "summary": "Verify token",
                "responses": {
                    "200": {"description": "success"},
                    "401": {"description": "unauthorized"}
                }
            }
        },
        "/users/level-status": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["users"],
                "summary": "Level and XP progress of the current user",
                "responses": {
                    "200": {"description": "success"},
                    "401": {"description": "unauthorized"}
                }
            }
        },
        "/assessment/questions": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["assessment"],
                "summary": "Assessment questions",
                "responses": {
                    "200": {"description": "success"}
                }
            }
        },
        "/assessment/submit": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["assessment"],
                "summary": "Submit the assessment",
                "responses": {
                    "200": {"description": "success"},
                    "400": {"description": "validation error"},
                    "409": {"description": "assessment already completed"}
                }
            }
        },
        "/assessment/my-result": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["assessment"],
                "summary": "Latest result of the current user",
                "responses": {
                    "200": {"description": "success"},
                    "404": {"description": "no assessment completed yet"}
                }
            }
        },
        "/assessment/results/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["assessment"],
                "summary": "Fetch one assessment result",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "success"},
                    "403": {"description": "forbidden"},
                    "404": {"description": "not found"}
                }
            }
        },
        "/assessment/results/{id}/report": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["assessment"],
                "summary": "Download a PDF career report",
                "produces": ["application/pdf"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "PDF report"},
                    "403": {"description": "forbidden"},
                    "404": {"description": "not found"}
                }
            }
        },
        "/admin/dashboard": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["admin"],
                "summary": "Admin dashboard",
                "responses": {
                    "200": {"description": "success"}
                }
            }
        },
        "/admin/students": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["admin"],
                "summary": "List students",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "success"}
                }
            }
        },
        "/admin/students/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["admin"],
                "summary": "Student details",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "success"},
                    "404": {"description": "student not found"}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["admin"],
                "summary": "Delete a student",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "success"},
                    "404": {"description": "student not found"}
                }
            }
        },
        "/admin/students/{id}/report": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["admin"],
                "summary": "Download one student's PDF report",
                "produces": ["application/pdf"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "PDF report"},
                    "404": {"description": "student or result not found"}
                }
            }
        },
        "/admin/reports/bulk": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["admin"],
                "summary": "Bulk export reports",
                "produces": ["application/zip"],
                "responses": {
                    "200": {"description": "ZIP archive"},
                    "404": {"description": "no completed assessments"}
                }
            }
        },
        "/admin/analytics/assessments": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["admin"],
                "summary": "Assessment analytics",
                "responses": {
                    "200": {"description": "success"}
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Career Guidance API",
	Description:      "Backend server for the student career guidance platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
