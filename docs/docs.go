// Package docs provides the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {"200": {"description": "Login successful"}, "401": {"description": "Invalid credentials"}}
            }
        },
        "/api/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Refresh session tokens",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RefreshTokenRequest"}}],
                "responses": {"200": {"description": "New token pair"}, "401": {"description": "Token unknown, revoked or expired"}}
            }
        },
        "/add-user": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user account",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}],
                "responses": {"201": {"description": "Account created"}, "403": {"description": "Invalid teacher registration code"}, "409": {"description": "Email already exists"}}
            }
        },
        "/check-email": {
            "post": {
                "tags": ["auth"],
                "summary": "Check email existence",
                "responses": {"200": {"description": "Existence flag"}}
            }
        },
        "/reset-password": {
            "post": {
                "tags": ["auth"],
                "summary": "Reset password by email",
                "responses": {"200": {"description": "Password reset"}, "404": {"description": "No account for this email"}}
            }
        },
        "/user/change-password": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Change own password",
                "responses": {"200": {"description": "Password changed"}, "403": {"description": "No pending reset or foreign account"}}
            }
        },
        "/students": {
            "get": {
                "tags": ["students"],
                "summary": "List students for selection",
                "responses": {"200": {"description": "Student list"}}
            }
        },
        "/students-full": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["students"],
                "summary": "List students with full detail",
                "parameters": [{"name": "sortBy", "in": "query", "type": "string"}, {"name": "sortOrder", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "Student list"}}
            }
        },
        "/add-student": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["students"],
                "summary": "Add a student",
                "responses": {"201": {"description": "Student created"}, "403": {"description": "Not a teacher"}}
            }
        },
        "/students/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["students"],
                "summary": "Update a student",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "Student updated"}, "404": {"description": "Student not found"}}
            }
        },
        "/companies": {
            "get": {
                "tags": ["companies"],
                "summary": "List companies for selection",
                "responses": {"200": {"description": "Company list"}}
            }
        },
        "/companies-full": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["companies"],
                "summary": "List companies with full detail",
                "responses": {"200": {"description": "Company list"}}
            }
        },
        "/add-company": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["companies"],
                "summary": "Add a company",
                "responses": {"201": {"description": "Company created"}}
            }
        },
        "/companies/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["companies"],
                "summary": "Update a company",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "Company updated"}, "404": {"description": "Company not found"}}
            }
        },
        "/workplace": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["placements"],
                "summary": "List placements",
                "parameters": [{"name": "sortBy", "in": "query", "type": "string"}, {"name": "sortOrder", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "Placement rows"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["placements"],
                "summary": "Add a placement",
                "responses": {"201": {"description": "Placement created"}, "400": {"description": "Invalid request, date range or reference"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["placements"],
                "summary": "Update a placement",
                "responses": {"200": {"description": "Placement updated"}, "404": {"description": "Placement not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["placements"],
                "summary": "Delete a placement",
                "responses": {"200": {"description": "Placement deleted"}, "404": {"description": "Placement not found"}}
            }
        },
        "/report": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reports"],
                "summary": "Placement report",
                "responses": {"200": {"description": "Report rows"}}
            }
        },
        "/company-report": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reports"],
                "summary": "Company report",
                "responses": {"200": {"description": "Report rows"}}
            }
        },
        "/admin/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "List user accounts",
                "responses": {"200": {"description": "Account list"}, "403": {"description": "Not an admin"}}
            }
        },
        "/admin/reset-user-password": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Flag a user for password reset",
                "responses": {"200": {"description": "Reset flagged"}, "403": {"description": "Not an admin or admin target"}}
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.RefreshTokenRequest": {
            "type": "object",
            "required": ["refreshToken"],
            "properties": {
                "refreshToken": {"type": "string"}
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["nimi", "email", "password", "role"],
            "properties": {
                "nimi": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "role": {"type": "integer"},
                "student_id": {"type": "integer"},
                "teacher_code": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "JWT session token"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "PlacementTrack API",
	Description:      "Backend for tracking student work placements: students, host companies and placement periods.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
