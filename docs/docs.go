// Package docs holds the OpenAPI description served by Swagger UI.
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
        "/add": {
            "post": {
                "description": "Records an exercise for an existing user. An empty or invalid date means now.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Exercises"],
                "summary": "Log an exercise",
                "operationId": "addExercise",
                "parameters": [
                    {
                        "description": "Exercise",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.AddExerciseRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AddExerciseResponse"}},
                    "400": {"description": "Unknown UserID | validation message", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/log": {
            "get": {
                "description": "Lists a user's exercises dated within [from, to], newest first.",
                "produces": ["application/json"],
                "tags": ["Exercises"],
                "summary": "Read a user's exercise log",
                "operationId": "exerciseLog",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userId", "in": "query", "required": true},
                    {"type": "string", "description": "Lower bound (inclusive), e.g. 2024-01-01", "name": "from", "in": "query"},
                    {"type": "string", "description": "Upper bound (inclusive), defaults to now", "name": "to", "in": "query"},
                    {"type": "integer", "description": "Maximum number of entries", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LogResponse"}},
                    "400": {"description": "Unknown UserID", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/new-user": {
            "post": {
                "description": "Registers a new user. Usernames are unique and at most 25 characters.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Create a user",
                "operationId": "createUser",
                "parameters": [
                    {
                        "description": "New user",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.NewUserRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.NewUserResponse"}},
                    "400": {"description": "Username taken | validation message", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/users": {
            "get": {
                "description": "Returns every user record as stored.",
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "List users",
                "operationId": "listUsers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "domain.User": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handlers.AddExerciseRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2024-01-02"},
                "description": {"type": "string", "example": "morning run"},
                "duration": {"type": "string", "example": "30"},
                "userId": {"type": "string", "example": "9f1c2a4e-7f43-4b57-8f7e-1d2c3b4a5e6f"}
            }
        },
        "handlers.AddExerciseResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "Tue Jan 02 2024"},
                "description": {"type": "string", "example": "morning run"},
                "duration": {"type": "integer", "example": 30},
                "id": {"type": "string", "example": "9f1c2a4e-7f43-4b57-8f7e-1d2c3b4a5e6f"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "handlers.LogEntry": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "Tue Jan 02 2024"},
                "description": {"type": "string", "example": "morning run"},
                "duration": {"type": "integer", "example": 30}
            }
        },
        "handlers.LogResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "9f1c2a4e-7f43-4b57-8f7e-1d2c3b4a5e6f"},
                "log": {"type": "array", "items": {"$ref": "#/definitions/handlers.LogEntry"}},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "handlers.NewUserRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string", "example": "alice"}
            }
        },
        "handlers.NewUserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "9f1c2a4e-7f43-4b57-8f7e-1d2c3b4a5e6f"},
                "username": {"type": "string", "example": "alice"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/exercise",
	Schemes:          []string{},
	Title:            "Exercise Tracker API",
	Description:      "Create users, log exercises and read exercise logs. Errors are plain text.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
