package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Students API",
        "description": "Role-scoped access to student records. The token header is unverified and caller-controlled unless the server runs with AUTH_TOKEN_MODE=jwt.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Role-scoped student records"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Store unreachable"}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students visible to the caller's role",
                "parameters": [
                    {"name": "token", "in": "header", "type": "string", "required": true, "description": "Identity token naming a role"},
                    {"name": "collegeId", "in": "query", "type": "string", "description": "Required for admin"},
                    {"name": "section", "in": "query", "type": "string", "description": "Required for teacher"},
                    {"name": "studentId", "in": "query", "type": "string", "description": "Required for student"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}},
                    "400": {"description": "Missing scope parameter or invalid role", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "401": {"description": "No token", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "parameters": [
                    {"name": "token", "in": "header", "type": "string", "required": true, "description": "Must resolve to super_admin"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentPayload"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "401": {"description": "No token", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "403": {"description": "Not super_admin", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/students/export": {
            "get": {
                "tags": ["Students"],
                "summary": "Export students visible to the caller's role",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "token", "in": "header", "type": "string", "required": true},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "collegeId", "in": "query", "type": "string"},
                    {"name": "section", "in": "query", "type": "string"},
                    {"name": "studentId", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Document"},
                    "400": {"description": "Missing scope parameter, invalid role or format", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "401": {"description": "No token", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/students/{id}": {
            "put": {
                "tags": ["Students"],
                "summary": "Replace every field of a student",
                "parameters": [
                    {"name": "token", "in": "header", "type": "string", "required": true, "description": "Must resolve to super_admin"},
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentPayload"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "401": {"description": "No token", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "403": {"description": "Not super_admin", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "parameters": [
                    {"name": "token", "in": "header", "type": "string", "required": true, "description": "Must resolve to super_admin"},
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "401": {"description": "No token", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "403": {"description": "Not super_admin", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "section": {"type": "string"},
                "college_id": {"type": "integer"}
            }
        },
        "StudentPayload": {
            "type": "object",
            "required": ["name", "section", "college_id"],
            "properties": {
                "name": {"type": "string"},
                "section": {"type": "string"},
                "college_id": {"type": "integer"}
            }
        },
        "MessageBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "id": {"type": "integer"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
