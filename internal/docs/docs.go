// Package docs registra el documento OpenAPI servido en /swagger/doc.json.
// Se mantiene a mano en sincronía con las anotaciones godoc de los handlers.
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
        "/admin/animals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Listar animales (admin)",
                "parameters": [
                    {"type": "string", "description": "Token firmado, sin prefijo Bearer", "name": "Authorization", "in": "header", "required": true},
                    {"type": "integer", "description": "Página (>=1, default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Tamaño de página (>=1, default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/animals.animalResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/admin/training": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Listar sesiones de entrenamiento (admin)",
                "parameters": [
                    {"type": "string", "description": "Token firmado, sin prefijo Bearer", "name": "Authorization", "in": "header", "required": true},
                    {"type": "integer", "description": "Página (>=1, default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Tamaño de página (>=1, default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/training.trainingLogResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/admin/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Listar usuarios (admin)",
                "parameters": [
                    {"type": "string", "description": "Token firmado, sin prefijo Bearer", "name": "Authorization", "in": "header", "required": true},
                    {"type": "integer", "description": "Página (>=1, default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Tamaño de página (>=1, default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/users.userResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/animal": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "description": "Crea un animal para un usuario existente. El dueño no se puede cambiar luego.",
                "summary": "Crear animal",
                "parameters": [
                    {"type": "string", "description": "Token firmado, sin prefijo Bearer", "name": "Authorization", "in": "header", "required": true},
                    {"description": "Datos del animal", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/animals.createAnimalRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.animalResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}}
                }
            }
        },
        "/training": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["training"],
                "description": "El animal debe pertenecer al usuario indicado. Ids inexistentes =\u003e \"invalid user or animal id\".",
                "summary": "Registrar sesión de entrenamiento",
                "parameters": [
                    {"type": "string", "description": "Token firmado, sin prefijo Bearer", "name": "Authorization", "in": "header", "required": true},
                    {"description": "Sesión", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/training.createTrainingLogRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/training.trainingLogResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/user": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "description": "Crea un usuario con el password hasheado. La respuesta no incluye el password.",
                "summary": "Registrar usuario",
                "parameters": [
                    {"description": "Datos del usuario", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.createUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        },
        "/user/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "description": "Devuelve un token firmado (1h). Mismo error para email inexistente o password incorrecto.",
                "summary": "Login",
                "parameters": [
                    {"description": "Credenciales", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.loginResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/respond.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "respond.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "animals.animalResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "ownerId": {"type": "string"},
                "species": {"type": "string"}
            }
        },
        "animals.createAnimalRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "ownerId": {"type": "string"},
                "species": {"type": "string"}
            }
        },
        "training.createTrainingLogRequest": {
            "type": "object",
            "properties": {
                "animalId": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "training.trainingLogResponse": {
            "type": "object",
            "properties": {
                "animalId": {"type": "string"},
                "createdAt": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "users.createUserRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "users.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "users.loginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "users.userResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Animal Training API",
	Description:      "Usuarios, animales y registro de sesiones de entrenamiento.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
