// Package docs holds the OpenAPI description served under /docs.
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
    "securityDefinitions": {
        "BasicAuth": {"type": "basic"},
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BasicAuth": []}, {"BearerAuth": []}],
    "paths": {
        "/auth/token": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange basic credentials for a bearer token",
                "produces": ["application/json"],
                "security": [{"BasicAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.TokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/authors": {
            "get": {
                "tags": ["authors"],
                "summary": "List authors",
                "produces": ["application/hal+json", "application/xml"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AuthorListResource"}}}
            },
            "post": {
                "tags": ["authors"],
                "summary": "Create an author",
                "consumes": ["application/json"],
                "produces": ["application/hal+json", "application/xml"],
                "parameters": [{"in": "body", "name": "author", "required": true, "schema": {"$ref": "#/definitions/model.CreateAuthorRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.AuthorResource"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/authors/search": {
            "get": {
                "tags": ["authors"],
                "summary": "Find authors by last name",
                "produces": ["application/hal+json", "application/xml"],
                "parameters": [{"type": "string", "name": "lastname", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AuthorListResource"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/authors/{id}": {
            "get": {
                "tags": ["authors"],
                "summary": "Get an author",
                "produces": ["application/hal+json", "application/xml"],
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AuthorResource"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "tags": ["authors"],
                "summary": "Delete an author and drop it from its books",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/books": {
            "get": {
                "tags": ["books"],
                "summary": "List books",
                "produces": ["application/hal+json", "application/xml"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.BookListResource"}}}
            },
            "post": {
                "tags": ["books"],
                "summary": "Create a book",
                "consumes": ["application/json"],
                "produces": ["application/hal+json", "application/xml"],
                "parameters": [{"in": "body", "name": "book", "required": true, "schema": {"$ref": "#/definitions/model.CreateBookRequest"}}],
                "responses": {
                    "201": {"description": "Created", "headers": {"ETag": {"type": "string"}, "Location": {"type": "string"}}, "schema": {"$ref": "#/definitions/model.BookResource"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/books/search": {
            "get": {
                "tags": ["books"],
                "summary": "Search books by isbn or title",
                "produces": ["application/hal+json", "application/xml"],
                "parameters": [
                    {"type": "string", "name": "isbn", "in": "query"},
                    {"type": "string", "name": "title", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.BookListResource"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/books/{id}": {
            "get": {
                "tags": ["books"],
                "summary": "Get a book",
                "produces": ["application/hal+json", "application/xml"],
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "headers": {"ETag": {"type": "string"}, "Last-Modified": {"type": "string"}}, "schema": {"$ref": "#/definitions/model.BookResource"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "put": {
                "tags": ["books"],
                "summary": "Update a book",
                "description": "Requires If-Match or If-Unmodified-Since.",
                "consumes": ["application/json"],
                "produces": ["application/hal+json", "application/xml"],
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "If-Match", "in": "header"},
                    {"type": "string", "name": "If-Unmodified-Since", "in": "header"},
                    {"in": "body", "name": "book", "required": true, "schema": {"$ref": "#/definitions/model.UpdateBookRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.BookResource"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}},
                    "412": {"description": "Precondition Failed", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "tags": ["books"],
                "summary": "Delete a book",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["users"],
                "summary": "List users",
                "produces": ["application/hal+json", "application/xml"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.UserListResource"}}}
            },
            "post": {
                "tags": ["users"],
                "summary": "Create a user",
                "consumes": ["application/json"],
                "produces": ["application/hal+json", "application/xml"],
                "parameters": [{"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/model.CreateUserRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.UserResource"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/users/search": {
            "get": {
                "tags": ["users"],
                "summary": "Find a user by username",
                "produces": ["application/hal+json", "application/xml"],
                "parameters": [{"type": "string", "name": "username", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.UserListResource"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "tags": ["users"],
                "summary": "Get a user",
                "produces": ["application/hal+json", "application/xml"],
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.UserResource"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "response.Link": {"type": "object", "properties": {"href": {"type": "string"}}},
        "response.Links": {"type": "object", "properties": {"self": {"$ref": "#/definitions/response.Link"}}},
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/validate.FieldError"}}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "error": {"$ref": "#/definitions/response.ErrorBody"}}
        },
        "validate.FieldError": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "message": {"type": "string"}}
        },
        "model.TokenResponse": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "token_type": {"type": "string"}, "expires_at": {"type": "string"}}
        },
        "model.CreateAuthorRequest": {
            "type": "object",
            "required": ["gender", "firstname", "lastname"],
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "gender": {"type": "string", "enum": ["MALE", "FEMALE"]},
                "firstname": {"type": "string", "minLength": 1, "maxLength": 50},
                "lastname": {"type": "string", "minLength": 1, "maxLength": 50}
            }
        },
        "model.AuthorResource": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "gender": {"type": "string", "enum": ["MALE", "FEMALE"]},
                "firstname": {"type": "string"},
                "lastname": {"type": "string"},
                "_links": {"$ref": "#/definitions/response.Links"}
            }
        },
        "model.AuthorListResource": {
            "type": "object",
            "properties": {
                "authors": {"type": "array", "items": {"$ref": "#/definitions/model.AuthorResource"}},
                "_links": {"$ref": "#/definitions/response.Links"}
            }
        },
        "model.CreateBookRequest": {
            "type": "object",
            "required": ["title", "isbn", "genre"],
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "title": {"type": "string", "minLength": 1, "maxLength": 100},
                "isbn": {"type": "string", "minLength": 17, "maxLength": 26, "example": "978-3-4534-3577-3"},
                "description": {"type": "string", "maxLength": 2000},
                "genre": {"type": "string", "enum": ["FANTASY", "HORROR", "HUMOR", "SCIENCE_FICTION", "MYSTERY", "WESTERN", "CRIME", "BIOGRAPHY", "COMPUTER"]},
                "authors": {"type": "array", "items": {"type": "string", "format": "uuid"}}
            }
        },
        "model.UpdateBookRequest": {
            "type": "object",
            "required": ["title", "isbn", "genre"],
            "properties": {
                "title": {"type": "string", "minLength": 1, "maxLength": 100},
                "isbn": {"type": "string", "minLength": 17, "maxLength": 26},
                "description": {"type": "string", "maxLength": 2000},
                "genre": {"type": "string", "enum": ["FANTASY", "HORROR", "HUMOR", "SCIENCE_FICTION", "MYSTERY", "WESTERN", "CRIME", "BIOGRAPHY", "COMPUTER"]}
            }
        },
        "model.BookResource": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "title": {"type": "string"},
                "isbn": {"type": "string"},
                "description": {"type": "string"},
                "genre": {"type": "string"},
                "authors": {"type": "array", "items": {"$ref": "#/definitions/model.AuthorResource"}},
                "_links": {"$ref": "#/definitions/response.Links"}
            }
        },
        "model.BookListResource": {
            "type": "object",
            "properties": {
                "books": {"type": "array", "items": {"$ref": "#/definitions/model.BookResource"}},
                "_links": {"$ref": "#/definitions/response.Links"}
            }
        },
        "model.CreateUserRequest": {
            "type": "object",
            "required": ["firstName", "lastName", "username", "password"],
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "firstName": {"type": "string", "minLength": 1, "maxLength": 50},
                "lastName": {"type": "string", "minLength": 1, "maxLength": 50},
                "username": {"type": "string", "minLength": 4, "maxLength": 30},
                "password": {"type": "string", "minLength": 5, "maxLength": 100}
            }
        },
        "model.UserResource": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "username": {"type": "string"},
                "_links": {"$ref": "#/definitions/response.Links"}
            }
        },
        "model.UserListResource": {
            "type": "object",
            "properties": {
                "users": {"type": "array", "items": {"$ref": "#/definitions/model.UserResource"}},
                "_links": {"$ref": "#/definitions/response.Links"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bookshelf API",
	Description:      "Authors, books and users with conditional book updates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
