// Package docs provides the generated Swagger specification.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/customers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "List all customers",
                "operationId": "listCustomers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Create a customer",
                "operationId": "createCustomer",
                "parameters": [
                    {"description": "Customer to create", "name": "customer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCustomerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/customers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Get a customer by ID",
                "operationId": "getCustomer",
                "parameters": [
                    {"type": "integer", "description": "Customer ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Response"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Update a customer",
                "operationId": "updateCustomer",
                "parameters": [
                    {"type": "integer", "description": "Customer ID", "name": "id", "in": "path", "required": true},
                    {"description": "New customer fields", "name": "customer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateCustomerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Delete a customer",
                "operationId": "deleteCustomer",
                "parameters": [
                    {"type": "integer", "description": "Customer ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/customers/validate-tax-id/{taxId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Validate a tax ID",
                "operationId": "validateTaxID",
                "parameters": [
                    {"type": "string", "description": "Tax ID", "name": "taxId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "operationId": "healthCheck",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        }
    },
    "definitions": {
        "Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "error": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "string"}}
            }
        },
        "CreateCustomerRequest": {
            "type": "object",
            "required": ["name", "address", "taxId"],
            "properties": {
                "name": {"type": "string", "maxLength": 100, "minLength": 2},
                "phone": {"type": "string", "maxLength": 20},
                "email": {"type": "string", "maxLength": 100},
                "address": {"type": "string", "maxLength": 500, "minLength": 5},
                "taxId": {"type": "string"}
            }
        },
        "UpdateCustomerRequest": {
            "type": "object",
            "required": ["name", "address", "taxId"],
            "properties": {
                "name": {"type": "string", "maxLength": 100, "minLength": 2},
                "phone": {"type": "string", "maxLength": 20},
                "email": {"type": "string", "maxLength": 100},
                "address": {"type": "string", "maxLength": 500, "minLength": 5},
                "taxId": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "CustDesk Backend API",
	Description:      "Customer management API with legacy host validation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
