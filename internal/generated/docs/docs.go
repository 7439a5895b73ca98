// Package docs registers the Swagger document served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "parameters": {
        "userId": {"name": "X-User-ID", "in": "header", "type": "string", "format": "uuid", "description": "caller identity"},
        "orderId": {"name": "orderId", "in": "path", "required": true, "type": "string", "format": "uuid"},
        "requestId": {"name": "requestId", "in": "path", "required": true, "type": "string", "format": "uuid"},
        "offset": {"name": "offset", "in": "query", "type": "integer", "minimum": 0},
        "limit": {"name": "limit", "in": "query", "type": "integer", "minimum": 1, "maximum": 100},
        "mine": {"name": "mine", "in": "query", "type": "boolean"},
        "status": {"name": "status", "in": "query", "type": "string", "description": "request status; MATCH_FAIL is hidden unless asked for"}
    },
    "paths": {
        "/api/v1/shopper-orders": {
            "get": {"summary": "List shopper orders", "parameters": [{"$ref": "#/parameters/userId"}, {"$ref": "#/parameters/offset"}, {"$ref": "#/parameters/limit"}, {"$ref": "#/parameters/mine"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ShopperOrderPage"}}, "400": {"$ref": "#/responses/Error"}}},
            "post": {"summary": "Publish a shopper order", "parameters": [{"$ref": "#/parameters/userId"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NewShopperOrder"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ShopperOrder"}}, "400": {"$ref": "#/responses/Error"}}}
        },
        "/api/v1/shopper-orders/{orderId}": {
            "get": {"summary": "Get a shopper order with its live requests", "parameters": [{"$ref": "#/parameters/orderId"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ShopperOrder"}}, "404": {"$ref": "#/responses/Error"}}},
            "delete": {"summary": "Delete an own shopper order", "parameters": [{"$ref": "#/parameters/userId"}, {"$ref": "#/parameters/orderId"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Deleted"}}}}
        },
        "/api/v1/shopper-orders/{orderId}/requests": {
            "get": {"summary": "List requests on a shopper order", "parameters": [{"$ref": "#/parameters/orderId"}, {"$ref": "#/parameters/offset"}, {"$ref": "#/parameters/limit"}, {"$ref": "#/parameters/status"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ShopperOrderRequestPage"}}}},
            "post": {"summary": "Request to run a shopper order", "parameters": [{"$ref": "#/parameters/userId"}, {"$ref": "#/parameters/orderId"}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ShopperOrderRequest"}}, "400": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}, "409": {"$ref": "#/responses/Error"}}}
        },
        "/api/v1/shopper-order-requests/{requestId}": {
            "get": {"summary": "Get a request on a shopper order", "parameters": [{"$ref": "#/parameters/requestId"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ShopperOrderRequest"}}, "404": {"$ref": "#/responses/Error"}}},
            "delete": {"summary": "Withdraw an own request", "parameters": [{"$ref": "#/parameters/userId"}, {"$ref": "#/parameters/requestId"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Deleted"}}, "404": {"$ref": "#/responses/Error"}, "409": {"$ref": "#/responses/Error"}}}
        },
        "/api/v1/shopper-order-requests/{requestId}/status": {
            "patch": {"summary": "Move a request and its order to the next status", "parameters": [{"$ref": "#/parameters/requestId"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StatusChange"}}],
                "responses": {"204": {"description": "No Content"}, "400": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}, "409": {"$ref": "#/responses/Error"}}}
        },
        "/api/v1/runners/me/shopper-order-requests": {
            "get": {"summary": "List the caller's requests on shopper orders", "parameters": [{"$ref": "#/parameters/userId"}, {"$ref": "#/parameters/offset"}, {"$ref": "#/parameters/limit"}, {"$ref": "#/parameters/status"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ShopperOrderRequestPage"}}}}
        },
        "/api/v1/runner-orders": {
            "get": {"summary": "List runner orders", "parameters": [{"$ref": "#/parameters/userId"}, {"$ref": "#/parameters/offset"}, {"$ref": "#/parameters/limit"}, {"$ref": "#/parameters/mine"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/RunnerOrderPage"}}}},
            "post": {"summary": "Publish a runner order", "parameters": [{"$ref": "#/parameters/userId"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NewRunnerOrder"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/RunnerOrder"}}, "400": {"$ref": "#/responses/Error"}}}
        },
        "/api/v1/runner-orders/{orderId}": {
            "get": {"summary": "Get a runner order with its live requests", "parameters": [{"$ref": "#/parameters/orderId"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/RunnerOrder"}}, "404": {"$ref": "#/responses/Error"}}},
            "delete": {"summary": "Delete an own runner order", "parameters": [{"$ref": "#/parameters/userId"}, {"$ref": "#/parameters/orderId"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Deleted"}}}}
        },
        "/api/v1/runner-orders/{orderId}/requests": {
            "get": {"summary": "List requests on a runner order", "parameters": [{"$ref": "#/parameters/orderId"}, {"$ref": "#/parameters/offset"}, {"$ref": "#/parameters/limit"}, {"$ref": "#/parameters/status"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/RunnerOrderRequestPage"}}}},
            "post": {"summary": "Request a runner with a shopping list", "parameters": [{"$ref": "#/parameters/userId"}, {"$ref": "#/parameters/orderId"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NewShopperOrder"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/RunnerOrderRequest"}}, "400": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}, "409": {"$ref": "#/responses/Error"}}}
        },
        "/api/v1/runner-order-requests/{requestId}": {
            "get": {"summary": "Get a request on a runner order", "parameters": [{"$ref": "#/parameters/requestId"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/RunnerOrderRequest"}}, "404": {"$ref": "#/responses/Error"}}},
            "delete": {"summary": "Withdraw an own request", "parameters": [{"$ref": "#/parameters/userId"}, {"$ref": "#/parameters/requestId"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Deleted"}}, "404": {"$ref": "#/responses/Error"}, "409": {"$ref": "#/responses/Error"}}}
        },
        "/api/v1/runner-order-requests/{requestId}/status": {
            "patch": {"summary": "Move a request and its sub-order to the next status", "parameters": [{"$ref": "#/parameters/requestId"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StatusChange"}}],
                "responses": {"204": {"description": "No Content"}, "400": {"$ref": "#/responses/Error"}, "404": {"$ref": "#/responses/Error"}, "409": {"$ref": "#/responses/Error"}}}
        },
        "/api/v1/shoppers/me/runner-order-requests": {
            "get": {"summary": "List the caller's requests on runner orders", "parameters": [{"$ref": "#/parameters/userId"}, {"$ref": "#/parameters/offset"}, {"$ref": "#/parameters/limit"}, {"$ref": "#/parameters/status"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/RunnerOrderRequestPage"}}}}
        }
    },
    "responses": {
        "Error": {"description": "Error", "schema": {"$ref": "#/definitions/Error"}}
    },
    "definitions": {
        "Error": {"type": "object", "properties": {"code": {"type": "integer"}, "kind": {"type": "string", "enum": ["NOT_FOUND", "INVALID_STATUS_TRANSITION", "UNKNOWN_TARGET_STATUS", "VALIDATION_FAILED", "STORAGE_ERROR"]}, "message": {"type": "string"}}},
        "User": {"type": "object", "properties": {"id": {"type": "string", "format": "uuid"}, "nickname": {"type": "string"}, "email": {"type": "string"}, "profileImage": {"type": "string"}}},
        "NewItem": {"type": "object", "required": ["name", "count"], "properties": {"name": {"type": "string"}, "count": {"type": "integer", "minimum": 1}, "price": {"type": "string", "example": "3.20"}}},
        "Item": {"type": "object", "properties": {"id": {"type": "string", "format": "uuid"}, "name": {"type": "string"}, "count": {"type": "integer"}, "price": {"type": "string"}}},
        "NewImage": {"type": "object", "properties": {"filename": {"type": "string"}, "size": {"type": "integer"}, "path": {"type": "string"}}},
        "Image": {"type": "object", "properties": {"id": {"type": "string", "format": "uuid"}, "filename": {"type": "string"}, "size": {"type": "integer"}, "path": {"type": "string"}}},
        "NewShopperOrder": {"type": "object", "required": ["title"], "properties": {
            "title": {"type": "string"}, "priority": {"type": "string"}, "contents": {"type": "string"},
            "receiveStart": {"type": "string", "format": "date-time"}, "receiveEnd": {"type": "string", "format": "date-time"},
            "receiveAddress": {"type": "string"}, "additionalMessage": {"type": "string"},
            "estimatedPrice": {"type": "string"}, "runnerTip": {"type": "string"},
            "items": {"type": "array", "items": {"$ref": "#/definitions/NewItem"}}, "images": {"type": "array", "items": {"$ref": "#/definitions/NewImage"}}}},
        "ShopperOrder": {"type": "object", "properties": {
            "id": {"type": "string", "format": "uuid"}, "shopperId": {"type": "string", "format": "uuid"}, "shopper": {"$ref": "#/definitions/User"},
            "title": {"type": "string"}, "priority": {"type": "string"}, "contents": {"type": "string"},
            "receiveStart": {"type": "string", "format": "date-time"}, "receiveEnd": {"type": "string", "format": "date-time"},
            "receiveAddress": {"type": "string"}, "additionalMessage": {"type": "string"},
            "estimatedPrice": {"type": "string"}, "runnerTip": {"type": "string"}, "status": {"type": "string"},
            "items": {"type": "array", "items": {"$ref": "#/definitions/Item"}}, "images": {"type": "array", "items": {"$ref": "#/definitions/Image"}},
            "requests": {"type": "array", "items": {"$ref": "#/definitions/ShopperOrderRequest"}},
            "createdAt": {"type": "string", "format": "date-time"}, "updatedAt": {"type": "string", "format": "date-time"}}},
        "ShopperOrderRequest": {"type": "object", "properties": {
            "id": {"type": "string", "format": "uuid"}, "orderId": {"type": "string", "format": "uuid"}, "runnerId": {"type": "string", "format": "uuid"},
            "runner": {"$ref": "#/definitions/User"}, "status": {"type": "string"}, "order": {"$ref": "#/definitions/ShopperOrder"},
            "createdAt": {"type": "string", "format": "date-time"}, "updatedAt": {"type": "string", "format": "date-time"}}},
        "NewRunnerOrder": {"type": "object", "required": ["message"], "properties": {
            "message": {"type": "string"}, "estimatedMinutes": {"type": "integer"}, "introduce": {"type": "string"}, "distance": {"type": "integer", "description": "meters"},
            "contactStart": {"type": "string", "format": "date-time"}, "contactEnd": {"type": "string", "format": "date-time"},
            "address": {"type": "string"}, "payments": {"type": "array", "items": {"type": "string"}}}},
        "RunnerOrder": {"type": "object", "properties": {
            "id": {"type": "string", "format": "uuid"}, "runnerId": {"type": "string", "format": "uuid"}, "runner": {"$ref": "#/definitions/User"},
            "message": {"type": "string"}, "estimatedMinutes": {"type": "integer"}, "introduce": {"type": "string"}, "distance": {"type": "integer"},
            "contactStart": {"type": "string", "format": "date-time"}, "contactEnd": {"type": "string", "format": "date-time"},
            "address": {"type": "string"}, "payments": {"type": "array", "items": {"type": "string"}},
            "requests": {"type": "array", "items": {"$ref": "#/definitions/RunnerOrderRequest"}},
            "createdAt": {"type": "string", "format": "date-time"}, "updatedAt": {"type": "string", "format": "date-time"}}},
        "RunnerOrderRequest": {"type": "object", "properties": {
            "id": {"type": "string", "format": "uuid"}, "orderId": {"type": "string", "format": "uuid"}, "shopperId": {"type": "string", "format": "uuid"},
            "shopperOrderId": {"type": "string", "format": "uuid"}, "shopper": {"$ref": "#/definitions/User"}, "status": {"type": "string"},
            "subOrder": {"$ref": "#/definitions/ShopperOrder"}, "order": {"$ref": "#/definitions/RunnerOrder"},
            "createdAt": {"type": "string", "format": "date-time"}, "updatedAt": {"type": "string", "format": "date-time"}}},
        "StatusChange": {"type": "object", "required": ["status"], "properties": {"status": {"type": "string", "enum": ["MATCHED", "MATCH_FAIL", "DELIVERED_REQUEST", "DELIVERED", "REVIEW_REQUEST", "REVIEWED"]}}},
        "Deleted": {"type": "object", "properties": {"deleted": {"type": "boolean"}}},
        "ShopperOrderPage": {"type": "object", "properties": {"total": {"type": "integer"}, "offset": {"type": "integer"}, "limit": {"type": "integer"}, "items": {"type": "array", "items": {"$ref": "#/definitions/ShopperOrder"}}}},
        "ShopperOrderRequestPage": {"type": "object", "properties": {"total": {"type": "integer"}, "offset": {"type": "integer"}, "limit": {"type": "integer"}, "items": {"type": "array", "items": {"$ref": "#/definitions/ShopperOrderRequest"}}}},
        "RunnerOrderPage": {"type": "object", "properties": {"total": {"type": "integer"}, "offset": {"type": "integer"}, "limit": {"type": "integer"}, "items": {"type": "array", "items": {"$ref": "#/definitions/RunnerOrder"}}}},
        "RunnerOrderRequestPage": {"type": "object", "properties": {"total": {"type": "integer"}, "offset": {"type": "integer"}, "limit": {"type": "integer"}, "items": {"type": "array", "items": {"$ref": "#/definitions/RunnerOrderRequest"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Errands API",
	Description:      "Shopper and runner orders, requests and their status workflow.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
