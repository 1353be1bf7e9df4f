// Package docs holds the OpenAPI description served at /swagger.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        },
        "/payment/create": {
            "post": {
                "description": "Create a payment on the FIB gateway",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payment"],
                "summary": "Create payment",
                "parameters": [
                    {"description": "Payment data", "name": "payment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreatePaymentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Payment created", "schema": {"$ref": "#/definitions/dto.PaymentResponse"}},
                    "400": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "422": {"description": "Rejected by the gateway", "schema": {"$ref": "#/definitions/handlers.GatewayErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        },
        "/payment/callback": {
            "post": {
                "description": "Receive a payment status notification from FIB",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payment"],
                "summary": "Payment status callback",
                "parameters": [
                    {"description": "Status notification", "name": "callback", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PaymentStatusCallback"}}
                ],
                "responses": {
                    "200": {"description": "Callback received", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "400": {"description": "Invalid callback body", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        },
        "/payment/check-status/{paymentId}": {
            "get": {
                "description": "Fetch the current payment status from the gateway",
                "produces": ["application/json"],
                "tags": ["payment"],
                "summary": "Check payment status",
                "parameters": [
                    {"type": "string", "description": "Payment ID (UUID)", "name": "paymentId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Current status", "schema": {"$ref": "#/definitions/dto.CheckPaymentStatusResponse"}},
                    "400": {"description": "Invalid payment ID or gateway reported errors", "schema": {"$ref": "#/definitions/handlers.GatewayErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        },
        "/payment/{paymentId}/cancel": {
            "post": {
                "description": "Cancel an unpaid payment",
                "produces": ["application/json"],
                "tags": ["payment"],
                "summary": "Cancel payment",
                "parameters": [
                    {"type": "string", "description": "Payment ID (UUID)", "name": "paymentId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Payment cancelled successfully", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "400": {"description": "Invalid payment ID format", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "404": {"description": "Payment not found", "schema": {"$ref": "#/definitions/handlers.GatewayErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        },
        "/payment/{paymentId}/refund": {
            "post": {
                "description": "Request a refund for a paid payment. Completion is reported through the payment status.",
                "produces": ["application/json"],
                "tags": ["payment"],
                "summary": "Refund payment",
                "parameters": [
                    {"type": "string", "description": "Payment ID (UUID)", "name": "paymentId", "in": "path", "required": true}
                ],
                "responses": {
                    "202": {"description": "Refund request initiated", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "400": {"description": "Invalid payment ID format", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "404": {"description": "Payment not found", "schema": {"$ref": "#/definitions/handlers.GatewayErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CheckPaymentStatusResponse": {
            "type": "object",
            "properties": {
                "amount": {"$ref": "#/definitions/valueobjects.MonetaryValue"},
                "declinedAt": {"type": "string"},
                "decliningReason": {"type": "string", "enum": ["SERVER_FAILURE", "PAYMENT_EXPIRATION", "PAYMENT_CANCELLATION"]},
                "paidAt": {"type": "string"},
                "paidBy": {"$ref": "#/definitions/dto.PayerInfo"},
                "paymentId": {"type": "string"},
                "status": {"type": "string", "enum": ["PAID", "UNPAID", "DECLINED"]}
            }
        },
        "dto.CreatePaymentRequest": {
            "type": "object",
            "required": ["monetaryValue"],
            "properties": {
                "category": {"type": "string", "enum": ["ERP", "POS", "ECOMMERCE", "UTILITY", "PAYROLL", "SUPPLIER", "LOAN", "GOVERNMENT", "MISCELLANEOUS", "OTHER"]},
                "description": {"type": "string"},
                "expiresIn": {"type": "string"},
                "monetaryValue": {"$ref": "#/definitions/dto.MonetaryValueRequest"},
                "redirectUri": {"type": "string"},
                "refundableFor": {"type": "string"},
                "statusCallbackUrl": {"type": "string"}
            }
        },
        "dto.MonetaryValueRequest": {
            "type": "object",
            "required": ["amount"],
            "properties": {
                "amount": {"type": "string"},
                "currency": {"type": "string"}
            }
        },
        "dto.PayerInfo": {
            "type": "object",
            "properties": {
                "iban": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "dto.PaymentResponse": {
            "type": "object",
            "properties": {
                "businessAppLink": {"type": "string"},
                "corporateAppLink": {"type": "string"},
                "paymentId": {"type": "string"},
                "personalAppLink": {"type": "string"},
                "qrCode": {"type": "string"},
                "readableCode": {"type": "string"},
                "validUntil": {"type": "string"}
            }
        },
        "dto.PaymentStatusCallback": {
            "type": "object",
            "required": ["id", "status"],
            "properties": {
                "id": {"type": "string"},
                "status": {"type": "string", "enum": ["PAID", "UNPAID", "DECLINED"]}
            }
        },
        "handlers.GatewayErrorResponse": {
            "type": "object",
            "properties": {
                "errorCode": {"type": "string"},
                "errorDetails": {"type": "array", "items": {"$ref": "#/definitions/outcome.ErrorDetail"}},
                "message": {"type": "string"},
                "traceId": {"type": "string"}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "environment": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "outcome.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "detail": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "utils.MessageResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "errors": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "message": {"type": "string"}
            }
        },
        "valueobjects.MonetaryValue": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"},
                "currency": {"type": "string"}
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
	Title:            "fibgate API",
	Description:      "Proxy for the First Iraqi Bank payment gateway.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
