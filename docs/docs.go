// Package docs registers the OpenAPI document served under /swagger.
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
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/api/submit-offer-letter": {
            "post": {
                "description": "Validates the payload and relays it to the document generation webhook.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["offer-letter"],
                "summary": "Submit an offer letter",
                "parameters": [
                    {
                        "description": "Offer letter payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.WebhookPayload"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SubmitOfferLetterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}},
                    "504": {"description": "Gateway Timeout", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "handlers.SubmitOfferLetterResponse": {
            "type": "object",
            "properties": {
                "note": {"type": "string"},
                "pdf_url": {"type": "string", "example": "https://example.com/offer.pdf"},
                "success": {"type": "boolean", "example": true},
                "visit_url": {"type": "string", "example": "https://example.com/offer.pdf"}
            }
        },
        "models.WebhookFields": {
            "type": "object",
            "properties": {
                "candidate_name": {"type": "string"},
                "ctc": {"type": "string"},
                "date_of_offer_letter": {"type": "string"},
                "department": {"type": "string"},
                "designation": {"type": "string"},
                "probation_period": {"type": "string"},
                "reporting_manager": {"type": "string"},
                "role_responsibilities": {"type": "string"},
                "salary_sheet": {"type": "string"},
                "student_signature": {"type": "string"},
                "timings": {"type": "string"}
            }
        },
        "models.WebhookPayload": {
            "type": "object",
            "properties": {
                "fields": {"$ref": "#/definitions/models.WebhookFields"},
                "resume_base64": {"type": "string"}
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
	Title:            "Offer Letter Proxy API",
	Description:      "Relays validated offer letter submissions to the document generation webhook.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
