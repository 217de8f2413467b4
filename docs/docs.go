// Package docs holds the Swagger document served at /swagger/.
// Keep it in sync with the godoc annotations in internal/api.
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
        "/start": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interview"],
                "summary": "Start an interview",
                "parameters": [
                    {
                        "description": "session id and topic",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.StartRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StartResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/answer": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interview"],
                "summary": "Answer the current question",
                "parameters": [
                    {
                        "description": "session id and answer",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.AnswerRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.AnswerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/sessions/{sessionID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["interview"],
                "summary": "Show a session transcript",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SessionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.StartRequest": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "topic": {"type": "string"}
            }
        },
        "api.StartResponse": {
            "type": "object",
            "properties": {
                "question": {"type": "string"}
            }
        },
        "api.AnswerRequest": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "answer": {"type": "string"}
            }
        },
        "api.AnswerResponse": {
            "type": "object",
            "properties": {
                "feedback": {"type": "string"},
                "next_question": {"type": "string"},
                "summary": {"type": "string"}
            }
        },
        "api.TurnResponse": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "answer": {"type": "string"},
                "feedback": {"type": "string"},
                "score": {"type": "number"}
            }
        },
        "api.SessionResponse": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "topic": {"type": "string"},
                "state": {"type": "string"},
                "current_question": {"type": "string"},
                "turn_count": {"type": "integer"},
                "total_score": {"type": "number"},
                "max_score": {"type": "integer"},
                "history": {"type": "array", "items": {"$ref": "#/definitions/api.TurnResponse"}},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "AI Interviewer API",
	Description:      "Technical interview simulator: ask a question on a topic, grade free-text answers with a language model, summarise after five rounds.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
