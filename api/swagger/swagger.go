package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Axis Planner API",
        "description": "Personalized time-blocking scheduler",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Tasks", "description": "Task management"},
        {"name": "Profile", "description": "Planning profile"},
        {"name": "Planner", "description": "Schedule computation and export"}
    ],
    "paths": {
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks for the current user",
                "parameters": [
                    {"name": "X-User-ID", "in": "header", "type": "string", "required": true},
                    {"name": "completed", "in": "query", "type": "boolean"},
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "pageSize", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Add a task",
                "parameters": [
                    {"name": "X-User-ID", "in": "header", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tasks/{id}": {
            "put": {
                "tags": ["Tasks"],
                "summary": "Replace a task",
                "parameters": [
                    {"name": "X-User-ID", "in": "header", "type": "string", "required": true},
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"name": "X-User-ID", "in": "header", "type": "string", "required": true},
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "No content"}
                }
            }
        },
        "/tasks/{id}/complete": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Mark a task as completed",
                "parameters": [
                    {"name": "X-User-ID", "in": "header", "type": "string", "required": true},
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "No content"}
                }
            }
        },
        "/profile": {
            "get": {
                "tags": ["Profile"],
                "summary": "Get the planning profile",
                "parameters": [
                    {"name": "X-User-ID", "in": "header", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Profile"],
                "summary": "Replace the planning profile",
                "parameters": [
                    {"name": "X-User-ID", "in": "header", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/plan": {
            "get": {
                "tags": ["Planner"],
                "summary": "Get the current schedule, computing it when stale",
                "parameters": [
                    {"name": "X-User-ID", "in": "header", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/plan/rebalance": {
            "post": {
                "tags": ["Planner"],
                "summary": "Force a full schedule recomputation",
                "parameters": [
                    {"name": "X-User-ID", "in": "header", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/plan/export": {
            "get": {
                "tags": ["Planner"],
                "summary": "Export the schedule as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "X-User-ID", "in": "header", "type": "string", "required": true},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Rendered schedule file"}
                }
            }
        }
    },
    "definitions": {
        "CreateTaskRequest": {
            "type": "object",
            "required": ["name", "priority", "deadlineDate"],
            "properties": {
                "name": {"type": "string"},
                "priority": {"type": "string", "enum": ["urgent-important", "urgent-not-important", "important-not-urgent", "neither"]},
                "category": {"type": "string"},
                "deadlineDate": {"type": "string", "format": "date"},
                "deadlineTime": {"type": "string", "example": "17:00"},
                "durationHours": {"type": "number"},
                "needsComputer": {"type": "boolean"}
            }
        },
        "UpdateTaskRequest": {
            "type": "object",
            "required": ["name", "priority", "deadlineDate"],
            "properties": {
                "name": {"type": "string"},
                "priority": {"type": "string", "enum": ["urgent-important", "urgent-not-important", "important-not-urgent", "neither"]},
                "category": {"type": "string"},
                "deadlineDate": {"type": "string", "format": "date"},
                "deadlineTime": {"type": "string", "example": "17:00"},
                "durationHours": {"type": "number"},
                "needsComputer": {"type": "boolean"},
                "completed": {"type": "boolean"}
            }
        },
        "UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "weeklyCommitments": {"type": "object"},
                "weekendActivities": {"type": "object"},
                "breakRanges": {"type": "array", "items": {"type": "string"}},
                "productiveWindow": {"type": "string", "enum": ["early-morning", "morning", "afternoon", "evening", "night"]},
                "workStyle": {"type": "string", "enum": ["short-bursts", "long-sessions", "mixed"]},
                "studyMethod": {"type": "string"},
                "procrastinates": {"type": "boolean"},
                "procrastinationType": {"type": "string", "enum": ["deadline-driven", "perfectionist", "overwhelmed", "avoidant", "distraction-prone", "lack-of-motivation"]},
                "troubleFinishing": {"type": "boolean"},
                "personalHoursWeekly": {"type": "number"},
                "reviewHoursWeekly": {"type": "number"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
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
