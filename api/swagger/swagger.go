package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "School Timetable API",
        "description": "Daily class schedule resolution service",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Schedule", "description": "Day records and the live current-period status"},
        {"name": "Catalog", "description": "Static subject and timetable configuration"},
        {"name": "Preferences", "description": "Reminder preference"},
        {"name": "Export", "description": "Downloadable week schedules"}
    ],
    "paths": {
        "/schedule/today": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Today's full day record",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/schedule/date/{date}": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Day record for a specific date",
                "parameters": [
                    {"name": "date", "in": "path", "type": "string", "required": true, "description": "YYYY-MM-DD"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Invalid date format", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/schedule/current": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Current period, next period and remaining time",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/schedule/week": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Monday-start week of day records",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/subjects": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Full subject table keyed by day cycle",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/timetables": {
            "get": {
                "tags": ["Catalog"],
                "summary": "All configured timetable variants",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/query": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Dispatch a named schedule query",
                "parameters": [
                    {"name": "name", "in": "query", "type": "string", "required": true},
                    {"name": "date", "in": "query", "type": "string"},
                    {"name": "raw", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Unknown operation or bad date", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/preferences/reminder": {
            "get": {
                "tags": ["Preferences"],
                "summary": "Current reminder preference",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "tags": ["Preferences"],
                "summary": "Update the reminder preference",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateReminderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/export/week": {
            "get": {
                "tags": ["Export"],
                "summary": "Export the current week as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "timestamp": {"type": "string"},
                "data": {"type": "object"},
                "error": {
                    "type": "object",
                    "properties": {"message": {"type": "string"}}
                }
            }
        },
        "UpdateReminderRequest": {
            "type": "object",
            "required": ["leadMinutes"],
            "properties": {
                "enabled": {"type": "boolean"},
                "leadMinutes": {"type": "integer", "minimum": 1, "maximum": 30}
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
