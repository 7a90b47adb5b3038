// Package docs registers the Swagger spec served under /swagger/*.
// Regenerate with: swag init -g cmd/app/main.go
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
        "/healthz": {"get": {"tags": ["health"], "summary": "Liveness check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/readyz": {"get": {"tags": ["health"], "summary": "Readiness check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/version": {"get": {"tags": ["health"], "summary": "Build version", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/achievements": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["achievements"], "summary": "List achievements", "parameters": [{"type": "string", "description": "Category filter", "name": "category", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/achievements/unlocked": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["achievements"], "summary": "List unlocked achievements", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/achievements/progress": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["achievements"], "summary": "Set achievement progress", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/api/v1/achievements/unlock": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["achievements"], "summary": "Unlock an achievement", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/achievements/recompute": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["achievements"], "summary": "Recompute achievements from stored signals", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/achievements/{id}": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["achievements"], "summary": "Get an achievement", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/progress": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["achievements"], "summary": "User progress record", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/challenge": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["challenge"], "summary": "Today's challenge", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/challenge/progress": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["challenge"], "summary": "Report challenge progress", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/challenge/rewards": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["challenge"], "summary": "Banked reward points", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/subscription": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["subscription"], "summary": "Subscription status", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/subscription/tier": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["subscription"], "summary": "Set the subscription tier", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/subscription/trial": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["subscription"], "summary": "Start a trial", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/api/v1/subscription/features": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["subscription"], "summary": "List premium features", "parameters": [{"enum": ["all", "locked", "unlocked"], "type": "string", "name": "state", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/subscription/features/{id}": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["subscription"], "summary": "Get a premium feature", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/subscription/purchase": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["subscription"], "summary": "Simulate a purchase", "responses": {"202": {"description": "Accepted"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/analytics/events": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["analytics"], "summary": "Buffered analytics events", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["analytics"], "summary": "Track a custom event", "responses": {"201": {"description": "Created"}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["analytics"], "summary": "Clear buffered events", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/analytics/summary": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["analytics"], "summary": "Analytics summary", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/analytics/export": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["analytics"], "summary": "Export events as JSON", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/analytics/user-properties": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["analytics"], "summary": "User properties", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["analytics"], "summary": "Set a user property", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/analytics/log": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["analytics"], "summary": "Query the persisted event log", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/api/v1/network": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["network"], "summary": "Simulator status", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/network/availability": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["network"], "summary": "Toggle network availability", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/network/latency": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["network"], "summary": "Set simulated latency", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/network/call": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["network"], "summary": "Simulate a remote call", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/api/v1/activity/tap": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["activity"], "summary": "Tap count", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["activity"], "summary": "Record a tap", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/activity/tap/reset": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["activity"], "summary": "Reset the tap counter", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/activity/screen": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["activity"], "summary": "Record a screen view", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/activity/share": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["activity"], "summary": "Record a share", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/dashboard": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["activity"], "summary": "Home screen read model", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/profile": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["profile"], "summary": "Get the profile", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["profile"], "summary": "Update the profile", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/profile/photo": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["profile"], "summary": "Profile photo bytes", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["profile"], "summary": "Set the profile photo", "responses": {"200": {"description": "OK"}, "413": {"description": "Request Entity Too Large"}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["profile"], "summary": "Remove the profile photo", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/topics": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["topics"], "summary": "List or search topics", "parameters": [{"type": "string", "name": "q", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["topics"], "summary": "Add a topic", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/topics/remove": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["topics"], "summary": "Remove a topic", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/topics/reset": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["topics"], "summary": "Restore the default topics", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/topics/view": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["topics"], "summary": "Record a topic view", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/topics/complete": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["topics"], "summary": "Complete a topic", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/topics/favorite": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["topics"], "summary": "Toggle a favorite topic", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/topics/rate": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["topics"], "summary": "Rate a topic", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/settings": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["settings"], "summary": "User preferences", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["settings"], "summary": "Update preferences", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/notifications": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["notifications"], "summary": "Recent notifications", "parameters": [{"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/events/stream": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["notifications"], "summary": "Server-sent event stream", "produces": ["text/event-stream"], "parameters": [{"type": "string", "name": "types", "in": "query"}], "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Milestone API",
	Description:      "Engagement backend: achievements, daily challenges, subscription tiers and analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
