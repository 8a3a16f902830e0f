// Package docs holds the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/ledgerflow/main.go -o cmd/docs
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
        "/currencies": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["currencies"], "summary": "List all currencies", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["currencies"], "summary": "Create a new currency", "responses": {"201": {"description": "Created"}, "409": {"description": "Currency code already exists"}}}
        },
        "/currencies/{code}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["currencies"], "summary": "Get a currency by code",
                "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Currency not found"}}}
        },
        "/exchange-rates": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["exchange rates"], "summary": "Record an exchange rate", "responses": {"201": {"description": "Created"}}}
        },
        "/exchange-rates/{from}/{to}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["exchange rates"], "summary": "Get the exchange rate effective on a date",
                "parameters": [
                    {"type": "string", "name": "from", "in": "path", "required": true},
                    {"type": "string", "name": "to", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Exchange rate not found"}}}
        },
        "/organizations": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["organizations"], "summary": "List the caller's organizations", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["organizations"], "summary": "Create an organization", "responses": {"201": {"description": "Created"}}}
        },
        "/organizations/{organization_id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["organizations"], "summary": "Get an organization",
                "parameters": [{"$ref": "#/parameters/organizationID"}], "responses": {"200": {"description": "OK"}, "403": {"description": "Not a member"}}}
        },
        "/organizations/{organization_id}/members": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["organizations"], "summary": "List organization members",
                "parameters": [{"$ref": "#/parameters/organizationID"}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["organizations"], "summary": "Add or update a member",
                "parameters": [{"$ref": "#/parameters/organizationID"}], "responses": {"200": {"description": "OK"}, "403": {"description": "Insufficient role"}}}
        },
        "/organizations/{organization_id}/accounts": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "List accounts",
                "parameters": [{"$ref": "#/parameters/organizationID"}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Create a new account",
                "parameters": [{"$ref": "#/parameters/organizationID"}], "responses": {"201": {"description": "Created"}, "409": {"description": "Account code already in use"}}}
        },
        "/organizations/{organization_id}/accounts/{account_id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Get an account by ID",
                "parameters": [{"$ref": "#/parameters/organizationID"}, {"type": "string", "name": "account_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Account not found"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Rename or deactivate an account",
                "parameters": [{"$ref": "#/parameters/organizationID"}, {"type": "string", "name": "account_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/organizations/{organization_id}/fiscal-periods": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["fiscal-periods"], "summary": "List fiscal periods",
                "parameters": [{"$ref": "#/parameters/organizationID"}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["fiscal-periods"], "summary": "Create a fiscal period",
                "parameters": [{"$ref": "#/parameters/organizationID"}], "responses": {"201": {"description": "Created"}, "409": {"description": "Overlaps an existing period"}}}
        },
        "/organizations/{organization_id}/fiscal-periods/{fiscal_period_id}/status": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["fiscal-periods"], "summary": "Open, soft-close or close a fiscal period",
                "parameters": [{"$ref": "#/parameters/organizationID"}, {"type": "string", "name": "fiscal_period_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/organizations/{organization_id}/approval-rules": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["approval-rules"], "summary": "List approval rules",
                "parameters": [{"$ref": "#/parameters/organizationID"}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["approval-rules"], "summary": "Create an approval rule",
                "parameters": [{"$ref": "#/parameters/organizationID"}], "responses": {"201": {"description": "Created"}}}
        },
        "/organizations/{organization_id}/approval-rules/{rule_id}/active": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["approval-rules"], "summary": "Enable or disable an approval rule",
                "parameters": [{"$ref": "#/parameters/organizationID"}, {"type": "string", "name": "rule_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/organizations/{organization_id}/transactions": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "List transactions",
                "parameters": [
                    {"$ref": "#/parameters/organizationID"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "integer", "default": 20, "name": "limit", "in": "query"},
                    {"type": "string", "name": "nextToken", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Record a draft transaction",
                "parameters": [{"$ref": "#/parameters/organizationID"}], "responses": {"201": {"description": "Created"}, "400": {"description": "Unbalanced or invalid entries"}}}
        },
        "/organizations/{organization_id}/transactions/{transaction_id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Get a transaction with its entries",
                "parameters": [{"$ref": "#/parameters/organizationID"}, {"$ref": "#/parameters/transactionID"}], "responses": {"200": {"description": "OK"}}}
        },
        "/organizations/{organization_id}/transactions/{transaction_id}/entries": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Replace the entries of a draft or pending transaction",
                "parameters": [{"$ref": "#/parameters/organizationID"}, {"$ref": "#/parameters/transactionID"}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Transaction is no longer editable"}}}
        },
        "/organizations/{organization_id}/transactions/{transaction_id}/audit": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Workflow history of a transaction",
                "parameters": [{"$ref": "#/parameters/organizationID"}, {"$ref": "#/parameters/transactionID"}], "responses": {"200": {"description": "OK"}}}
        },
        "/organizations/{organization_id}/transactions/{transaction_id}/submit": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["workflow"], "summary": "Submit a draft for approval",
                "parameters": [{"$ref": "#/parameters/organizationID"}, {"$ref": "#/parameters/transactionID"}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Invalid transition"}}}
        },
        "/organizations/{organization_id}/transactions/{transaction_id}/approve": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["workflow"], "summary": "Approve a pending transaction",
                "parameters": [{"$ref": "#/parameters/organizationID"}, {"$ref": "#/parameters/transactionID"}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Role or approval limit insufficient"}}}
        },
        "/organizations/{organization_id}/transactions/{transaction_id}/reject": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["workflow"], "summary": "Reject a pending transaction back to draft",
                "parameters": [{"$ref": "#/parameters/organizationID"}, {"$ref": "#/parameters/transactionID"}], "responses": {"200": {"description": "OK"}}}
        },
        "/organizations/{organization_id}/transactions/{transaction_id}/post": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["workflow"], "summary": "Post an approved transaction to the ledger",
                "parameters": [{"$ref": "#/parameters/organizationID"}, {"$ref": "#/parameters/transactionID"}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Fiscal period closed"}, "409": {"description": "Concurrent modification; retryable"}}}
        },
        "/organizations/{organization_id}/transactions/{transaction_id}/void": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["workflow"], "summary": "Void a posted transaction",
                "parameters": [{"$ref": "#/parameters/organizationID"}, {"$ref": "#/parameters/transactionID"}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "parameters": {
        "organizationID": {"type": "string", "description": "Organization ID", "name": "organization_id", "in": "path", "required": true},
        "transactionID": {"type": "string", "description": "Transaction ID", "name": "transaction_id", "in": "path", "required": true}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Ledgerflow API",
	Description:      "Multi-currency double-entry ledger with an approval workflow.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
