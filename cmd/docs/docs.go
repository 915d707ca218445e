// Package docs holds the OpenAPI description served at /swagger. It mirrors the
// handler annotations; regenerate it with
// swag init -g cmd/spine_backend/main.go -o cmd/docs
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
        "/document-states/{state}/transitions": {
            "get": {
                "parameters": [
                    {
                        "description": "Document state",
                        "in": "path",
                        "name": "state",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AllowedTransitionsResponse"
                        }
                    },
                    "400": {
                        "description": "Unknown state",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Allowed transitions of a state",
                "tags": [
                    "documents"
                ]
            }
        },
        "/health": {
            "get": {
                "description": "get the status of server.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "additionalProperties": true,
                            "type": "object"
                        }
                    }
                },
                "summary": "Show the status of server.",
                "tags": [
                    "root"
                ]
            }
        },
        "/tenants/{tenant_id}/accounts": {
            "get": {
                "description": "Lists the tenant's chart of accounts ordered by code",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListAccountsResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to list accounts",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List accounts",
                "tags": [
                    "accounts"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Adds an account to the tenant's chart of accounts",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Account details",
                        "in": "body",
                        "name": "account",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateAccountRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input format or validation error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Account code already used",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to create account",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a new account",
                "tags": [
                    "accounts"
                ]
            }
        },
        "/tenants/{tenant_id}/accounts/{account_id}": {
            "get": {
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Account ID",
                        "in": "path",
                        "name": "account_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to retrieve account",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get an account by ID",
                "tags": [
                    "accounts"
                ]
            }
        },
        "/tenants/{tenant_id}/accounts/{account_id}/ledger": {
            "get": {
                "description": "Lists the account's postings in date order with the running balance after each one",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Account ID",
                        "in": "path",
                        "name": "account_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "First posting date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "from",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Last posting date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "to",
                        "required": false,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountLedgerResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid date range",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to build account ledger",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get the ledger of an account",
                "tags": [
                    "accounts"
                ]
            }
        },
        "/tenants/{tenant_id}/accounts/{account_id}/postings": {
            "get": {
                "description": "Pages through the account's postings, oldest first",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Account ID",
                        "in": "path",
                        "name": "account_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "First posting date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "from",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Last posting date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "to",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "default": 50,
                        "description": "Page size",
                        "in": "query",
                        "name": "limit",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Token from the previous page",
                        "in": "query",
                        "name": "nextToken",
                        "required": false,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.ListAccountPostingsResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to list postings",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List postings of an account",
                "tags": [
                    "accounts"
                ]
            }
        },
        "/tenants/{tenant_id}/batches/{batch_id}/postings": {
            "get": {
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Batch ID",
                        "in": "path",
                        "name": "batch_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListPostingsResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Postings of a batch",
                "tags": [
                    "batches"
                ]
            }
        },
        "/tenants/{tenant_id}/batches/{batch_id}/validate": {
            "get": {
                "description": "An unbalanced batch is reported in the body with isBalanced=false, not as an error",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Batch ID",
                        "in": "path",
                        "name": "batch_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BatchBalanceResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Batch not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Recompute the balance of a stored batch",
                "tags": [
                    "batches"
                ]
            }
        },
        "/tenants/{tenant_id}/documents": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Document type",
                        "in": "body",
                        "name": "document",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateDocumentRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.DocumentResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to create document",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a draft document",
                "tags": [
                    "documents"
                ]
            }
        },
        "/tenants/{tenant_id}/documents/{document_id}": {
            "get": {
                "description": "Returns the document with the states it may move to next",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Document ID",
                        "in": "path",
                        "name": "document_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DocumentResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Document not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a document",
                "tags": [
                    "documents"
                ]
            }
        },
        "/tenants/{tenant_id}/documents/{document_id}/events": {
            "get": {
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Document ID",
                        "in": "path",
                        "name": "document_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.DocumentEventsResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to list events",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Event history of a document",
                "tags": [
                    "documents"
                ]
            }
        },
        "/tenants/{tenant_id}/documents/{document_id}/post": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Records one economic event and one balanced batch of postings and marks the document posted, atomically",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Document ID",
                        "in": "path",
                        "name": "document_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Event and posting lines",
                        "in": "body",
                        "name": "posting",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PostDocumentRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.PostDocumentResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Document or account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Document is not approved",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Postings are not balanced",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to post document",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Post an approved document",
                "tags": [
                    "documents"
                ]
            }
        },
        "/tenants/{tenant_id}/documents/{document_id}/postings": {
            "get": {
                "description": "Postings of every event of the document, including reversals",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Document ID",
                        "in": "path",
                        "name": "document_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListPostingsResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to list postings",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List the postings of a document",
                "tags": [
                    "documents"
                ]
            }
        },
        "/tenants/{tenant_id}/documents/{document_id}/reversal": {
            "get": {
                "description": "Whether the document is reversed or is itself a reversal, with the event chain",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Document ID",
                        "in": "path",
                        "name": "document_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReversalStatusResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Document not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Reversal status of a document",
                "tags": [
                    "documents"
                ]
            }
        },
        "/tenants/{tenant_id}/documents/{document_id}/reverse": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Records an offsetting event and batch and marks the document reversed",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Document ID",
                        "in": "path",
                        "name": "document_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Reversal reason",
                        "in": "body",
                        "name": "reversal",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReverseRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.ReversalResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Document not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Document is not posted or already reversed",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to reverse document",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Reverse a posted document",
                "tags": [
                    "documents"
                ]
            }
        },
        "/tenants/{tenant_id}/documents/{document_id}/transition": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Follows the lifecycle table. Posting and reversal have their own routes.",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Document ID",
                        "in": "path",
                        "name": "document_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Target state",
                        "in": "body",
                        "name": "transition",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.TransitionDocumentRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DocumentResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Document not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Transition not allowed",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Move a document to another state",
                "tags": [
                    "documents"
                ]
            }
        },
        "/tenants/{tenant_id}/events": {
            "get": {
                "description": "Pages through the tenant's event log, newest first",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "collectionFormat": "multi",
                        "description": "Event types to include",
                        "in": "query",
                        "items": {
                            "type": "string"
                        },
                        "name": "eventType",
                        "required": false,
                        "type": "array"
                    },
                    {
                        "description": "First event date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "from",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Last event date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "to",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "default": 50,
                        "description": "Page size",
                        "in": "query",
                        "name": "limit",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Token from the previous page",
                        "in": "query",
                        "name": "nextToken",
                        "required": false,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListEventsResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to list events",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List economic events",
                "tags": [
                    "events"
                ]
            }
        },
        "/tenants/{tenant_id}/events/{event_id}": {
            "get": {
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Event ID",
                        "in": "path",
                        "name": "event_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.EventResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Event not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get an economic event",
                "tags": [
                    "events"
                ]
            }
        },
        "/tenants/{tenant_id}/events/{event_id}/chain": {
            "get": {
                "description": "The original event followed by its reversals, oldest first",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Event ID",
                        "in": "path",
                        "name": "event_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReversalChainResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Event not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Reversal chain of an event",
                "tags": [
                    "events"
                ]
            }
        },
        "/tenants/{tenant_id}/events/{event_id}/reversal-eligibility": {
            "get": {
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Event ID",
                        "in": "path",
                        "name": "event_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ReversalEligibility"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Whether an event may be reversed",
                "tags": [
                    "events"
                ]
            }
        },
        "/tenants/{tenant_id}/events/{event_id}/reverse": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Records an offsetting event and batch. The document state is not changed.",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Event ID",
                        "in": "path",
                        "name": "event_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Reversal reason",
                        "in": "body",
                        "name": "reversal",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ReverseRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.ReversalResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Event not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Already reversed or a reversal itself",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to reverse event",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Reverse an economic event",
                "tags": [
                    "events"
                ]
            }
        },
        "/tenants/{tenant_id}/reconciliation/latest": {
            "get": {
                "description": "Returns the most recent stored verification result of the tenant",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BooksVerificationResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "No verification result stored",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Latest books verification",
                "tags": [
                    "reconciliation"
                ]
            }
        },
        "/tenants/{tenant_id}/reconciliation/runs": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Queues a background verification and returns its task ID",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Date range",
                        "in": "body",
                        "name": "run",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/dto.ReconciliationRunRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/dto.ReconciliationRunResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to schedule verification",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Schedule a books verification",
                "tags": [
                    "reconciliation"
                ]
            }
        },
        "/tenants/{tenant_id}/reports/balance-sheet": {
            "get": {
                "description": "Assets, liabilities and equity as of a date",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "default": "current date",
                        "description": "Report date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "asOf",
                        "required": false,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BalanceSheetResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Generate balance sheet report",
                "tags": [
                    "reports"
                ]
            }
        },
        "/tenants/{tenant_id}/reports/income-statement": {
            "get": {
                "description": "Revenue and expense accounts for a period",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "default": "first day of current month",
                        "description": "Start date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "from",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "default": "current date",
                        "description": "End date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "to",
                        "required": false,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.IncomeStatementResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Generate income statement",
                "tags": [
                    "reports"
                ]
            }
        },
        "/tenants/{tenant_id}/reports/trial-balance": {
            "get": {
                "description": "Per-account debit and credit totals as of a date",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "default": "current date",
                        "description": "Report date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "asOf",
                        "required": false,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TrialBalanceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Generate trial balance report",
                "tags": [
                    "reports"
                ]
            }
        },
        "/tenants/{tenant_id}/reports/verify-books": {
            "get": {
                "description": "Sums every posting in the range and checks each batch on its own. Runs synchronously.",
                "parameters": [
                    {
                        "description": "Tenant ID",
                        "in": "path",
                        "name": "tenant_id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Start date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "from",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "End date (YYYY-MM-DD)",
                        "in": "query",
                        "name": "to",
                        "required": false,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BooksVerificationResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Tenant not granted by the token",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to verify books",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Verify that the books balance",
                "tags": [
                    "reports"
                ]
            }
        }
    },
    "definitions": {
        "domain.AccountType": {
            "enum": [
                "asset",
                "liability",
                "equity",
                "revenue",
                "expense"
            ],
            "type": "string",
            "x-enum-varnames": [
                "Asset",
                "Liability",
                "Equity",
                "Revenue",
                "Expense"
            ]
        },
        "domain.AuditContext": {
            "properties": {
                "how": {
                    "$ref": "#/definitions/domain.AuditHow"
                },
                "what": {
                    "$ref": "#/definitions/domain.AuditWhat"
                },
                "when": {
                    "$ref": "#/definitions/domain.AuditWhen"
                },
                "where": {
                    "$ref": "#/definitions/domain.AuditWhere"
                },
                "which": {
                    "$ref": "#/definitions/domain.AuditWhich"
                },
                "who": {
                    "$ref": "#/definitions/domain.AuditWho"
                },
                "why": {
                    "$ref": "#/definitions/domain.AuditWhy"
                }
            },
            "type": "object"
        },
        "domain.AuditHow": {
            "properties": {
                "method": {
                    "type": "string"
                },
                "validationMode": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.AuditWhat": {
            "properties": {
                "action": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "documentType": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.AuditWhen": {
            "properties": {
                "timestamp": {
                    "type": "string"
                },
                "timezone": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.AuditWhere": {
            "properties": {
                "endpoint": {
                    "type": "string"
                },
                "ipAddress": {
                    "type": "string"
                },
                "system": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.AuditWhich": {
            "properties": {
                "resourceID": {
                    "type": "string"
                },
                "resourceType": {
                    "type": "string"
                },
                "tenantID": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.AuditWho": {
            "properties": {
                "actorID": {
                    "type": "string"
                },
                "actorName": {
                    "type": "string"
                },
                "actorRole": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.AuditWhy": {
            "properties": {
                "reason": {
                    "type": "string"
                },
                "reference": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.Direction": {
            "enum": [
                "debit",
                "credit"
            ],
            "type": "string",
            "x-enum-varnames": [
                "Debit",
                "Credit"
            ]
        },
        "domain.DocumentState": {
            "enum": [
                "draft",
                "submitted",
                "approved",
                "posted",
                "reversed",
                "voided"
            ],
            "type": "string",
            "x-enum-varnames": [
                "StateDraft",
                "StateSubmitted",
                "StateApproved",
                "StatePosted",
                "StateReversed",
                "StateVoided"
            ]
        },
        "domain.DocumentType": {
            "enum": [
                "invoice",
                "bill",
                "payment",
                "journal"
            ],
            "type": "string",
            "x-enum-varnames": [
                "DocumentInvoice",
                "DocumentBill",
                "DocumentPayment",
                "DocumentJournal"
            ]
        },
        "domain.EventType": {
            "enum": [
                "revenue",
                "expense",
                "liability_incurred",
                "liability_settled",
                "asset_acquired",
                "asset_disposed",
                "payment_received",
                "payment_made",
                "equity_contribution",
                "adjustment"
            ],
            "type": "string",
            "x-enum-varnames": [
                "EventRevenue",
                "EventExpense",
                "EventLiabilityIncurred",
                "EventLiabilitySettled",
                "EventAssetAcquired",
                "EventAssetDisposed",
                "EventPaymentReceived",
                "EventPaymentMade",
                "EventEquityContribution",
                "EventAdjustment"
            ]
        },
        "domain.ReversalEligibility": {
            "properties": {
                "isEligible": {
                    "type": "boolean"
                },
                "reason": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "domain.ReversalStatus": {
            "enum": [
                "not_reversed",
                "reversed",
                "is_reversal"
            ],
            "type": "string",
            "x-enum-varnames": [
                "NotReversed",
                "Reversed",
                "IsReversal"
            ]
        },
        "dto.AccountAmountResponse": {
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.AccountLedgerEntryResponse": {
            "properties": {
                "posting": {
                    "$ref": "#/definitions/dto.PostingResponse"
                },
                "runningBalance": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.AccountLedgerResponse": {
            "properties": {
                "account": {
                    "$ref": "#/definitions/dto.AccountResponse"
                },
                "closingBalance": {
                    "type": "string"
                },
                "entries": {
                    "items": {
                        "$ref": "#/definitions/dto.AccountLedgerEntryResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "dto.AccountResponse": {
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "accountType": {
                    "$ref": "#/definitions/domain.AccountType"
                },
                "code": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "currencyCode": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "tenantID": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.AllowedTransitionsResponse": {
            "properties": {
                "allowedTransitions": {
                    "items": {
                        "$ref": "#/definitions/domain.DocumentState"
                    },
                    "type": "array"
                },
                "isTerminal": {
                    "type": "boolean"
                },
                "state": {
                    "$ref": "#/definitions/domain.DocumentState"
                }
            },
            "type": "object"
        },
        "dto.AuditContextRequest": {
            "properties": {
                "how": {
                    "type": "object"
                },
                "what": {
                    "$ref": "#/definitions/domain.AuditWhat"
                },
                "when": {
                    "$ref": "#/definitions/domain.AuditWhen"
                },
                "where": {
                    "type": "object"
                },
                "which": {
                    "$ref": "#/definitions/domain.AuditWhich"
                },
                "who": {
                    "$ref": "#/definitions/domain.AuditWho"
                },
                "why": {
                    "type": "object"
                }
            },
            "type": "object"
        },
        "dto.BalanceSheetResponse": {
            "properties": {
                "asOf": {
                    "type": "string"
                },
                "assets": {
                    "items": {
                        "$ref": "#/definitions/dto.AccountAmountResponse"
                    },
                    "type": "array"
                },
                "equity": {
                    "items": {
                        "$ref": "#/definitions/dto.AccountAmountResponse"
                    },
                    "type": "array"
                },
                "isBalanced": {
                    "type": "boolean"
                },
                "liabilities": {
                    "items": {
                        "$ref": "#/definitions/dto.AccountAmountResponse"
                    },
                    "type": "array"
                },
                "retainedEarnings": {
                    "type": "string"
                },
                "totalAssets": {
                    "type": "string"
                },
                "totalEquity": {
                    "type": "string"
                },
                "totalLiabilities": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.BatchBalanceResponse": {
            "properties": {
                "batchID": {
                    "type": "string"
                },
                "difference": {
                    "type": "string"
                },
                "isBalanced": {
                    "type": "boolean"
                },
                "lineCount": {
                    "type": "integer"
                },
                "totalCredits": {
                    "type": "string"
                },
                "totalDebits": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.BooksVerificationResponse": {
            "properties": {
                "batchCount": {
                    "type": "integer"
                },
                "difference": {
                    "type": "string"
                },
                "from": {
                    "type": "string"
                },
                "isBalanced": {
                    "type": "boolean"
                },
                "tenantID": {
                    "type": "string"
                },
                "to": {
                    "type": "string"
                },
                "totalCredits": {
                    "type": "string"
                },
                "totalDebits": {
                    "type": "string"
                },
                "unbalancedBatches": {
                    "items": {
                        "$ref": "#/definitions/dto.BatchBalanceResponse"
                    },
                    "type": "array"
                },
                "verifiedAt": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.CreateAccountRequest": {
            "properties": {
                "accountType": {
                    "$ref": "#/definitions/domain.AccountType"
                },
                "code": {
                    "type": "string"
                },
                "currencyCode": {
                    "maxLength": 3,
                    "minLength": 3,
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            },
            "required": [
                "accountType",
                "code",
                "name"
            ],
            "type": "object"
        },
        "dto.CreateDocumentRequest": {
            "properties": {
                "documentType": {
                    "$ref": "#/definitions/domain.DocumentType"
                }
            },
            "required": [
                "documentType"
            ],
            "type": "object"
        },
        "dto.DocumentResponse": {
            "properties": {
                "allowedTransitions": {
                    "items": {
                        "$ref": "#/definitions/domain.DocumentState"
                    },
                    "type": "array"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "documentID": {
                    "type": "string"
                },
                "documentType": {
                    "$ref": "#/definitions/domain.DocumentType"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "reversalID": {
                    "type": "string"
                },
                "reversedFromID": {
                    "type": "string"
                },
                "state": {
                    "$ref": "#/definitions/domain.DocumentState"
                },
                "tenantID": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.EventResponse": {
            "properties": {
                "amount": {
                    "example": "100.0000",
                    "type": "string"
                },
                "auditContext": {
                    "$ref": "#/definitions/domain.AuditContext"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "currencyCode": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "documentID": {
                    "type": "string"
                },
                "eventData": {
                    "type": "object"
                },
                "eventDate": {
                    "type": "string"
                },
                "eventID": {
                    "type": "string"
                },
                "eventType": {
                    "$ref": "#/definitions/domain.EventType"
                },
                "isReversal": {
                    "type": "boolean"
                },
                "reversalID": {
                    "type": "string"
                },
                "reversedFromID": {
                    "type": "string"
                },
                "tenantID": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.IncomeStatementResponse": {
            "properties": {
                "expenses": {
                    "items": {
                        "$ref": "#/definitions/dto.AccountAmountResponse"
                    },
                    "type": "array"
                },
                "fromDate": {
                    "type": "string"
                },
                "netIncome": {
                    "type": "string"
                },
                "revenue": {
                    "items": {
                        "$ref": "#/definitions/dto.AccountAmountResponse"
                    },
                    "type": "array"
                },
                "toDate": {
                    "type": "string"
                },
                "totalExpenses": {
                    "type": "string"
                },
                "totalRevenue": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.ListAccountsResponse": {
            "properties": {
                "accounts": {
                    "items": {
                        "$ref": "#/definitions/dto.AccountResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "dto.ListEventsResponse": {
            "properties": {
                "events": {
                    "items": {
                        "$ref": "#/definitions/dto.EventResponse"
                    },
                    "type": "array"
                },
                "nextToken": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.ListPostingsResponse": {
            "properties": {
                "postings": {
                    "items": {
                        "$ref": "#/definitions/dto.PostingResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "dto.PostDocumentRequest": {
            "properties": {
                "auditContext": {
                    "$ref": "#/definitions/dto.AuditContextRequest"
                },
                "currencyCode": {
                    "maxLength": 3,
                    "minLength": 3,
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "eventData": {
                    "type": "object"
                },
                "eventType": {
                    "$ref": "#/definitions/domain.EventType"
                },
                "lines": {
                    "items": {
                        "$ref": "#/definitions/dto.PostingLineRequest"
                    },
                    "minItems": 1,
                    "type": "array"
                },
                "postingDate": {
                    "example": "2024-03-05",
                    "type": "string"
                }
            },
            "required": [
                "eventType",
                "lines"
            ],
            "type": "object"
        },
        "dto.PostDocumentResponse": {
            "properties": {
                "batchID": {
                    "type": "string"
                },
                "document": {
                    "$ref": "#/definitions/dto.DocumentResponse"
                },
                "event": {
                    "$ref": "#/definitions/dto.EventResponse"
                },
                "isBalanced": {
                    "type": "boolean"
                },
                "postings": {
                    "items": {
                        "$ref": "#/definitions/dto.PostingResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "dto.PostingLineRequest": {
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "amount": {
                    "example": "100.0000",
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "direction": {
                    "$ref": "#/definitions/domain.Direction"
                },
                "metadata": {
                    "additionalProperties": true,
                    "type": "object"
                }
            },
            "required": [
                "accountID",
                "amount",
                "direction"
            ],
            "type": "object"
        },
        "dto.PostingResponse": {
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "amount": {
                    "example": "100.0000",
                    "type": "string"
                },
                "batchID": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "currencyCode": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "direction": {
                    "$ref": "#/definitions/domain.Direction"
                },
                "eventID": {
                    "type": "string"
                },
                "isReversal": {
                    "type": "boolean"
                },
                "lineNo": {
                    "type": "integer"
                },
                "metadata": {
                    "additionalProperties": true,
                    "type": "object"
                },
                "postingDate": {
                    "type": "string"
                },
                "postingID": {
                    "type": "string"
                },
                "reversalID": {
                    "type": "string"
                },
                "reversedFromID": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.ReconciliationRunRequest": {
            "properties": {
                "from": {
                    "example": "2024-03-01",
                    "type": "string"
                },
                "to": {
                    "example": "2024-03-31",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.ReconciliationRunResponse": {
            "properties": {
                "taskID": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.ReversalChainResponse": {
            "properties": {
                "chain": {
                    "items": {
                        "$ref": "#/definitions/dto.EventResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "dto.ReversalResponse": {
            "properties": {
                "batchID": {
                    "type": "string"
                },
                "document": {
                    "$ref": "#/definitions/dto.DocumentResponse"
                },
                "event": {
                    "$ref": "#/definitions/dto.EventResponse"
                },
                "isBalanced": {
                    "type": "boolean"
                },
                "originalEventID": {
                    "type": "string"
                },
                "originalPostings": {
                    "items": {
                        "$ref": "#/definitions/dto.PostingResponse"
                    },
                    "type": "array"
                },
                "postings": {
                    "items": {
                        "$ref": "#/definitions/dto.PostingResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "dto.ReversalStatusResponse": {
            "properties": {
                "chain": {
                    "items": {
                        "$ref": "#/definitions/dto.EventResponse"
                    },
                    "type": "array"
                },
                "documentID": {
                    "type": "string"
                },
                "reversalEventID": {
                    "type": "string"
                },
                "reversedFromID": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/domain.ReversalStatus"
                }
            },
            "type": "object"
        },
        "dto.ReverseRequest": {
            "properties": {
                "auditContext": {
                    "$ref": "#/definitions/dto.AuditContextRequest"
                },
                "reason": {
                    "type": "string"
                },
                "reversalDate": {
                    "example": "2024-03-09",
                    "type": "string"
                }
            },
            "required": [
                "reason"
            ],
            "type": "object"
        },
        "dto.TransitionDocumentRequest": {
            "properties": {
                "targetState": {
                    "$ref": "#/definitions/domain.DocumentState"
                }
            },
            "required": [
                "targetState"
            ],
            "type": "object"
        },
        "dto.TrialBalanceResponse": {
            "properties": {
                "asOf": {
                    "type": "string"
                },
                "isBalanced": {
                    "type": "boolean"
                },
                "rows": {
                    "items": {
                        "$ref": "#/definitions/dto.TrialBalanceRowResponse"
                    },
                    "type": "array"
                },
                "totalCredits": {
                    "type": "string"
                },
                "totalDebits": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.TrialBalanceRowResponse": {
            "properties": {
                "accountCode": {
                    "type": "string"
                },
                "accountID": {
                    "type": "string"
                },
                "accountName": {
                    "type": "string"
                },
                "accountType": {
                    "$ref": "#/definitions/domain.AccountType"
                },
                "balance": {
                    "type": "string"
                },
                "credit": {
                    "type": "string"
                },
                "debit": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.DocumentEventsResponse": {
            "properties": {
                "events": {
                    "items": {
                        "$ref": "#/definitions/dto.EventResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "handlers.ErrorResponse": {
            "properties": {
                "details": {
                    "additionalProperties": true,
                    "type": "object"
                },
                "error": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.ListAccountPostingsResponse": {
            "properties": {
                "nextToken": {
                    "type": "string"
                },
                "postings": {
                    "items": {
                        "$ref": "#/definitions/dto.PostingResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "in": "header",
            "name": "Authorization",
            "type": "apiKey"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Posting Spine API",
	Description:      "Document lifecycle, economic event log, double-entry posting and reversal engine.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
