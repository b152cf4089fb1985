// Package swagger holds the OpenAPI document served under /swagger.
package swagger

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
	"securityDefinitions": {
		"ApiKeyAuth": {
			"type": "apiKey",
			"name": "X-API-Key",
			"in": "header"
		}
	},
	"paths": {
		"/prices": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"prices"
				],
				"summary": "Get Item Price",
				"parameters": [
					{
						"type": "string",
						"description": "Price key",
						"name": "name",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "ISO 4217 display currency",
						"name": "currency",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/pricing.Quote"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/prices/search": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"prices"
				],
				"summary": "Search Items",
				"parameters": [
					{
						"type": "string",
						"description": "Search words",
						"name": "q",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"description": "Maximum results (default 15)",
						"name": "limit",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				}
			}
		},
		"/prices/stats": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"prices"
				],
				"summary": "Snapshot Statistics",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				}
			}
		},
		"/prices/doppler/{icon}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"prices"
				],
				"summary": "Doppler Phase",
				"parameters": [
					{
						"type": "string",
						"description": "Icon id",
						"name": "icon",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/prices/refresh": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"prices"
				],
				"summary": "Refresh Prices",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/currency": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"currency"
				],
				"summary": "List Currencies",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				}
			}
		},
		"/currency/search": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"currency"
				],
				"summary": "Autocomplete Currency",
				"parameters": [
					{
						"type": "string",
						"description": "Code prefix (case-insensitive)",
						"name": "prefix",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "Maximum results (default 10)",
						"name": "limit",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				}
			}
		},
		"/currency/format": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"currency"
				],
				"summary": "Format Amount",
				"parameters": [
					{
						"type": "number",
						"description": "Amount in USD",
						"name": "value",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "ISO 4217 code",
						"name": "code",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/history": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"history"
				],
				"summary": "Price History",
				"parameters": [
					{
						"type": "string",
						"description": "Price key",
						"name": "name",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"description": "Maximum points (default 30)",
						"name": "limit",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/history/record": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"history"
				],
				"summary": "Record Prices",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"503": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/integrity": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"integrity"
				],
				"summary": "Run All Integrity Checks",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				}
			}
		},
		"/integrity/datasets": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"integrity"
				],
				"summary": "Check Dataset Cache",
				"parameters": [
					{
						"type": "boolean",
						"description": "Refresh datasets when payloads are missing",
						"name": "fix",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/integrity/snapshot": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"integrity"
				],
				"summary": "Check Snapshot",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				}
			}
		},
		"/integrity/coverage": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"integrity"
				],
				"summary": "Check Key Coverage",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"type": "object"
						}
					}
				}
			}
		},
		"/integrity/schema": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"integrity"
				],
				"summary": "Check History Schema",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"503": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"pricing.Quote": {
			"type": "object",
			"properties": {
				"key": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"image": {
					"type": "string"
				},
				"phase": {
					"type": "string"
				},
				"rarity_color": {
					"type": "string"
				},
				"currency": {
					"type": "string"
				},
				"display": {
					"type": "string"
				},
				"estimate": {
					"type": "number"
				},
				"steam": {
					"type": "number"
				},
				"skinport": {
					"type": "number"
				},
				"buff": {
					"type": "number"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Feather Price API",
	Description:      "Consolidated CS2 item prices with currency display.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
